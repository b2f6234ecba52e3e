// Command track is a CLI tool for working with point series files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/guptarohit/asciigraph"

	"github.com/ha1tch/track-toolkit/pkg/track"
	"github.com/ha1tch/track-toolkit/pkg/trackfile"
)

const usage = `track - point series toolkit

Usage:
  track <command> [options]

Commands:
  info       Show series and point counts
  plot       Plot a series in the terminal
  export     Export a chart (svg, png, txt)

Examples:
  track info points.csv
  track plot points.csv -s Temps -w 72
  track export points.csv -o chart.svg
  track export points.csv -o chart.png

Use "track <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "info":
		cmdInfo(args)
	case "plot":
		cmdPlot(args)
	case "export":
		cmdExport(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: track info <input.csv>")
		os.Exit(1)
	}

	st, err := trackfile.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	fmt.Printf("File:   %s\n", args[0])
	fmt.Printf("Series: %d\n", len(st.Series))
	fmt.Printf("Points: %d\n", st.PointCount())
	fmt.Println()
	for _, s := range st.Series {
		maxX, maxY := s.Bounds()
		fmt.Printf("  %-20s %4d points", s.Name, len(s.Data))
		if len(s.Data) > 0 {
			fmt.Printf("  x <= %g, y <= %g", maxX, maxY)
		}
		fmt.Println()
	}
}

func cmdPlot(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: track plot <input.csv> [-s series] [-w width] [-H height]")
		os.Exit(1)
	}

	input := args[0]
	seriesName := ""
	width := 72
	height := 16

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-s", "--series":
			if i+1 < len(args) {
				seriesName = args[i+1]
				i++
			}
		case "-w", "--width":
			if i+1 < len(args) {
				width = atoiOr(args[i+1], width)
				i++
			}
		case "-H", "--height":
			if i+1 < len(args) {
				height = atoiOr(args[i+1], height)
				i++
			}
		}
	}

	st, err := trackfile.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	s := st.Current()
	if seriesName != "" {
		idx := st.SeriesIndex(seriesName)
		if idx < 0 {
			fmt.Fprintf(os.Stderr, "No series named %q in %s\n", seriesName, input)
			os.Exit(1)
		}
		st.Select(idx)
		s = st.Current()
	}

	if len(s.Data) == 0 {
		fmt.Printf("%s: no points\n", s.Name)
		return
	}

	// Points are kept sorted by x, so the y values line up left to right.
	ys := make([]float64, len(s.Data))
	for i, p := range s.Data {
		ys[i] = p.Y
	}

	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("%s (%d points)", s.Name, len(s.Data)))))
}

func cmdExport(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: track export <input.csv> -o <output.svg|png|txt> [--title t]")
		os.Exit(1)
	}

	input := args[0]
	output := ""
	title := ""

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--title":
			if i+1 < len(args) {
				title = args[i+1]
				i++
			}
		}
	}

	if output == "" {
		ext := filepath.Ext(input)
		output = input[:len(input)-len(ext)] + ".svg"
	}

	st, err := trackfile.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	switch filepath.Ext(output) {
	case ".svg":
		opts := trackfile.DefaultSVGOptions()
		opts.Title = title
		svg := trackfile.GenerateSVG(st, opts)
		err = os.WriteFile(output, []byte(svg), 0644)
	case ".png":
		opts := trackfile.DefaultPNGOptions()
		opts.Title = title
		var f *os.File
		f, err = os.Create(output)
		if err == nil {
			err = trackfile.RenderPNG(st, f, opts)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	case ".txt":
		err = exportText(output, st)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported output format: %s\n", filepath.Ext(output))
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", output)
}

func exportText(path string, st *track.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for i, s := range st.Series {
		if i > 0 {
			fmt.Fprintln(f)
		}
		fmt.Fprintf(f, "%s (%d points)\n", s.Name, len(s.Data))
		for _, line := range trackfile.RenderText(s, trackfile.DefaultTextOptions()) {
			fmt.Fprintln(f, line)
		}
	}
	return f.Sync()
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
