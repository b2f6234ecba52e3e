// Command trackedit is a TUI for recording and charting 2-D point series.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/track-toolkit/pkg/track"
	"github.com/ha1tch/track-toolkit/pkg/trackfile"
)

// DefaultDataFile is used when no path is given on the command line and
// the config holds none.
const DefaultDataFile = "points.csv"

// Config holds persistent editor settings
type Config struct {
	LastFile string // last data file opened
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trackedit"
	}
	return filepath.Join(home, ".trackedit")
}

// LoadConfig loads configuration from the config file
func LoadConfig() Config {
	var cfg Config
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		return cfg
	}

	// Simple TOML parser for our settings
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "last_file") {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) == 2 {
				val := strings.Trim(strings.TrimSpace(parts[1]), "\"")
				if val != "" {
					cfg.LastFile = val
				}
			}
		}
	}
	return cfg
}

// SaveConfig saves configuration to the config file
func SaveConfig(cfg Config) error {
	content := fmt.Sprintf("# trackedit configuration\nlast_file = \"%s\"\n", cfg.LastFile)
	return os.WriteFile(ConfigPath(), []byte(content), 0644)
}

func main() {
	cfg := LoadConfig()

	path := DefaultDataFile
	if cfg.LastFile != "" {
		path = cfg.LastFile
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store, loadErr := trackfile.Load(path)
	if loadErr != nil {
		// Recoverable: start with a fresh default series and say so.
		store = track.NewStore()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.Clear()

	app := newApp(store, path)
	if loadErr != nil {
		app.showMessage(fmt.Sprintf("Could not load %s: starting fresh", path), MsgWarning)
	} else {
		app.showMessage("Press 'a' to add point, 'q' to quit", MsgInfo)
		cfg.LastFile = path
		SaveConfig(cfg)
	}

	run(screen, app)
	screen.Fini()
}

// run is the single event loop: draw one frame, block on the next key
// event, apply it, repeat. On exit it saves the store; a save failure
// keeps the screen alive for one more frame so the error is seen.
func run(screen tcell.Screen, app *App) {
	ui := &UI{screen: screen, app: app}

	for !app.exit {
		ui.draw()
		screen.Show()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			app.apply(decodeKey(ev, app.textEntry()))
			if app.saveNow {
				app.saveNow = false
				saveStore(app)
			}
		}
	}

	if err := trackfile.Save(app.path, app.store); err != nil {
		// Degraded termination: show the failure and wait for one key
		// press so unsaved data is never discarded silently.
		app.showMessage(fmt.Sprintf("Save failed: %v - press any key to exit", err), MsgError)
		ui.draw()
		screen.Show()
		for {
			if _, ok := screen.PollEvent().(*tcell.EventKey); ok {
				break
			}
		}
	}
}

func saveStore(app *App) {
	if err := trackfile.Save(app.path, app.store); err != nil {
		app.showMessage("Save failed: "+err.Error(), MsgError)
		return
	}
	app.modified = false
	app.showMessage("Saved: "+app.path, MsgSuccess)
}
