package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/track-toolkit/pkg/trackfile"
)

// Styles
var (
	styleDefault    = tcell.StyleDefault
	styleTitle      = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleMenu       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleMenuSel    = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	styleChart      = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleAxis       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRow        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleRowSel     = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleHeader     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleInput      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleInputOn    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorYellow).Bold(true)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// UI renders the application state onto a tcell screen. It reads the
// App and never mutates it.
type UI struct {
	screen tcell.Screen
	app    *App
}

func (ui *UI) draw() {
	ui.screen.Clear()
	w, h := ui.screen.Size()

	switch ui.app.mode {
	case ModeGraph:
		ui.drawGraph(w, h)
	case ModeTable:
		ui.drawTable(w, h)
		if ui.app.confirmActive {
			ui.drawConfirm(w, h)
		}
	case ModeMenu:
		ui.drawGraph(w, h)
		ui.drawMenuOverlay(w, h)
	case ModeHelp:
		ui.drawHelp(w, h)
	}

	if ui.app.promptActive {
		ui.drawPrompt(w, h)
	}

	ui.drawStatusBar(w, h)
}

func (ui *UI) drawGraph(w, h int) {
	app := ui.app
	s := app.store.Current()

	chartH := h - 4 // help bar, status bar, input row margin
	if app.inserting {
		chartH -= 3
	}
	if chartH < 3 {
		chartH = 3
	}
	chartW := w - 9
	if chartW < 10 {
		chartW = 10
	}

	title := fmt.Sprintf(" %s (%d points) ", s.Name, len(s.Data))
	ui.drawString(2, 0, title, styleTitle)

	lines := trackfile.RenderText(s, trackfile.TextOptions{
		Width:    chartW,
		Height:   chartH - 1,
		ShowAxes: true,
	})
	for i, line := range lines {
		x := 0
		for _, r := range line {
			style := styleChart
			if r < 0x2800 || r > 0x28FF {
				style = styleAxis
			}
			ui.screen.SetContent(x, 1+i, r, nil, style)
			x++
		}
	}

	if app.inserting {
		ui.drawInputBoxes(w, h)
	}
}

// drawInputBoxes renders the X and Y entry fields side by side above the
// status bar, highlighting the active one.
func (ui *UI) drawInputBoxes(w, h int) {
	app := ui.app
	boxW := w / 2
	y := h - 5

	xStyle, yStyle := styleInput, styleInput
	xTitle, yTitle := "X", "Y"
	if app.field == FieldX {
		xStyle = styleInputOn
		xTitle = "X [active]"
	} else {
		yStyle = styleInputOn
		yTitle = "Y [active]"
	}

	ui.drawTitledBox(0, y, boxW, 3, xTitle)
	ui.drawTitledBox(boxW, y, w-boxW, 3, yTitle)

	xText := app.inputX
	yText := app.inputY
	if app.field == FieldX {
		xText += "_"
	} else {
		yText += "_"
	}
	ui.drawString(2, y+1, xText, xStyle)
	ui.drawString(boxW+2, y+1, yText, yStyle)
}

func (ui *UI) drawTable(w, h int) {
	app := ui.app
	s := app.store.Current()

	title := fmt.Sprintf(" %s ", s.Name)
	boxW := 34
	boxX := (w - boxW) / 2
	if boxX < 0 {
		boxX = 0
	}
	visible := h - 7
	if visible < 1 {
		visible = 1
	}
	boxH := len(s.Data) + 4
	if boxH > visible+4 {
		boxH = visible + 4
	}
	if boxH < 5 {
		boxH = 5
	}

	ui.drawTitledBox(boxX, 0, boxW, boxH, title)
	ui.drawString(boxX+2, 1, fmt.Sprintf("%14s %14s", "X", "Y"), styleHeader)

	// Keep the selected row visible.
	first := 0
	if app.selectedRow >= visible {
		first = app.selectedRow - visible + 1
	}

	if len(s.Data) == 0 {
		ui.drawString(boxX+2, 2, "(no points)", styleRow)
		return
	}

	for i := 0; i < visible && first+i < len(s.Data); i++ {
		row := first + i
		p := s.Data[row]
		style := styleRow
		if row == app.selectedRow {
			style = styleRowSel
		}
		line := fmt.Sprintf("%14.4g %14.4g", p.X, p.Y)
		ui.drawString(boxX+2, 2+i, line, style)
	}
}

func (ui *UI) drawConfirm(w, h int) {
	app := ui.app
	boxW := 34
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	ui.drawTitledBox(boxX, boxY, boxW, boxH, " Delete point? ")

	delStyle, canStyle := styleMenu, styleMenu
	if app.confirmChoice == ChoiceDelete {
		delStyle = styleMenuSel
	} else {
		canStyle = styleMenuSel
	}
	ui.drawString(boxX+6, boxY+2, "[ Delete ]", delStyle)
	ui.drawString(boxX+19, boxY+2, "[ Cancel ]", canStyle)
}

func (ui *UI) drawMenuOverlay(w, h int) {
	app := ui.app
	menuW := 30
	menuH := len(app.menuItems) + 4
	startX := (w - menuW) / 2
	startY := (h - menuH) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	ui.drawTitledBox(startX, startY, menuW, menuH, "trackedit")

	for i, item := range app.menuItems {
		style := styleMenu
		if i == app.menuSelected {
			style = styleMenuSel
		}
		padded := fmt.Sprintf(" %-*s", menuW-3, item)
		ui.drawString(startX+1, startY+2+i, padded, style)
	}
}

func (ui *UI) drawHelp(w, h int) {
	lines := []string{
		"trackedit - point series editor",
		"",
		"Graph view:",
		"  a        start adding a point",
		"  Tab      switch between X and Y entry",
		"  Enter    commit the point",
		"  Esc      cancel entry / back to menu",
		"  [ ]      previous / next series",
		"",
		"Table view:",
		"  Up/Down  move selection (wraps around)",
		"  d/Del    delete the selected point",
		"",
		"Anywhere:",
		"  g t m h  graph / table / menu / help",
		"  q        save and quit",
	}

	ui.drawString(2, 0, "Help", styleTitle)
	for i, line := range lines {
		if 2+i >= h-2 {
			break
		}
		ui.drawString(2, 2+i, line, styleMenu)
	}
}

func (ui *UI) drawPrompt(w, h int) {
	app := ui.app
	boxW := 50
	boxH := 3
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	ui.drawBox(boxX, boxY, boxW, boxH, styleInput)
	ui.drawString(boxX+2, boxY+1, app.promptText, styleInput)
	ui.drawString(boxX+2+len(app.promptText), boxY+1, app.promptBuffer+"_", styleInput)
}

func (ui *UI) drawStatusBar(w, h int) {
	app := ui.app
	y := h - 1

	for x := 0; x < w; x++ {
		ui.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	fileInfo := app.path
	if app.modified {
		fileInfo += " *"
	}
	ui.drawString(1, y, fileInfo, styleStatus)

	modeStr := ui.modeString()
	ui.drawString(w/2-len(modeStr)/2, y, modeStr, styleStatus)

	if app.message != "" {
		style := styleMsgInfo
		switch app.messageType {
		case MsgError, MsgWarning:
			style = styleMsgError
		case MsgSuccess:
			style = styleMsgSuccess
		}
		ui.drawString(w-len(app.message)-2, y, app.message, style)
	}

	y = h - 2
	for x := 0; x < w; x++ {
		ui.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	ui.drawString(1, y, ui.helpString(), styleHelp)
}

func (ui *UI) modeString() string {
	app := ui.app
	if app.confirmActive {
		return "CONFIRM"
	}
	if app.inserting {
		return "INSERT"
	}
	switch app.mode {
	case ModeGraph:
		return "GRAPH"
	case ModeTable:
		return "TABLE"
	case ModeMenu:
		return "MENU"
	case ModeHelp:
		return "HELP"
	default:
		return ""
	}
}

func (ui *UI) helpString() string {
	app := ui.app
	if app.promptActive {
		return "Type name  Enter:Confirm  Esc:Cancel"
	}
	if app.confirmActive {
		return "←/→/Tab:Toggle  Enter:Confirm  Esc:Cancel"
	}
	if app.inserting {
		return "Digits . -  Tab:Field  Enter:Add  Esc:Cancel"
	}
	switch app.mode {
	case ModeGraph:
		return "a:Add  t:Table  m:Menu  h:Help  [ ]:Series  q:Quit"
	case ModeTable:
		return "↑↓:Select  d:Delete  g:Graph  m:Menu  q:Quit"
	case ModeMenu:
		return "↑↓:Select  Enter:Confirm  Esc:Graph"
	case ModeHelp:
		return "Esc:Menu  g:Graph  t:Table  q:Quit"
	default:
		return ""
	}
}

// drawTitledBox draws a bordered box with optional title
func (ui *UI) drawTitledBox(x, y, w, h int, title string) {
	ui.drawBox(x, y, w, h, styleDefault)
	if title != "" {
		titleX := x + (w-len(title))/2
		ui.drawString(titleX, y, title, styleHeader)
	}
}

func (ui *UI) drawBox(x, y, w, h int, style tcell.Style) {
	ui.screen.SetContent(x, y, '┌', nil, styleBorder)
	ui.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)
	ui.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	ui.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)

	for i := x + 1; i < x+w-1; i++ {
		ui.screen.SetContent(i, y, '─', nil, styleBorder)
		ui.screen.SetContent(i, y+h-1, '─', nil, styleBorder)
	}
	for i := y + 1; i < y+h-1; i++ {
		ui.screen.SetContent(x, i, '│', nil, styleBorder)
		ui.screen.SetContent(x+w-1, i, '│', nil, styleBorder)
	}
	for row := y + 1; row < y+h-1; row++ {
		for col := x + 1; col < x+w-1; col++ {
			ui.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (ui *UI) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		ui.screen.SetContent(x+i, y, r, nil, style)
	}
}
