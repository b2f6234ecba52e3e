package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ha1tch/track-toolkit/pkg/track"
)

// Mode represents the top-level view.
type Mode int

const (
	ModeGraph Mode = iota
	ModeTable
	ModeMenu
	ModeHelp
)

// Field identifies the active numeric entry buffer.
type Field int

const (
	FieldX Field = iota
	FieldY
)

// Choice is the highlighted option in the delete confirmation.
type Choice int

const (
	ChoiceDelete Choice = iota
	ChoiceCancel
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgError
	MsgSuccess
	MsgWarning
)

// maxInputLen caps each numeric entry buffer.
const maxInputLen = 5

// App holds all application state. It is owned by the single run loop;
// every mutation happens inside apply.
type App struct {
	store *track.Store
	mode  Mode

	// Numeric entry sub-mode (Insert within Graph)
	inserting bool
	field     Field
	inputX    string
	inputY    string

	// Table selection, -1 = none
	selectedRow int

	// Delete confirmation sub-state, nested in Table
	confirmActive bool
	confirmChoice Choice

	// Menu state
	menuItems    []string
	menuSelected int

	// Name prompt state
	promptActive bool
	promptText   string
	promptBuffer string
	promptAction func(string)

	message     string
	messageType MessageType

	path     string
	exit     bool
	saveNow  bool // set by the Save menu item, consumed by the run loop
	modified bool
}

func newApp(store *track.Store, path string) *App {
	return &App{
		store:       store,
		mode:        ModeGraph,
		selectedRow: -1,
		path:        path,
		menuItems: []string{
			"Graph View",
			"Table View",
			"New Series",
			"Next Series",
			"Save",
			"Help",
			"Quit",
		},
	}
}

func (a *App) showMessage(msg string, t MessageType) {
	a.message = msg
	a.messageType = t
}

// textEntry reports whether plain runes should be treated as text input.
func (a *App) textEntry() bool {
	return a.promptActive || (a.mode == ModeGraph && a.inserting)
}

// apply processes one intent to completion. Each call performs at most
// one store mutation; the caller re-renders afterwards.
func (a *App) apply(in Intent) {
	if in.Kind == IntentNone {
		return
	}

	if a.promptActive {
		a.applyPrompt(in)
		return
	}

	switch a.mode {
	case ModeGraph:
		a.applyGraph(in)
	case ModeTable:
		a.applyTable(in)
	case ModeMenu:
		a.applyMenu(in)
	case ModeHelp:
		a.applyHelp(in)
	}
}

func (a *App) applyGraph(in Intent) {
	if a.inserting {
		a.applyInsert(in)
		return
	}

	switch in.Kind {
	case IntentInsert:
		a.inserting = true
		a.field = FieldX
		a.inputX = ""
		a.inputY = ""
		a.showMessage("Enter X coordinate", MsgInfo)
	case IntentEscape:
		a.mode = ModeMenu
	case IntentTable:
		a.enterTable()
	case IntentMenu:
		a.mode = ModeMenu
	case IntentHelp:
		a.mode = ModeHelp
	case IntentQuit:
		a.exit = true
	case IntentSeriesNext, IntentRight:
		a.cycleSeries(1)
	case IntentSeriesPrev, IntentLeft:
		a.cycleSeries(-1)
	}
}

func (a *App) applyInsert(in Intent) {
	switch in.Kind {
	case IntentChar:
		if in.Ch != '.' && in.Ch != '-' && (in.Ch < '0' || in.Ch > '9') {
			return
		}
		buf := a.activeBuffer()
		if len(*buf) >= maxInputLen {
			return
		}
		*buf += string(in.Ch)
	case IntentBackspace:
		buf := a.activeBuffer()
		if len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
		}
	case IntentCycle:
		if a.field == FieldX {
			a.field = FieldY
			a.showMessage("Enter Y coordinate", MsgInfo)
		} else {
			a.field = FieldX
			a.showMessage("Enter X coordinate", MsgInfo)
		}
	case IntentCommit:
		a.commitPoint()
	case IntentEscape:
		a.inserting = false
		a.inputX = ""
		a.inputY = ""
		a.message = ""
	}
}

func (a *App) activeBuffer() *string {
	if a.field == FieldX {
		return &a.inputX
	}
	return &a.inputY
}

// commitPoint parses both buffers and inserts the point. Parse failure
// keeps the buffers and the insert sub-mode so the user can fix the
// input; the store is never touched with partial data.
func (a *App) commitPoint() {
	x, errX := strconv.ParseFloat(a.inputX, 64)
	y, errY := strconv.ParseFloat(a.inputY, 64)
	if errX != nil || errY != nil || !finite(x) || !finite(y) {
		a.showMessage("Error: enter valid numbers for both X and Y", MsgError)
		return
	}

	if err := a.store.InsertPoint(a.store.Selected, x, y); err != nil {
		a.showMessage("Error: "+err.Error(), MsgError)
		return
	}

	a.inserting = false
	a.inputX = ""
	a.inputY = ""
	a.modified = true
	a.showMessage(fmt.Sprintf("Added point (%.2f, %.2f)", x, y), MsgSuccess)
}

func (a *App) applyTable(in Intent) {
	if a.confirmActive {
		a.applyConfirm(in)
		return
	}

	switch in.Kind {
	case IntentDown:
		a.moveSelection(1)
	case IntentUp:
		a.moveSelection(-1)
	case IntentDelete:
		if a.selectedRow >= 0 {
			a.confirmActive = true
			a.confirmChoice = ChoiceDelete
		}
	case IntentEscape:
		a.mode = ModeMenu
	case IntentGraph:
		a.mode = ModeGraph
	case IntentMenu:
		a.mode = ModeMenu
	case IntentHelp:
		a.mode = ModeHelp
	case IntentQuit:
		a.exit = true
	case IntentSeriesNext, IntentRight:
		a.cycleSeries(1)
	case IntentSeriesPrev, IntentLeft:
		a.cycleSeries(-1)
	}
}

// moveSelection moves the table selection with circular wraparound.
// With no prior selection either direction picks row 0; an empty series
// leaves the selection unset.
func (a *App) moveSelection(delta int) {
	n := len(a.store.Current().Data)
	if n == 0 {
		return
	}
	if a.selectedRow < 0 {
		a.selectedRow = 0
		return
	}
	a.selectedRow = (a.selectedRow + delta + n) % n
}

func (a *App) applyConfirm(in Intent) {
	switch in.Kind {
	case IntentLeft, IntentRight, IntentCycle:
		if a.confirmChoice == ChoiceDelete {
			a.confirmChoice = ChoiceCancel
		} else {
			a.confirmChoice = ChoiceDelete
		}
	case IntentCommit:
		if a.confirmChoice == ChoiceDelete {
			a.deleteSelected()
		}
		a.confirmActive = false
	case IntentEscape:
		a.confirmActive = false
	}
}

func (a *App) deleteSelected() {
	if err := a.store.DeletePoint(a.store.Selected, a.selectedRow); err != nil {
		a.showMessage("Error: "+err.Error(), MsgError)
		a.selectedRow = -1
		return
	}
	a.modified = true

	n := len(a.store.Current().Data)
	if n == 0 {
		a.selectedRow = -1
	} else if a.selectedRow >= n {
		a.selectedRow = n - 1
	}
	a.showMessage("Point deleted", MsgSuccess)
}

func (a *App) applyMenu(in Intent) {
	switch in.Kind {
	case IntentUp:
		if a.menuSelected > 0 {
			a.menuSelected--
		}
	case IntentDown:
		if a.menuSelected < len(a.menuItems)-1 {
			a.menuSelected++
		}
	case IntentCommit:
		a.executeMenuItem()
	case IntentEscape:
		a.mode = ModeGraph
	case IntentGraph:
		a.mode = ModeGraph
	case IntentTable:
		a.enterTable()
	case IntentHelp:
		a.mode = ModeHelp
	case IntentQuit:
		a.exit = true
	}
}

func (a *App) executeMenuItem() {
	switch a.menuItems[a.menuSelected] {
	case "Graph View":
		a.mode = ModeGraph
	case "Table View":
		a.enterTable()
	case "New Series":
		a.promptText = "Series name: "
		a.promptBuffer = ""
		a.promptActive = true
		a.promptAction = func(name string) {
			if name == "" {
				a.showMessage("Series name cannot be empty", MsgError)
				return
			}
			idx := a.store.AddSeries(name)
			a.store.Select(idx)
			a.selectedRow = -1
			a.modified = true
			a.showMessage("New series: "+name, MsgSuccess)
			a.mode = ModeGraph
		}
	case "Next Series":
		a.cycleSeries(1)
	case "Save":
		a.saveNow = true
	case "Help":
		a.mode = ModeHelp
	case "Quit":
		a.exit = true
	}
}

func (a *App) applyHelp(in Intent) {
	switch in.Kind {
	case IntentEscape:
		a.mode = ModeMenu
	case IntentGraph:
		a.mode = ModeGraph
	case IntentTable:
		a.enterTable()
	case IntentMenu:
		a.mode = ModeMenu
	case IntentQuit:
		a.exit = true
	}
}

func (a *App) applyPrompt(in Intent) {
	switch in.Kind {
	case IntentChar:
		a.promptBuffer += string(in.Ch)
	case IntentBackspace:
		if len(a.promptBuffer) > 0 {
			a.promptBuffer = a.promptBuffer[:len(a.promptBuffer)-1]
		}
	case IntentCommit:
		a.promptActive = false
		if a.promptAction != nil {
			a.promptAction(a.promptBuffer)
		}
		a.promptBuffer = ""
	case IntentEscape:
		a.promptActive = false
		a.promptBuffer = ""
	}
}

func (a *App) enterTable() {
	a.mode = ModeTable
}

// cycleSeries selects an adjacent series. The table selection is scoped
// to one series, so it resets.
func (a *App) cycleSeries(delta int) {
	n := len(a.store.Series)
	if n < 2 {
		return
	}
	a.store.Select((a.store.Selected + delta + n) % n)
	a.selectedRow = -1
	a.showMessage("Series: "+a.store.Current().Name, MsgInfo)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
