package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/track-toolkit/pkg/track"
	"github.com/ha1tch/track-toolkit/pkg/trackfile"
)

// Drives the event loop on a simulation screen with a path the store
// cannot be saved to: quitting must surface the save error on screen
// and hold the loop open until one more key press.
func TestRunSaveFailureWaitsForKey(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 24)

	// A directory is not a writable file, so Save must fail.
	app := newApp(track.NewStore(), t.TempDir())
	app.store.InsertPoint(0, 1, 2)

	done := make(chan struct{})
	go func() {
		run(sim, app)
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	// The loop must still be blocked on the post-failure key wait.
	select {
	case <-done:
		t.Fatal("run returned without waiting for a key press")
	case <-time.After(100 * time.Millisecond):
	}

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after the key press")
	}

	if app.messageType != MsgError {
		t.Errorf("messageType = %v, want MsgError", app.messageType)
	}
	if !strings.Contains(app.message, "Save failed") {
		t.Errorf("message = %q, want a save failure", app.message)
	}
	if !strings.Contains(screenText(sim), "Save failed") {
		t.Errorf("save failure not rendered on the final frame")
	}
}

func TestRunQuitSavesStore(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 24)

	path := t.TempDir() + "/points.csv"
	app := newApp(track.NewStore(), path)
	app.store.InsertPoint(0, 1.5, -2)

	done := make(chan struct{})
	go func() {
		run(sim, app)
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after quit")
	}

	st, err := trackfile.Load(path)
	if err != nil {
		t.Fatalf("loading saved file: %v", err)
	}
	data := st.Current().Data
	if len(data) != 1 || data[0].X != 1.5 || data[0].Y != -2 {
		t.Errorf("saved data = %v, want [(1.5, -2)]", data)
	}
}

func screenText(sim tcell.SimulationScreen) string {
	cells, _, _ := sim.GetContents()
	var sb strings.Builder
	for _, c := range cells {
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		}
	}
	return sb.String()
}
