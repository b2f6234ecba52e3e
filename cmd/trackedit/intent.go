package main

import "github.com/gdamore/tcell/v2"

// IntentKind classifies a decoded input intent.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentChar             // printable rune, carried in Intent.Ch
	IntentBackspace
	IntentCycle  // Tab
	IntentCommit // Enter
	IntentEscape
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentInsert     // start numeric entry
	IntentDelete     // request point deletion
	IntentGraph      // switch to graph view
	IntentTable      // switch to table view
	IntentMenu       // switch to menu
	IntentHelp       // switch to help
	IntentQuit       // request exit
	IntentSeriesNext // select next series
	IntentSeriesPrev // select previous series
)

// Intent is one abstract input event. Decoding terminal key events into
// intents is the only place tcell key codes are interpreted; everything
// downstream works on intents alone.
type Intent struct {
	Kind IntentKind
	Ch   rune
}

// decodeKey maps a key event to an intent. When textEntry is true the
// application is accumulating text (numeric entry or a name prompt), so
// plain runes become IntentChar instead of mode-select letters.
func decodeKey(ev *tcell.EventKey, textEntry bool) Intent {
	switch ev.Key() {
	case tcell.KeyEscape:
		return Intent{Kind: IntentEscape}
	case tcell.KeyEnter:
		return Intent{Kind: IntentCommit}
	case tcell.KeyTab:
		return Intent{Kind: IntentCycle}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Intent{Kind: IntentBackspace}
	case tcell.KeyUp:
		return Intent{Kind: IntentUp}
	case tcell.KeyDown:
		return Intent{Kind: IntentDown}
	case tcell.KeyLeft:
		return Intent{Kind: IntentLeft}
	case tcell.KeyRight:
		return Intent{Kind: IntentRight}
	case tcell.KeyDelete:
		return Intent{Kind: IntentDelete}
	case tcell.KeyRune:
		r := ev.Rune()
		if textEntry {
			return Intent{Kind: IntentChar, Ch: r}
		}
		switch r {
		case 'a', 'A':
			return Intent{Kind: IntentInsert}
		case 'd', 'D':
			return Intent{Kind: IntentDelete}
		case 'g', 'G':
			return Intent{Kind: IntentGraph}
		case 't', 'T':
			return Intent{Kind: IntentTable}
		case 'm', 'M':
			return Intent{Kind: IntentMenu}
		case 'h', 'H', '?':
			return Intent{Kind: IntentHelp}
		case 'q', 'Q':
			return Intent{Kind: IntentQuit}
		case ']':
			return Intent{Kind: IntentSeriesNext}
		case '[':
			return Intent{Kind: IntentSeriesPrev}
		}
	}
	return Intent{Kind: IntentNone}
}
