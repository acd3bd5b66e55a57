package tui

import "github.com/lukaszgryglicki/mathplex/internal/history"

// recordedMsg is sent when an evaluation has been written to the history store.
type recordedMsg struct {
	entry history.Entry
	err   error
}
