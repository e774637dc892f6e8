// Command selectionsdemo drives a SelectionStorage against a static
// multi-line buffer in a terminal. It owns no text-editing logic of its
// own, only a read-only view over a fixed buffer and a thin
// key-to-operation dispatcher.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/pkreyenhop/selections"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app := &appState{
		lines:   sampleBuffer(),
		storage: selections.New(),
		primary: selections.NewPosition(0, 0),
	}

	for {
		draw(screen, app)
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !handleKey(app, e) {
				return nil
			}
		}
	}
}

// sampleBuffer is the demo's fixed text; selectionsdemo never edits it.
func sampleBuffer() []string {
	return []string{
		"package main",
		"",
		"func main() {",
		"\tfmt.Println(\"hello, selections\")",
		"}",
		"",
		"// arrows move, shift extends, i inserts, r replace-inserts, d deletes",
	}
}
