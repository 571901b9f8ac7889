// Package sink implements the destinations of an accepted hash:
// the terminal (Display) and the system clipboard (ClipboardSink).
// Every invocation delivers to exactly one sink, exactly once.
package sink

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	e "github.com/pkg/errors"
	"github.com/sahib/termpasshash/util/colors"
)

const (
	msgCopied  = "Hash copied into clipboard!"
	msgRemoved = "Hash removed from clipboard!"
	msgWaitKey = "Press enter to clear the clipboard."
)

// Sink receives the final hash.
type Sink interface {
	Deliver(hash string) error
}

// Display prints the hash to Out.
type Display struct {
	Out io.Writer

	// Masked prints the hash with equal fore- and background colors.
	Masked bool
}

// Deliver prints hash on a line of its own.
func (d *Display) Deliver(hash string) error {
	line := color.MagentaString(hash)
	if d.Masked {
		line = colors.Mask(hash, colors.Magenta)
	}

	_, err := fmt.Fprintln(d.Out, line)
	return err
}

// Clipboard is the part of a clipboard we need.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard returns the clipboard of the desktop session.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// ClipboardSupported is false when no clipboard utility was found
// (e.g. xclip or xsel on Linux).
func ClipboardSupported() bool {
	return !clipboard.Unsupported
}

// KeyWaiter blocks until the user signals to continue.
type KeyWaiter interface {
	WaitForKey(prompt string) error
}

// ClipboardSink copies the hash into Board. If Waiter is set, it waits for
// the user and clears the clipboard again afterwards.
type ClipboardSink struct {
	Board  Clipboard
	Waiter KeyWaiter
	Out    io.Writer
}

// Deliver copies hash into the clipboard.
func (cs *ClipboardSink) Deliver(hash string) error {
	if err := cs.Board.WriteAll(hash); err != nil {
		return e.Wrap(err, "failed to copy hash into clipboard")
	}

	bold := color.New(color.FgCyan, color.Bold)
	bold.Fprintln(cs.Out, msgCopied)

	if cs.Waiter == nil {
		return nil
	}

	// Clear the clipboard even if waiting failed (e.g. Ctrl-C).
	waitErr := cs.Waiter.WaitForKey(msgWaitKey)
	if err := cs.Board.WriteAll(""); err != nil {
		return e.Wrap(err, "failed to clear clipboard")
	}

	bold.Fprintln(cs.Out, msgRemoved)
	return waitErr
}
