package sink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (fc *fakeClipboard) WriteAll(text string) error {
	if fc.err != nil {
		return fc.err
	}

	fc.writes = append(fc.writes, text)
	return nil
}

type fakeWaiter struct {
	board   *fakeClipboard
	seen    []string
	prompts int
	err     error
}

func (fw *fakeWaiter) WaitForKey(prompt string) error {
	fw.prompts++
	// Remember what was in the clipboard while we were waiting.
	fw.seen = append([]string{}, fw.board.writes...)
	return fw.err
}

func TestDisplayUnmasked(t *testing.T) {
	buf := &bytes.Buffer{}
	require.Nil(t, (&Display{Out: buf}).Deliver("abc"))
	require.Contains(t, buf.String(), "abc")
	require.NotContains(t, buf.String(), "\033[0;35;45m")
}

func TestDisplayMasked(t *testing.T) {
	buf := &bytes.Buffer{}
	require.Nil(t, (&Display{Out: buf, Masked: true}).Deliver("abc"))
	require.Equal(t, "\033[0;35;45mabc\033[0m\n", buf.String())
}

func TestClipboardSinkClears(t *testing.T) {
	board := &fakeClipboard{}
	waiter := &fakeWaiter{board: board}
	out := &bytes.Buffer{}

	cs := &ClipboardSink{Board: board, Waiter: waiter, Out: out}
	require.Nil(t, cs.Deliver("hash"))

	require.Equal(t, []string{"hash"}, waiter.seen)
	require.Equal(t, []string{"hash", ""}, board.writes)
	require.Equal(t, 1, waiter.prompts)
	require.Contains(t, out.String(), msgCopied)
	require.Contains(t, out.String(), msgRemoved)
}

func TestClipboardSinkClearsOnWaitError(t *testing.T) {
	board := &fakeClipboard{}
	interrupted := errors.New("interrupt")
	waiter := &fakeWaiter{board: board, err: interrupted}

	cs := &ClipboardSink{Board: board, Waiter: waiter, Out: &bytes.Buffer{}}
	require.Equal(t, interrupted, cs.Deliver("hash"))
	require.Equal(t, []string{"hash", ""}, board.writes)
}

func TestClipboardSinkNoWaiter(t *testing.T) {
	board := &fakeClipboard{}
	cs := &ClipboardSink{Board: board, Out: &bytes.Buffer{}}
	require.Nil(t, cs.Deliver("hash"))
	require.Equal(t, []string{"hash"}, board.writes)
}

func TestClipboardSinkWriteError(t *testing.T) {
	board := &fakeClipboard{err: errors.New("no xclip")}
	out := &bytes.Buffer{}
	cs := &ClipboardSink{Board: board, Out: out}

	err := cs.Deliver("hash")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "no xclip")
	require.NotContains(t, out.String(), msgCopied)
}
