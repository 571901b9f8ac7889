package pwd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"github.com/sahib/termpasshash/derive"
)

const (
	msgLowEntropy  = "\nPlease enter a password with at least %g bits entropy."
	msgParsed      = " > parsed"
	msgCouldNotPar = " > could not parse"
)

// ErrParse is returned by ParseInt when the input is not a non-negative
// integer. Int handles it itself by asking again.
var ErrParse = errors.New("pwd: could not parse number")

// Prompter asks the user for secrets and numbers.
// On a terminal it uses readline, otherwise it reads plain lines.
type Prompter struct {
	rl   *readline.Instance
	in   *bufio.Reader
	out  io.Writer
	mask bool
}

// New creates a prompter on stdin. If mask is true, typed characters
// of secrets are shown as '*'.
func New(mask bool) (*Prompter, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return NewFromReader(os.Stdin, os.Stdout, mask), nil
	}

	rl, err := readline.New("")
	if err != nil {
		return nil, err
	}

	return &Prompter{rl: rl, out: os.Stdout, mask: mask}, nil
}

// NewFromReader creates a non-interactive prompter reading lines from r
// and writing prompts to w.
func NewFromReader(r io.Reader, w io.Writer, mask bool) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w, mask: mask}
}

// Close releases the terminal.
func (p *Prompter) Close() error {
	if p.rl == nil {
		return nil
	}

	return p.rl.Close()
}

func (p *Prompter) readPlainLine(prompt string) ([]byte, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, err
	}

	// Input from a pipe is not echoed, so the line ending is missing:
	fmt.Fprintln(p.out)

	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}

	return line, nil
}

type listenerFunc func(line []rune, pos int, key rune) ([]rune, int, bool)

func (p *Prompter) readSecretLine(prompt string, listener listenerFunc) ([]byte, error) {
	if p.rl == nil {
		return p.readPlainLine(prompt)
	}

	cfg := p.rl.GenPasswordConfig()
	cfg.Prompt = prompt
	cfg.EnableMask = p.mask
	cfg.MaskRune = '*'
	if listener != nil {
		cfg.SetListener(listener)
	}

	return p.rl.ReadPasswordWithConfig(cfg)
}

func (p *Prompter) readLine(prompt string) (string, error) {
	if p.rl == nil {
		line, err := p.readPlainLine(prompt)
		return string(line), err
	}

	p.rl.SetPrompt(prompt)
	return p.rl.Readline()
}

// Secret asks for a single secret, e.g. a password or a salt.
func (p *Prompter) Secret(prompt string) (*derive.Secret, error) {
	buf, err := p.readSecretLine(color.YellowString(prompt), nil)
	if err != nil {
		return nil, err
	}

	return derive.NewSecret(buf), nil
}

func createStrengthPrompt(password []rune, prefix string) string {
	symbol, colorFn := "", color.RedString
	strength := zxcvbn.PasswordStrength(string(password), nil)

	switch {
	case strength.Score <= 1:
		symbol = "✗"
		colorFn = color.RedString
	case strength.Score <= 2:
		symbol = "⚡"
		colorFn = color.MagentaString
	case strength.Score <= 3:
		symbol = "⚠"
		colorFn = color.YellowString
	case strength.Score <= 4:
		symbol = "✔"
		colorFn = color.GreenString
	}

	prompt := colorFn(symbol)
	if strength.Entropy > 0 {
		entropy := fmt.Sprintf(" %3.0f", strength.Entropy)
		prompt += color.CyanString(entropy)
	} else {
		prompt += color.CyanString("   0")
	}

	prompt += colorFn(" " + prefix)
	return prompt
}

// NewSecret asks for a secret that is about to be used for a new hash.
//
// While typing, the prompt shows the strength of the input and its entropy.
// If minEntropy is > 0 and the entered secret has less entropy,
// the user is asked again.
func (p *Prompter) NewSecret(prompt string, minEntropy float64) (*derive.Secret, error) {
	var listener listenerFunc
	if p.rl != nil {
		listener = func(line []rune, pos int, key rune) ([]rune, int, bool) {
			p.rl.SetPrompt(createStrengthPrompt(line, prompt))
			p.rl.Refresh()
			return nil, 0, false
		}
	}

	for {
		buf, err := p.readSecretLine(createStrengthPrompt(nil, prompt), listener)
		if err != nil {
			return nil, err
		}

		if minEntropy <= 0 {
			return derive.NewSecret(buf), nil
		}

		strength := zxcvbn.PasswordStrength(string(buf), nil)
		if strength.Entropy >= minEntropy {
			return derive.NewSecret(buf), nil
		}

		derive.NewSecret(buf).Wipe()
		fmt.Fprintf(p.out, color.YellowString(msgLowEntropy)+"\n", minEntropy)
	}
}

// ParseInt parses a non-negative integer. Surrounding whitespace is ignored.
func ParseInt(s string) (int, error) {
	num, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return int(num), nil
}

// Int asks for a non-negative integer until the input parses.
// Only reading errors (e.g. EOF or Ctrl-C) are returned.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		line, err := p.readLine(color.YellowString(prompt))
		if err != nil {
			return 0, err
		}

		num, err := ParseInt(line)
		if err == nil {
			fmt.Fprintln(p.out, color.GreenString(msgParsed))
			return num, nil
		}

		fmt.Fprintln(p.out, color.RedString(msgCouldNotPar))
	}
}

// WaitForKey blocks until the user hits enter.
func (p *Prompter) WaitForKey(prompt string) error {
	_, err := p.readLine(prompt)
	if err == io.EOF {
		return nil
	}

	return err
}
