package cmd

import (
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sahib/config"
	"github.com/sahib/termpasshash/cmd/pwd"
	"github.com/sahib/termpasshash/derive"
	"github.com/sahib/termpasshash/sink"
	"github.com/sahib/termpasshash/util"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	programName = "TermPassHash"
	msgLegacy   = "WARNING: running in legacy SHA3-512 iterated mode!"
	msgVerify   = "Verify:"
)

// Options is everything a single invocation needs to know.
// It is built from the command line flags and the config file.
type Options struct {
	Legacy    bool
	Unmask    bool
	Create    bool
	Print     bool
	MaskInput bool
	Base16    bool

	// Rounds and MaxLength are asked for when they are 0.
	Rounds    int
	MaxLength int

	// Password and Salt bypass the prompt when not empty.
	Password string
	Salt     string

	Argon2     derive.Argon2Params
	MinEntropy float64
	WaitForKey bool
}

// SecretSource asks the user for everything a pass needs.
type SecretSource interface {
	Secret(prompt string) (*derive.Secret, error)
	NewSecret(prompt string, minEntropy float64) (*derive.Secret, error)
	Int(prompt string) (int, error)
	WaitForKey(prompt string) error
}

func optionsFromContext(ctx *cli.Context, cfg *config.Config) Options {
	opts := Options{
		Legacy:    ctx.Bool("legacy"),
		Unmask:    ctx.Bool("unmask"),
		Create:    ctx.Bool("create"),
		Print:     ctx.Bool("print"),
		MaskInput: ctx.Bool("mask-input"),
		Base16:    ctx.Bool("base16"),
		Rounds:    int(cfg.Int("legacy.default_rounds")),
		MaxLength: int(cfg.Int("output.default_max_length")),
		Password:  ctx.String("password"),
		Salt:      ctx.String("salt"),
		Argon2: derive.Argon2Params{
			MemoryKiB: uint32(cfg.Int("argon2.memory_kib")),
			Time:      uint32(cfg.Int("argon2.time")),
			Threads:   uint8(cfg.Int("argon2.threads")),
			KeyLen:    uint32(cfg.Int("argon2.key_len")),
		},
		MinEntropy: float64(cfg.Int("prompt.min_entropy")),
		WaitForKey: cfg.Bool("clipboard.wait_for_key"),
	}

	if ctx.IsSet("rounds") {
		opts.Rounds = ctx.Int("rounds")
	}

	if ctx.IsSet("max-length") {
		opts.MaxLength = ctx.Int("max-length")
	}

	return opts
}

func (opts Options) validate() error {
	if opts.Rounds < 0 {
		return ExitCode{BadArgs, fmt.Sprintf("--rounds must be >= 0, got %d", opts.Rounds)}
	}

	if opts.MaxLength < 0 {
		return ExitCode{BadArgs, fmt.Sprintf("--max-length must be >= 0, got %d", opts.MaxLength)}
	}

	if !opts.Legacy {
		if err := opts.Argon2.Validate(); err != nil {
			return ExitCode{BadConfig, fmt.Sprintf("invalid argon2 config: %v", err)}
		}
	}

	return nil
}

func fixedSecret(val string) derive.AcquireFunc {
	return func() (*derive.Secret, error) {
		return derive.NewSecret([]byte(val)), nil
	}
}

func promptedSecret(prompt func() (*derive.Secret, error), what string) derive.AcquireFunc {
	return func() (*derive.Secret, error) {
		secret, err := prompt()
		if err != nil {
			return nil, ExitCode{BadPassword, fmt.Sprintf("failed to read %s: %v", what, err)}
		}

		return secret, nil
	}
}

func passwordSource(opts Options, src SecretSource) derive.AcquireFunc {
	if opts.Password != "" {
		return fixedSecret(opts.Password)
	}

	if opts.Create {
		return promptedSecret(func() (*derive.Secret, error) {
			return src.NewSecret("Password: ", opts.MinEntropy)
		}, "password")
	}

	return promptedSecret(func() (*derive.Secret, error) {
		return src.Secret("Password: ")
	}, "password")
}

func saltSource(opts Options, src SecretSource) derive.AcquireFunc {
	if opts.Salt != "" {
		return fixedSecret(opts.Salt)
	}

	return promptedSecret(func() (*derive.Secret, error) {
		return src.Secret("Salt: ")
	}, "salt")
}

func promptInt(src SecretSource, prompt string) (int, error) {
	num, err := src.Int(prompt)
	if err != nil {
		return 0, ExitCode{BadArgs, fmt.Sprintf("failed to read number: %v", err)}
	}

	return num, nil
}

// modeForPass asks for the parameters that were not given up front.
func modeForPass(opts Options, src SecretSource) (derive.Mode, int, error) {
	mode := derive.ModernMode(opts.Argon2)
	if opts.Legacy {
		rounds := opts.Rounds
		if rounds == 0 {
			var err error
			if rounds, err = promptInt(src, "Rounds: "); err != nil {
				return mode, 0, err
			}

			if rounds < 1 {
				log.Warningf("rounds must be at least 1; using 1 instead of %d", rounds)
				rounds = 1
			}
		}

		mode = derive.LegacyMode(rounds, opts.Base16)
	}

	maxLen := opts.MaxLength
	if maxLen == 0 {
		var err error
		if maxLen, err = promptInt(src, "Max chars: "); err != nil {
			return mode, 0, err
		}
	}

	return mode, maxLen, nil
}

func printBanner(out io.Writer, opts Options) {
	color.New(color.FgMagenta, color.Bold).Fprintln(out, programName)
	if opts.Legacy {
		color.New(color.FgYellow).Fprintln(out, msgLegacy)
		log.Debug("using legacy SHA3-512 iterated mode")
		return
	}

	log.WithFields(log.Fields{
		"memory":  humanize.IBytes(uint64(opts.Argon2.MemoryKiB) * 1024),
		"time":    opts.Argon2.Time,
		"threads": opts.Argon2.Threads,
		"key_len": humanize.IBytes(uint64(opts.Argon2.KeyLen)),
	}).Debug("using argon2id")
}

// hashFlow runs one or two passes and hands the accepted hash to dst.
// Nothing is delivered if the passes disagree or anything fails.
func hashFlow(opts Options, src SecretSource, dst sink.Sink, out io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}

	printBanner(out, opts)

	passes := 0
	pass := func() (string, error) {
		passes++
		if passes == 2 {
			color.New(color.FgMagenta).Fprintln(out, msgVerify)
		}

		var hash string
		err := derive.WithSecrets(
			passwordSource(opts, src),
			saltSource(opts, src),
			func(password, salt *derive.Secret) error {
				mode, maxLen, err := modeForPass(opts, src)
				if err != nil {
					return err
				}

				log.Debugf("deriving with %s", mode)
				hash, err = derive.Pipeline(mode, password.Bytes(), salt.Bytes(), maxLen)
				return err
			},
		)

		return hash, err
	}

	hash, err := derive.Verify(opts.Create, pass)
	log.Debugf("verification finished after %d pass(es)", passes)
	if err != nil {
		return err
	}

	return dst.Deliver(hash)
}

func buildSink(opts Options, src SecretSource, out io.Writer) (sink.Sink, error) {
	if opts.Print {
		return &sink.Display{Out: out, Masked: !opts.Unmask}, nil
	}

	if !sink.ClipboardSupported() {
		return nil, ExitCode{
			BadArgs,
			"no clipboard utility found (e.g. xclip or xsel); use --print instead",
		}
	}

	cs := &sink.ClipboardSink{Board: sink.SystemClipboard(), Out: out}
	if opts.WaitForKey {
		cs.Waiter = src
	}

	return cs, nil
}

func handleHash(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		commandNotFound(ctx, ctx.Args().First())
		return ExitCode{BadArgs, "unknown command"}
	}

	cfg, _, err := openConfig(ctx)
	if err != nil {
		return err
	}

	opts := optionsFromContext(ctx, cfg)
	if err := opts.validate(); err != nil {
		return err
	}

	prompter, err := pwd.New(opts.MaskInput)
	if err != nil {
		return ExitCode{UnknownError, fmt.Sprintf("failed to open terminal: %v", err)}
	}

	defer util.Closer(prompter)

	dst, err := buildSink(opts, prompter, os.Stdout)
	if err != nil {
		return err
	}

	return hashFlow(opts, prompter, dst, os.Stdout)
}
