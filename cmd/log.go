package cmd

import (
	stdlog "log"
	"os"

	"github.com/mattn/go-isatty"
	colorlog "github.com/sahib/termpasshash/util/log"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	log.SetFormatter(&colorlog.FancyLogFormatter{
		UseColors: isatty.IsTerminal(os.Stderr.Fd()),
	})

	// Libraries that use the stdlib logger should end up in our log too.
	stdlog.SetFlags(0)
	stdlog.SetOutput(&colorlog.Writer{Level: log.WarnLevel})
}

func setLogPath(path string) error {
	switch path {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "stderr", "":
		log.SetOutput(os.Stderr)
	default:
		fd, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}

		log.SetFormatter(&colorlog.FancyLogFormatter{UseColors: false})
		log.SetOutput(fd)
	}

	return nil
}

func setVerbose(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
