package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/border6/rpp/log"
	"github.com/border6/rpp/resolver"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

//////////////////////////////////////////////////////////////////////

func main() {
	os.Exit(run(os.Args))
}

// run is main() less the process exit so that tests can drive the whole program.
func run(args []string) int {
	t := newRpp(nil, nil)
	switch t.parseOptions(args) {
	case parseStop:
		return 0
	case parseFailed:
		return 1
	case parseContinue:
	}

	// Transfer logging options to the log package

	if t.cfg.logMajorFlag {
		log.SetLevel(log.MajorLevel)
	}
	if t.cfg.logMinorFlag {
		log.SetLevel(log.MinorLevel)
	}
	if t.cfg.logDebugFlag {
		log.SetLevel(log.DebugLevel)
	}

	// Validate everything that is likely a typo or usage error
	err := t.ValidateCommandLineOptions()
	if err != nil {
		reportError("Fatal", err)
		return 1
	}

	if t.resolver == nil {
		t.resolver = resolver.NewResolver(t.cfg.servers...)
	}

	return t.execute(context.Background())
}
