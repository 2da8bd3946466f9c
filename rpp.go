package main

import (
	"context"

	"github.com/border6/rpp/resolver"
)

// action is what the command-line verb asked for.
type action int

const (
	actionResolve action = iota
	actionAdvertise
)

// The rpp container exists so that most of the "main" functionality can be delegated to
// support functions and keep the flow of main() nice and clean.
type rpp struct {
	cfg      *config
	resolver resolver.Resolver

	action        action
	prefix        string // remote prefix as given on the command line
	localPrefixes string // advertise only - passed thru to the wire verbatim
	prefList      string // advertise only - passed thru to the wire verbatim
}

func newRpp(cfg *config, r resolver.Resolver) *rpp {
	t := &rpp{cfg: cfg, resolver: r}
	if t.cfg == nil {
		t.cfg = newConfig()
	}

	return t
}

// execute runs the parsed action to completion and returns the process exit status.
// Resolution happens for both verbs; the advertise step only proceeds when a controller
// was actually found.
func (t *rpp) execute(ctx context.Context) int {
	controller, ok, status := t.resolveController(ctx)
	if t.action == actionResolve || !ok {
		return status
	}

	return t.advertisePreferences(ctx, controller)
}
