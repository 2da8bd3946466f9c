package main

import (
	"context"
	"fmt"

	"github.com/border6/rpp/dnsutil"
	"github.com/border6/rpp/log"
	"github.com/border6/rpp/rde"
)

// resolveController computes the reverse DNS name for the prefix and looks up the
// controller behind it. The result line is always printed here, for both verbs.
//
// The returned bool reports whether a controller was found; the int is the process exit
// status which is only non-zero when the reverse name could not be computed at all. A
// DNS failure is reported but, as ever, leaves the exit status at zero.
func (t *rpp) resolveController(ctx context.Context) (string, bool, int) {
	out := log.Out()

	revName, err := dnsutil.ReverseQName(dnsutil.PrefixAddress(t.prefix))
	if err != nil {
		log.Minorf("Reverse name: %s", err.Error())
		fmt.Fprintf(out, "ERROR: failed to compute a reverse DNS for '%s'\n", t.prefix)
		return "", false, 1
	}

	log.Minorf("Reverse name for %s is %s", t.prefix, revName)

	controller, found, err := rde.LookupController(ctx, t.resolver, revName)
	if err != nil {
		fmt.Fprintf(out, "ERROR: DNS failure (%s)\n", err.Error())
		return "", false, 0
	}
	if !found {
		fmt.Fprintf(out, "No RDE entry found for %s\n", t.prefix)
		return "", false, 0
	}

	fmt.Fprintf(out, "RDE controller for %s is %s\n", t.prefix, controller)

	return controller, true, 0
}
