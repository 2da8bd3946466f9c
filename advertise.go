package main

import (
	"context"
	"fmt"

	"github.com/border6/rpp/log"
	"github.com/border6/rpp/rde"
)

// advertisePreferences pushes the caller-supplied preference lists to the resolved
// controller. Send failures are reported but do not change the exit status - the
// resolution already completed normally.
func (t *rpp) advertisePreferences(ctx context.Context, controller string) int {
	out := log.Out()
	fmt.Fprintln(out, "Sending preferences...")

	ctx, cancel := context.WithTimeout(ctx, t.cfg.timeout)
	defer cancel()

	err := rde.AdvertiseInPref(ctx, controller, t.cfg.port, t.cfg.TTLAsSecs,
		t.localPrefixes, t.prefList)
	if err != nil {
		fmt.Fprintf(out, "ERROR: %s\n", err.Error())
		return 0
	}

	fmt.Fprintln(out, "Done.")

	return 0
}
