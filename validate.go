package main

import (
	"fmt"
	"time"
)

// ValidateCommandLineOptions checks option values regardless of whether they came from
// the command line or a config file. Which is to say it's badly named.
func (t *rpp) ValidateCommandLineOptions() error {
	if t.cfg.TTL < time.Second {
		return fmt.Errorf("--TTL must be at least 1s, not %s", t.cfg.TTL)
	}
	t.cfg.TTLAsSecs = uint32(t.cfg.TTL.Round(time.Second) / time.Second)

	if t.cfg.port < 1 || t.cfg.port > 65535 {
		return fmt.Errorf("--port %d is not a valid TCP port", t.cfg.port)
	}

	if t.cfg.timeout < time.Second {
		return fmt.Errorf("--timeout must be at least 1s, not %s", t.cfg.timeout)
	}

	return nil
}
