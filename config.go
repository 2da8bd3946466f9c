package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/border6/rpp/log"
	"github.com/border6/rpp/pregen"
	"github.com/border6/rpp/rde"
)

const (
	programName = "rpp"

	defaultProjectURL = "https://github.com/border6/rpp"

	defaultSendTimeout = 10 * time.Second
)

var defaultTTL = uint32(time.Hour.Seconds()) // The long-standing SETINPREF default of 3600s

// config defines the settings used across a single rpp run. They come from built-in
// defaults, then an optional YAML file, then command-line options, with later sources
// winning.
type config struct {
	projectURL string

	logMajorFlag bool // Major events such as the resolution outcome
	logMinorFlag bool // Details associated with a Major event
	logDebugFlag bool // Developer flag - logs each DNS exchange

	TTL       time.Duration // Lifetime sent with the SETINPREF command
	TTLAsSecs uint32        // Converted and rounded from TTL

	port    int           // TCP port the remote controller listens on
	timeout time.Duration // Bounds the controller connect+send

	servers []string // DNS servers to query - empty means use /etc/resolv.conf

	configFile string // "--config"
}

func newConfig() *config {
	t := &config{
		projectURL: defaultProjectURL,
		TTL:        time.Second * time.Duration(defaultTTL),
		port:       rde.DefaultPort,
		timeout:    defaultSendTimeout,
	}
	info, ok := debug.ReadBuildInfo()
	if ok {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

// fileConfig mirrors the config settings which may be supplied via a YAML file.
type fileConfig struct {
	Servers []string `yaml:"servers"`
	Port    int      `yaml:"port"`
	TTL     string   `yaml:"ttl"`
	Timeout string   `yaml:"timeout"`
}

// loadFile overlays settings from a YAML file onto the config. Options explicitly set
// on the command line always win over file values which is why the flag-changed
// predicate is passed in.
func (t *config) loadFile(path string, changed func(name string) bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	err = yaml.Unmarshal(b, &fc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if len(fc.Servers) > 0 && !changed("server") {
		t.servers = fc.Servers
	}
	if fc.Port != 0 && !changed("port") {
		t.port = fc.Port
	}
	if len(fc.TTL) > 0 && !changed("TTL") {
		d, err := time.ParseDuration(fc.TTL)
		if err != nil {
			return fmt.Errorf("%s: ttl: %w", path, err)
		}
		t.TTL = d
	}
	if len(fc.Timeout) > 0 && !changed("timeout") {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("%s: timeout: %w", path, err)
		}
		t.timeout = d
	}

	return nil
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program:     %s %s (%s)\n",
		programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(log.Out(), "Project:     %s\n", t.projectURL)
}
