package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/border6/rpp/log"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions handles everything up to, but excluding, the action verb and its
// arguments. The same liberties as ever are taken with the flags package to get the
// usage output looking half-decent, and the same hoops are jumped thru to disallow
// duplicate flags, which pflag otherwise silently accepts.
func (t *rpp) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.BoolVar(&t.cfg.logMajorFlag, "log-major", true, "Log major events to Stdout")
	fs.BoolVar(&t.cfg.logMinorFlag, "log-minor", false,
		"Log minor events to Stdout - this implies --log-major")
	fs.BoolVar(&t.cfg.logDebugFlag, "log-debug", false,
		"Log debug events to Stdout - this implies --log-minor")

	fs.DurationVar(&t.cfg.TTL, "TTL", t.cfg.TTL,
		"Lifetime sent with the SETINPREF command (>= 1s)")
	fs.DurationVar(&t.cfg.timeout, "timeout", t.cfg.timeout,
		"Limit on connecting to the controller and sending preferences")
	fs.IntVar(&t.cfg.port, "port", t.cfg.port,
		"TCP port the remote controller listens on for SETINPREF")
	fs.StringVar(&t.cfg.configFile, "config", "",
		`YAML file with default settings. Explicit command-line
options always override file values.`)
	fs.StringArrayVar(&t.cfg.servers, "server", []string{},
		`DNS server to query - accepts 'host', 'host:port' or
'[v6address]:port' syntax. The default is the system list
from /etc/resolv.conf.
`)

	// Both the standard "flag" package and "spf13/pflag" allow duplicate options
	// without any warning to the user or the program. At least with spf13 we can
	// manage duplicates ourselves via ParseAll.

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options can be duplicated because the
	dupes["version"] = true // user may be fumbling around trying to work it out.

	dupes["server"] = true // Legitimately allowed multiple times

	fs.SetInterspersed(false) // Leave the action verb and its arguments untouched
	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	if len(t.cfg.configFile) > 0 {
		err = t.cfg.loadFile(t.cfg.configFile, fs.Changed)
		if err != nil {
			fmt.Fprintln(log.Out(), "Error:", err.Error())
			return parseFailed
		}
	}

	return t.parseAction(fs)
}

// parseAction extracts the verb and its positional arguments. An unrecognized verb or a
// wrong argument count gets the full usage text, same as the original tool.
func (t *rpp) parseAction(fs *flag.FlagSet) parseResult {
	args := fs.Args()
	switch {
	case len(args) == 2 && args[0] == "resolve":
		t.action = actionResolve
		t.prefix = args[1]

	case len(args) == 4 && args[0] == "advertise":
		t.action = actionAdvertise
		t.prefix = args[1]
		t.localPrefixes = args[2]
		t.prefList = args[3]

	default:
		printUsage(fs)
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- resolve and interact with remote RDE controllers")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     rpp -h | --help | -v | --version")
	fmt.Fprintln(o, "     rpp [options] resolve remote-prefix")
	fmt.Fprintln(o, "     rpp [options] advertise remote-prefix localprefixes preflist")
	fmt.Fprint(o, `
DESCRIPTION
     rpp finds the RDE routing controller responsible for 'remote-prefix' by
     querying the TXT record published under the prefix's reverse DNS name.
     The 'resolve' action stops there and prints the controller's address.

     The 'advertise' action goes on to open a TCP connection to the resolved
     controller and push our inbound routing preferences to it.

     'localprefixes' is the list of the prefixes advertised by the local AS.

     'preflist' is a single argument containing the list of preferred ASes
     with weights to be advertised to the remote controller.

     Both lists pass thru to the controller verbatim.

EXAMPLES
     rpp resolve 203.0.113.0/24
     rpp advertise 203.0.113.0/24 '192.0.2.0/24 198.51.100.0/24' '64552:0 64900:255 65001:127'
`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output() // Save and restore - not sure this is a good idea
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)
}
