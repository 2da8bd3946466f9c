// This file exists so that "go doc github.com/border6/rpp" displays something useful.

/*
rpp is a command-line tool to resolve and interact with remote RDE routing controllers.

A controller announces itself by publishing a TXT record, tagged with an "RDE:" marker,
under the reverse DNS name of the prefixes it is responsible for. rpp computes the
reverse name for a given prefix, finds the controller behind it, and can then push
inbound routing preferences to that controller with a single fire-and-forget SETINPREF
command over TCP.

Typical invocations:

	rpp resolve 203.0.113.0/24
	rpp advertise 203.0.113.0/24 '192.0.2.0/24 198.51.100.0/24' '64552:0 64900:255 65001:127'
*/
package main
