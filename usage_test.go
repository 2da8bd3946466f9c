package main

import (
	"strings"
	"testing"

	"github.com/border6/rpp/log"
	"github.com/border6/rpp/mock"
)

func TestUsage(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	testCases := []struct {
		options string
		expect  string
		result  parseResult
	}{
		{"", "SYNOPSIS", parseFailed}, // No verb at all
		{"-h", "SYNOPSIS", parseStop},
		{"--help", "SYNOPSIS", parseStop},
		{"-v", "Program:", parseStop},
		{"--version", "Program:", parseStop},
		{"goop", "SYNOPSIS", parseFailed},
		{"-X", "unknown shorthand flag", parseFailed},
		{"resolve", "SYNOPSIS", parseFailed},           // Missing prefix
		{"resolve a b", "SYNOPSIS", parseFailed},       // Too many args
		{"advertise 203.0.113.0/24", "SYNOPSIS", parseFailed},
		{"advertise 203.0.113.0/24 192.0.2.0/24", "SYNOPSIS", parseFailed},
		{"resolve 203.0.113.0/24", "", parseContinue},
		{"advertise 203.0.113.0/24 192.0.2.0/24 64552:0", "", parseContinue},
		{"--port 4343 --port 4344 resolve 203.0.113.0/24",
			"Duplicate option", parseFailed},
		{"--server 192.0.2.1 --server 192.0.2.2 resolve 203.0.113.0/24",
			"", parseContinue}, // This duplicate is ok
		{"--server 192.0.2.1 --port 4444 --TTL 45m --timeout 5s" +
			" --log-major --log-minor --log-debug=true" +
			" resolve 203.0.113.0/24", "", parseContinue}, // Every legit option
	}

	for ix, tc := range testCases {
		out.Reset()
		ar := newRpp(newConfig(), nil)
		args := append([]string{programName}, strings.Fields(tc.options)...)
		result := ar.parseOptions(args)
		if result != tc.result {
			t.Error(ix, "Result mismatch for", tc.options, "got", result)
		}
		if len(tc.expect) > 0 && !strings.Contains(out.String(), tc.expect) {
			t.Error(ix, "Expected", tc.expect, "in output, got", out.String())
		}
	}
}

func TestUsageVerbArguments(t *testing.T) {
	log.SetOut(&mock.IOWriter{})

	ar := newRpp(newConfig(), nil)
	result := ar.parseOptions([]string{programName,
		"advertise", "203.0.113.0/24", "192.0.2.0/24 198.51.100.0/24", "64552:0 64900:255"})
	if result != parseContinue {
		t.Fatal("Expected parseContinue, got", result)
	}
	if ar.action != actionAdvertise {
		t.Error("Wrong action", ar.action)
	}
	if ar.prefix != "203.0.113.0/24" {
		t.Error("Wrong prefix", ar.prefix)
	}
	if ar.localPrefixes != "192.0.2.0/24 198.51.100.0/24" {
		t.Error("Wrong localPrefixes", ar.localPrefixes)
	}
	if ar.prefList != "64552:0 64900:255" {
		t.Error("Wrong prefList", ar.prefList)
	}

	ar = newRpp(newConfig(), nil)
	result = ar.parseOptions([]string{programName, "resolve", "2001:db8::/32"})
	if result != parseContinue {
		t.Fatal("Expected parseContinue, got", result)
	}
	if ar.action != actionResolve || ar.prefix != "2001:db8::/32" {
		t.Error("Resolve verb not parsed", ar.action, ar.prefix)
	}
}
