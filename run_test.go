package main

import (
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"

	"github.com/border6/rpp/log"
	"github.com/border6/rpp/mock"
	mockDNS "github.com/border6/rpp/mock/dns"
)

// startTXTServer starts a mock name server which answers every query with the supplied
// TXT rdata strings under the queried name... sort of. The ExchangeServer ignores the
// question so the owner name on the RRs doesn't actually matter.
func startTXTServer(t *testing.T, serverAddr string, rdata ...string) (*dns.Server, *mockDNS.ExchangeServer) {
	t.Helper()
	answer := make([]dns.RR, 0, len(rdata))
	for _, data := range rdata {
		rr, err := dns.NewRR(`0.113.0.203.in-addr.arpa. 60 IN TXT "` + data + `"`)
		if err != nil {
			t.Fatal("Test setup failed", err)
		}
		answer = append(answer, rr)
	}

	h := &mockDNS.ExchangeServer{}
	h.SetResponse(&mockDNS.ExchangeResponse{Answer: answer})

	return mockDNS.StartServer("udp", serverAddr, h), h
}

func TestRunResolveFound(t *testing.T) {
	const serverAddr = "127.0.0.1:53070"
	out := &mock.IOWriter{}
	log.SetOut(out)

	srv, _ := startTXTServer(t, serverAddr, "RDE:198.51.100.9")
	defer srv.Shutdown()

	status := run([]string{programName, "--server", serverAddr,
		"resolve", "203.0.113.0/24"})
	if status != 0 {
		t.Error("Expected exit status 0, got", status)
	}
	exp := "RDE controller for 203.0.113.0/24 is 198.51.100.9\n"
	if !strings.Contains(out.String(), exp) {
		t.Errorf("Output mismatch.\nGot: %q\nExp: %q", out.String(), exp)
	}
}

func TestRunResolveNotFound(t *testing.T) {
	const serverAddr = "127.0.0.1:53071"
	out := &mock.IOWriter{}
	log.SetOut(out)

	srv, _ := startTXTServer(t, serverAddr, "v=spf1 -all") // TXT exists, no RDE marker
	defer srv.Shutdown()

	status := run([]string{programName, "--server", serverAddr,
		"resolve", "203.0.113.0/24"})
	if status != 0 {
		t.Error("Not-found is a normal completion, got status", status)
	}
	if !strings.Contains(out.String(), "No RDE entry found for 203.0.113.0/24") {
		t.Error("Expected a no-entry report, got", out.String())
	}
}

func TestRunResolveDNSFailure(t *testing.T) {
	const serverAddr = "127.0.0.1:53072"
	out := &mock.IOWriter{}
	log.SetOut(out)

	h := &mockDNS.ExchangeServer{}
	h.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeServerFailure})
	srv := mockDNS.StartServer("udp", serverAddr, h)
	defer srv.Shutdown()

	status := run([]string{programName, "--server", serverAddr,
		"resolve", "203.0.113.0/24"})
	if status != 0 {
		t.Error("A DNS failure still completes the run, got status", status)
	}
	if !strings.Contains(out.String(), "ERROR: DNS failure (") {
		t.Error("Expected a DNS failure report, got", out.String())
	}
}

func TestRunResolveBadPrefix(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	status := run([]string{programName, "resolve", "abc"})
	if status != 1 {
		t.Error("A bad prefix is a hard failure, got status", status)
	}
	if !strings.Contains(out.String(), "ERROR: failed to compute a reverse DNS for 'abc'") {
		t.Error("Expected a reverse DNS failure report, got", out.String())
	}
}

func TestRunUsageFailures(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	if status := run([]string{programName}); status != 1 {
		t.Error("No verb should exit 1, got", status)
	}
	if status := run([]string{programName, "frobnicate", "x"}); status != 1 {
		t.Error("Unknown verb should exit 1, got", status)
	}
	if status := run([]string{programName, "--TTL", "1ms", "resolve", "203.0.113.0/24"}); status != 1 {
		t.Error("Invalid option value should exit 1, got", status)
	}
	if !strings.Contains(out.String(), "Fatal") {
		t.Error("Expected a Fatal report for the bad TTL, got", out.String())
	}
}

func TestRunAdvertise(t *testing.T) {
	const serverAddr = "127.0.0.1:53073"
	out := &mock.IOWriter{}
	log.SetOut(out)

	srv, _ := startTXTServer(t, serverAddr, "RDE:127.0.0.1")
	defer srv.Shutdown()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal("Listen failed", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	got := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			got <- "accept error: " + err.Error()
			return
		}
		defer conn.Close()
		b, _ := io.ReadAll(conn)
		got <- string(b)
	}()

	status := run([]string{programName,
		"--server", serverAddr, "--port", strconv.Itoa(port), "--TTL", "45m",
		"advertise", "203.0.113.0/24", "192.0.2.0/24", "64552:0 64900:255"})
	if status != 0 {
		t.Fatal("Expected exit status 0, got", status, out.String())
	}

	if !strings.Contains(out.String(), "Sending preferences...") {
		t.Error("Missing progress line, got", out.String())
	}
	if !strings.Contains(out.String(), "Done.") {
		t.Error("Missing completion line, got", out.String())
	}

	exp := "SETINPREF 2700\t192.0.2.0/24\t64552:0 64900:255\r\n"
	select {
	case s := <-got:
		if s != exp {
			t.Errorf("Wire bytes mismatch.\nGot: %q\nExp: %q", s, exp)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Controller listener never delivered")
	}
}

func TestRunAdvertiseSkippedOnFailure(t *testing.T) {
	const serverAddr = "127.0.0.1:53074"
	out := &mock.IOWriter{}
	log.SetOut(out)

	h := &mockDNS.ExchangeServer{}
	h.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeNameError})
	srv := mockDNS.StartServer("udp", serverAddr, h)
	defer srv.Shutdown()

	status := run([]string{programName, "--server", serverAddr,
		"advertise", "203.0.113.0/24", "192.0.2.0/24", "64552:0"})
	if status != 0 {
		t.Error("Expected exit status 0, got", status)
	}
	if strings.Contains(out.String(), "Sending preferences...") {
		t.Error("Advertise must be skipped when resolution found nothing")
	}
	if !strings.Contains(out.String(), "No RDE entry found for 203.0.113.0/24") {
		t.Error("Expected a no-entry report, got", out.String())
	}
}

func TestRunAdvertiseConnectFailure(t *testing.T) {
	const serverAddr = "127.0.0.1:53075"
	out := &mock.IOWriter{}
	log.SetOut(out)

	srv, _ := startTXTServer(t, serverAddr, "RDE:127.0.0.1")
	defer srv.Shutdown()

	// Find a port that nothing is listening on
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal("Listen failed", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	status := run([]string{programName,
		"--server", serverAddr, "--port", strconv.Itoa(port),
		"advertise", "203.0.113.0/24", "192.0.2.0/24", "64552:0"})
	if status != 0 {
		t.Error("A failed send still completes the run, got status", status)
	}
	if !strings.Contains(out.String(), "connection to the remote controller failed") {
		t.Error("Expected a connect failure report, got", out.String())
	}
}
