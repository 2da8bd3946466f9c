package rde

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/border6/rpp/log"
	"github.com/border6/rpp/mock"
)

// captureListener accepts a single connection and returns everything written to it.
func captureListener(t *testing.T) (net.Listener, int, chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal("Listen failed", err)
	}

	got := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			got <- "accept error: " + err.Error()
			return
		}
		defer conn.Close()
		b, _ := io.ReadAll(conn) // Reads until the client closes
		got <- string(b)
	}()

	return ln, ln.Addr().(*net.TCPAddr).Port, got
}

func TestAdvertiseInPref(t *testing.T) {
	log.SetOut(&mock.IOWriter{})
	log.SetLevel(log.SilentLevel)

	ln, port, got := captureListener(t)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := AdvertiseInPref(ctx, "127.0.0.1", port, 3600,
		"192.0.2.0/24", "64552:0 64900:255")
	if err != nil {
		t.Fatal("Unexpected send error", err)
	}

	exp := "SETINPREF 3600\t192.0.2.0/24\t64552:0 64900:255\r\n"
	select {
	case s := <-got:
		if s != exp {
			t.Errorf("Wire bytes mismatch.\nGot: %q\nExp: %q", s, exp)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Capture listener never delivered")
	}
}

func TestAdvertiseInPrefMultiplePrefixes(t *testing.T) {
	log.SetOut(&mock.IOWriter{})
	log.SetLevel(log.SilentLevel)

	ln, port, got := captureListener(t)
	defer ln.Close()

	err := AdvertiseInPref(context.Background(), "127.0.0.1", port, 7200,
		"192.0.2.0/24 198.51.100.0/24", "64552:0 64900:255 65001:127")
	if err != nil {
		t.Fatal("Unexpected send error", err)
	}

	exp := "SETINPREF 7200\t192.0.2.0/24 198.51.100.0/24\t64552:0 64900:255 65001:127\r\n"
	if s := <-got; s != exp {
		t.Errorf("Wire bytes mismatch.\nGot: %q\nExp: %q", s, exp)
	}
}

func TestAdvertiseInPrefConnectFailure(t *testing.T) {
	log.SetOut(&mock.IOWriter{})
	log.SetLevel(log.SilentLevel)

	// Grab a port then close it so the connect is refused
	ln, port, _ := captureListener(t)
	ln.Close()

	err := AdvertiseInPref(context.Background(), "127.0.0.1", port, 3600,
		"192.0.2.0/24", "64552:0")
	if err == nil {
		t.Fatal("Expected a connect error")
	}
	if !strings.Contains(err.Error(), "connection to the remote controller failed") {
		t.Error("Connect error should name the connect stage, got", err)
	}
}
