package rde

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/border6/rpp/log"
)

// sendStage pairs each fragment of the SETINPREF message with a name for error
// reporting. The fragments are written in sequence and any short or failed write aborts
// the whole send.
type sendStage struct {
	name string
	data string
}

// AdvertiseInPref connects to the controller and transmits our inbound routing
// preferences as a single SETINPREF command:
//
//	SETINPREF <ttl>\t<localPrefixes>\t<prefList>\r\n
//
// localPrefixes and prefList are caller-supplied and pass thru to the wire verbatim.
// The protocol is fire-and-forget: nothing is read back and the connection is closed on
// every return path. There are no retries - a failed connect or send is reported to the
// caller and that's that.
func AdvertiseInPref(ctx context.Context, controller string, port int, ttl uint32,
	localPrefixes, prefList string) error {

	target := net.JoinHostPort(controller, strconv.Itoa(port))
	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		return fmt.Errorf("connection to the remote controller failed (%w)", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetWriteDeadline(deadline)
	}

	log.Minorf("Connected to %s", target)

	stages := []sendStage{
		{"command", fmt.Sprintf("SETINPREF %d\t", ttl)},
		{"local prefixes", localPrefixes},
		{"separator", "\t"},
		{"preference list", prefList},
		{"terminator", "\r\n"},
	}

	for _, stage := range stages {
		if err := writeFull(conn, stage.data); err != nil {
			return fmt.Errorf("failed to send %s to %s (%w)",
				stage.name, controller, err)
		}
	}

	return nil
}

// writeFull treats a short write as fatal. net.Conn normally converts short writes into
// errors but the byte count is checked anyway as the Write contract technically allows
// n < len with err == nil.
func writeFull(conn net.Conn, s string) error {
	n, err := conn.Write([]byte(s))
	if err != nil {
		return err
	}
	if n != len(s) {
		return fmt.Errorf("short write of %d out of %d bytes", n, len(s))
	}

	return nil
}
