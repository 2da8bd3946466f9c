package dns

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// ExchangeResponse defines what the ExchangeServer sends back for the next query. The
// zero value produces an empty NOERROR response.
type ExchangeResponse struct {
	Ignore    bool // Don't respond at all - causes client timeouts
	Truncated bool
	Rcode     int
	Answer    []dns.RR
	Ns        []dns.RR
	Extra     []dns.RR

	QueryCount int // Number of times the server served this response
}

// ExchangeServer is a dumb dns.Handler which copies the canned response values into the
// reply message. It never inspects the question beyond using it to form the reply.
type ExchangeServer struct {
	mu   sync.Mutex
	resp *ExchangeResponse
}

// SetResponse sets the response for subsequent queries.
func (t *ExchangeServer) SetResponse(r *ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resp = r
}

// GetResponse returns the response as last set.
func (t *ExchangeServer) GetResponse() *ExchangeResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resp
}

// ServeDNS meets the dns.Handler interface.
func (t *ExchangeServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	resp := t.GetResponse()
	if resp == nil {
		panic("resp == nil in mock exchange server")
	}
	resp.QueryCount++
	if resp.Ignore {
		return
	}

	m := new(dns.Msg)
	m.SetRcode(q, resp.Rcode)
	if resp.Truncated {
		m.MsgHdr.Truncated = true
	} else if resp.Rcode == dns.RcodeSuccess { // Only populate if rcode is good
		m.Answer = resp.Answer
		m.Ns = resp.Ns
		m.Extra = resp.Extra
	}

	err := wtr.WriteMsg(m)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}
