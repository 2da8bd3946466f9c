package resolver

import (
	"context"
	"time"

	"github.com/miekg/dns"

	"github.com/border6/rpp/dnsutil"
)

const (
	defaultSingleExchangeTimeout = 4 * time.Second
	defaultFullExchangeTimeout   = 3 * defaultSingleExchangeTimeout
	defaultQueryTries            = 2 // Total number of exchange attempts
)

// ExchangeConfig expresses the few miekg Client settings this application cares
// about. It's defined as an interface rather than a struct to enforce the use of
// NewExchangeConfig which sets defaults.
type ExchangeConfig interface {
	Net() string
	UDPSize() uint16
	setNet(s string)
}

type exchangeConfig struct {
	net     string
	udpSize uint16
}

func (t *exchangeConfig) Net() string     { return t.net }
func (t *exchangeConfig) UDPSize() uint16 { return t.udpSize }
func (t *exchangeConfig) setNet(s string) { t.net = s }

func NewExchangeConfig() *exchangeConfig {
	return &exchangeConfig{net: dnsutil.UDPNetwork, udpSize: dnsutil.MaxUDPSize}
}

// Resolver covers all of the resolving functions used by this application which reach
// out to the network. It exists as an interface so the network side can be substituted
// for testing purposes.
//
// Implementations must be concurrency safe, as both net.Resolver and the miekg Client
// claim to be.
type Resolver interface {

	// Servers returns the name servers to query, in preference order, as
	// "host:port" strings ready for an exchange function.
	Servers() []string

	// SingleExchange is a shim for the github.com/miekg/dns ExchangeContext function
	// which makes a single exchange attempt with the server; no retries, no fallback
	// to TCP. See FullExchange() for that capability.
	//
	// SingleExchange sets the dns.Client.Timeout so the caller doesn't have to worry
	// about timeouts via context, or whatever.
	//
	// The dns.Msg must be fully formed with all flags and Id set as needed by the
	// caller.
	//
	// logName is only used for logging purposes to help identify the exchange.
	SingleExchange(ctx context.Context, c ExchangeConfig, q *dns.Msg,
		server, logName string) (r *dns.Msg, rtt time.Duration, err error)

	// FullExchange is a wrapper around SingleExchange which handles retries and
	// truncation. It creates a fully-formed dns.Msg for SingleExchange and falls
	// back to TCP when the UDP response arrives truncated.
	//
	// FullExchange derives a WithDeadline context from the supplied context which
	// applies across the whole exchange including retries, so there are in effect
	// two timeouts active for exchanges initiated via FullExchange.
	FullExchange(ctx context.Context, c ExchangeConfig, q dns.Question,
		server, logName string) (r *dns.Msg, rtt time.Duration, err error)
}
