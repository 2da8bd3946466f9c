package rde

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/border6/rpp/dnsutil"
	"github.com/border6/rpp/log"
	"github.com/border6/rpp/resolver"
)

const (
	// Marker identifies a controller TXT record. A record is recognized purely by
	// its data starting with these four bytes; anything else published under the
	// same name is ignored.
	Marker = "RDE:"

	// MaxControllerAddr bounds the length of an address extracted from a TXT
	// record. Longer record data is truncated to this bound rather than rejected.
	MaxControllerAddr = 124

	// DefaultPort is the well-known TCP port RDE controllers listen on for
	// SETINPREF commands.
	DefaultPort = 4343
)

// LookupController issues a TXT query for the reverse name and scans the answers, in
// arrival order, for the first record carrying the Marker. Configured name servers are
// tried in preference order until one provides a definitive answer.
//
// The three possible outcomes are disambiguated as: (addr, true, nil) when a controller
// record was found; ("", false, nil) when the DNS answered but no controller record
// exists - a legitimate negative result, not an error; and ("", false, err) when no
// server could be queried successfully.
func LookupController(ctx context.Context, res resolver.Resolver, qName string) (string, bool, error) {
	servers := res.Servers()
	if len(servers) == 0 {
		return "", false, errors.New("no name servers configured or discovered")
	}

	question := dns.Question{Name: dns.Fqdn(qName),
		Qtype: dns.TypeTXT, Qclass: dns.ClassINET}

	var lastErr error
	for _, server := range servers {
		r, _, err := res.FullExchange(ctx, resolver.NewExchangeConfig(),
			question, server, qName)
		if err != nil {
			lastErr = err
			continue
		}

		switch r.MsgHdr.Rcode {
		case dns.RcodeSuccess:
			addr, found := extractController(r.Answer)
			if found {
				log.Minorf("Controller record found via %s", server)
			}
			return addr, found, nil

		case dns.RcodeNameError: // No such name - a benign no-entry result
			return "", false, nil

		default:
			lastErr = fmt.Errorf("%s answered with %s",
				server, dnsutil.RcodeToString(r.MsgHdr.Rcode))
		}
	}

	return "", false, lastErr
}

// extractController returns the address from the first answer record recognized as a
// controller record. Answer order is preserved - no re-ordering, no preference
// heuristics - so the publisher controls which record wins.
func extractController(answers []dns.RR) (string, bool) {
	for _, rr := range answers {
		txt, ok := rr.(*dns.TXT)
		if !ok || len(txt.Txt) == 0 {
			continue
		}

		data := txt.Txt[0] // Only the first character-string is significant
		if !strings.HasPrefix(data, Marker) {
			continue
		}

		addr := data[len(Marker):]
		if len(addr) > MaxControllerAddr {
			addr = addr[:MaxControllerAddr]
		}

		return addr, true
	}

	return "", false
}
