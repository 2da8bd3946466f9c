package resolver

import (
	"net"
	"sync"
	"time"

	"github.com/miekg/dns"
)

// resolvConf is where the system name server list comes from when the caller doesn't
// supply any servers of their own.
var resolvConf = "/etc/resolv.conf"

type resolver struct {
	// Currently these timeout and retry values cannot be changed from the defaults.
	// Let's see if there is ever any real need to change them prior to adding an
	// adjustment capability.
	singleExchangeTimeout, fullExchangeTimeout time.Duration

	queryTries int

	mu      sync.Mutex
	servers []string // Lazily populated from resolvConf if empty
}

// NewResolver creates a fully formed resolver which is ready to use. If no servers are
// supplied the system list from /etc/resolv.conf is loaded on first use.
func NewResolver(servers ...string) *resolver {
	t := &resolver{
		singleExchangeTimeout: defaultSingleExchangeTimeout,
		fullExchangeTimeout:   defaultFullExchangeTimeout,
		queryTries:            defaultQueryTries,
	}

	for _, s := range servers {
		t.servers = append(t.servers, normalizeServer(s))
	}

	return t
}

func (t *resolver) Servers() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.servers) == 0 {
		cc, err := dns.ClientConfigFromFile(resolvConf)
		if err == nil {
			for _, s := range cc.Servers {
				t.servers = append(t.servers, net.JoinHostPort(s, cc.Port))
			}
		}
	}

	return t.servers
}

// normalizeServer coerces a service onto the name if it hasn't got one.
func normalizeServer(server string) string {
	_, _, err := net.SplitHostPort(server)
	if err != nil {
		server = net.JoinHostPort(server, "domain")
	}

	return server
}
