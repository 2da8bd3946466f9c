package dnsutil

import (
	"github.com/miekg/dns"
)

// ChompCanonicalName makes the name canonical but loses the trailing dot. For logging
// and display the trailing dot is more of a hinderance than a help.
func ChompCanonicalName(n string) string {
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}
