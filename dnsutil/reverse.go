package dnsutil

import (
	"fmt"
	"net"
	"strings"
)

// ReverseQName converts a textual IPv4 or IPv6 address into the domain name queried in
// the reverse DNS path. The returned name includes the in-addr.arpa/ip6.arpa suffix and
// is in display form without a trailing dot; callers querying the DNS should run it thru
// dns.Fqdn() first.
//
// Address family is chosen by a cheap heuristic: a literal '.' within the first four
// characters means IPv4, otherwise IPv6. A dotted-quad always has a dot by the fourth
// character so the heuristic only ever mis-fires on input which the subsequent parse
// rejects anyway.
//
// On failure the returned name is always empty - a name is never truncated.
func ReverseQName(addr string) (string, error) {
	// The family heuristic needs at least four characters. A side-effect is that
	// super-compressed addresses such as ::1 are rejected.
	if len(addr) < 4 {
		return "", fmt.Errorf("'%s' is too short to be an IP address", addr)
	}

	isV4 := addr[1] == '.' || addr[2] == '.' || addr[3] == '.'

	ip := net.ParseIP(addr)
	if ip == nil {
		return "", fmt.Errorf("'%s' does not parse as an IP address", addr)
	}

	if isV4 {
		ip4 := ip.To4()
		if ip4 == nil {
			return "", fmt.Errorf("'%s' does not parse as an IPv4 address", addr)
		}
		return fmt.Sprintf("%d.%d.%d.%d%s",
			ip4[3], ip4[2], ip4[1], ip4[0], V4Suffix), nil
	}

	ip6 := ip.To16()
	if ip6 == nil {
		return "", fmt.Errorf("'%s' does not parse as an IPv6 address", addr)
	}

	joiner := make([]string, 0, 32)
	for ix := 15; ix >= 0; ix-- {
		joiner = append(joiner, fmt.Sprintf("%x", ip6[ix]&0xf))
		joiner = append(joiner, fmt.Sprintf("%x", ip6[ix]&0xf0>>4))
	}

	return strings.Join(joiner, ".") + V6Suffix, nil
}

// PrefixAddress returns the address portion of a prefix by stripping everything from the
// first '/' onwards. The remainder is not validated here - that's the job of
// ReverseQName.
func PrefixAddress(prefix string) string {
	if ix := strings.IndexByte(prefix, '/'); ix >= 0 {
		return prefix[:ix]
	}

	return prefix
}
