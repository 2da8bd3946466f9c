/*
Package resolver defines an interface and provides a concrete implementation of the DNS
resolving service used to find RDE controllers. It is a thin shim over the
github.com/miekg/dns exchange functions plus sourcing of the system name server list.

The sole reason this package exists is to present resolving as an interface which can be
substituted for testing purposes. All non-networking DNS functions are accessed directly.
*/
package resolver
