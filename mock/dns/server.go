package dns

import (
	"github.com/miekg/dns"
)

// StartServer starts a miekg DNS server with the supplied handler and waits until it is
// accepting queries. Intended purely for tests which need a name server to talk to.
func StartServer(net, serverAddr string, h dns.Handler) *dns.Server {
	srv := &dns.Server{Net: net, Addr: serverAddr, Handler: h}
	hasStarted := make(chan struct{})
	srv.NotifyStartedFunc = func() {
		hasStarted <- struct{}{}
	}

	go func() {
		err := srv.ListenAndServe()
		defer close(hasStarted)
		if err != nil { // Shutdown or real error?
			panic("Setup of mock DNS server failed:" + err.Error())
		}
	}()

	<-hasStarted // Wait for the server, one way or the other

	return srv
}
