package handlers

import (
	"net"
	"net/http"
	"strings"
)

// mpesaCallbackIPs are the published source addresses the gateway sends
// callbacks from.
var mpesaCallbackIPs = map[string]struct{}{
	"196.201.214.200": {},
	"196.201.214.206": {},
	"196.201.213.114": {},
	"196.201.214.207": {},
	"196.201.214.208": {},
	"196.201.213.44":  {},
	"196.201.212.127": {},
	"196.201.212.128": {},
	"196.201.212.129": {},
	"196.201.212.132": {},
	"196.201.212.136": {},
	"196.201.212.138": {},
	"196.201.212.69":  {},
	"196.201.212.74":  {},
}

// IsMpesaIPAllowed reports whether ip is one of the gateway's published
// callback source addresses.
func IsMpesaIPAllowed(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	_, ok := mpesaCallbackIPs[parsed.String()]
	return ok
}

// remoteAddrAllowed checks the request origin against the gateway
// allowlist. Forwarded requests carry the original address in
// X-Forwarded-For.
func remoteAddrAllowed(r *http.Request) bool {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// The header may carry a comma separated proxy chain. The first
		// entry is the originating client.
		client, _, _ := strings.Cut(forwarded, ",")
		return IsMpesaIPAllowed(strings.TrimSpace(client))
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return IsMpesaIPAllowed(host)
}
