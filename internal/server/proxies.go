package server

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustedProxies decides whose X-Forwarded-For header is believed. Entries
// are single addresses or CIDR prefixes; anything unparseable is ignored.
type TrustedProxies struct {
	prefixes []netip.Prefix
}

// NewTrustedProxies parses addresses like "10.0.0.1" or "10.0.0.0/8"
func NewTrustedProxies(entries []string) *TrustedProxies {
	tp := &TrustedProxies{}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if p, err := netip.ParsePrefix(e); err == nil {
			tp.prefixes = append(tp.prefixes, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(e); err == nil {
			tp.prefixes = append(tp.prefixes, netip.PrefixFrom(a, a.BitLen()))
		}
	}
	return tp
}

func (tp *TrustedProxies) trusts(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range tp.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP is the peer address, or the rightmost X-Forwarded-For hop when
// the peer is a trusted proxy.
func (tp *TrustedProxies) ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !tp.trusts(host) {
		return host
	}
	fwd := r.Header.Get(HeaderForwardedFor)
	if fwd == "" {
		return host
	}
	hops := strings.Split(fwd, ",")
	if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
		return last
	}
	return host
}
