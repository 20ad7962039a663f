package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ParseTrustedProxies turns IPs and CIDR ranges into networks. Single IPs
// become host networks; unparsable entries are skipped.
func ParseTrustedProxies(proxies []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if _, ipNet, err := net.ParseCIDR(p); err == nil {
			nets = append(nets, ipNet)
			continue
		}
		ip := net.ParseIP(p)
		if ip == nil {
			continue
		}
		bits := 128
		if v4 := ip.To4(); v4 != nil {
			ip, bits = v4, 32
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets
}

// IsTrustedProxy reports whether ip falls in one of trustedNets.
func IsTrustedProxy(ip string, trustedNets []*net.IPNet) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, n := range trustedNets {
		if n.Contains(parsed) {
			return true
		}
	}
	return false
}

// GetClientIP returns the uploader or downloader address. Forwarding headers
// are only honored when the direct peer is a trusted proxy.
func GetClientIP(r *http.Request, trustedNets []*net.IPNet) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !IsTrustedProxy(remote, trustedNets) {
		return remote
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return remote
}
