package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	trusted := ParseTrustedProxies([]string{"127.0.0.1", "10.0.0.0/8", "bogus"})

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		wantIP     string
	}{
		{name: "remote with port", remoteAddr: "192.168.1.100:12345", wantIP: "192.168.1.100"},
		{name: "remote without port", remoteAddr: "192.168.1.100", wantIP: "192.168.1.100"},
		{name: "forwarded header from untrusted peer", remoteAddr: "192.168.1.100:1", xff: "203.0.113.50", wantIP: "192.168.1.100"},
		{name: "forwarded chain from trusted peer", remoteAddr: "10.1.2.3:1", xff: "203.0.113.50, 10.0.0.1", wantIP: "203.0.113.50"},
		{name: "real ip from trusted peer", remoteAddr: "127.0.0.1:1", xRealIP: "198.51.100.7", wantIP: "198.51.100.7"},
		{name: "trusted peer without headers", remoteAddr: "127.0.0.1:1", wantIP: "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/app", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}
			assert.Equal(t, tt.wantIP, GetClientIP(req, trusted))
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	nets := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.0.1 ", "::1", "nope"})

	assert.Len(t, nets, 3)
	assert.True(t, IsTrustedProxy("10.200.0.1", nets))
	assert.True(t, IsTrustedProxy("192.168.0.1", nets))
	assert.True(t, IsTrustedProxy("::1", nets))
	assert.False(t, IsTrustedProxy("192.168.0.2", nets))
	assert.False(t, IsTrustedProxy("garbage", nets))
	assert.False(t, IsTrustedProxy("10.0.0.1", nil))
}
