package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputguard/pkg/clientip"
)

func TestResolver_IP(t *testing.T) {
	t.Parallel()
	trusting := clientip.NewResolver(clientip.HeaderCloudflare, "x-forwarded-for", clientip.HeaderRealIP)

	tests := []struct {
		name       string
		resolver   clientip.Resolver
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "zero resolver ignores headers",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:     "priority order",
			resolver: trusting,
			headers: map[string]string{
				"CF-Connecting-IP": "203.0.113.195",
				"X-Forwarded-For":  "192.168.1.1",
			},
			remoteAddr: "10.0.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name:       "first valid forwarded entry",
			resolver:   trusting,
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.178, 203.0.113.195"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.178",
		},
		{
			name:       "invalid header falls through",
			resolver:   trusting,
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "192.168.1.1"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "192.168.1.1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:8080",
			expected:   "2001:db8::1",
		},
		{
			name:       "ipv4-mapped ipv6 is unmapped",
			remoteAddr: "[::ffff:192.0.2.1]:8080",
			expected:   "192.0.2.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.7",
			expected:   "192.0.2.7",
		},
		{
			name:       "unparseable remote addr",
			remoteAddr: "pipe",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, tt.resolver.IP(req))
		})
	}
}

func TestNewResolver_Headers(t *testing.T) {
	t.Parallel()
	res := clientip.NewResolver(" x-real-ip ", "", "cf-connecting-ip")
	assert.Equal(t, []string{"X-Real-Ip", "Cf-Connecting-Ip"}, res.Headers())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	var got string
	handler := clientip.Resolver{}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.10:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.10", got)
	assert.Empty(t, clientip.FromContext(context.Background()))
}
