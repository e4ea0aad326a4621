package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Common proxy headers, in the order they are usually trusted.
const (
	HeaderCloudflare   = "CF-Connecting-IP"
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRealIP       = "X-Real-IP"
)

// Resolver extracts the client address from a request. Headers are only
// consulted when trusted; the zero Resolver uses RemoteAddr alone.
type Resolver struct {
	headers []string
}

// NewResolver trusts headers in the given priority order.
func NewResolver(trusted ...string) Resolver {
	headers := make([]string, 0, len(trusted))
	for _, h := range trusted {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}
	return Resolver{headers: headers}
}

// Headers returns the trusted headers in priority order.
func (res Resolver) Headers() []string {
	return append([]string(nil), res.headers...)
}

// IP returns the normalized client address, or "" when none can be parsed.
// For X-Forwarded-For the first valid entry wins.
func (res Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		if h == HeaderForwardedFor {
			for part := range strings.SplitSeq(value, ",") {
				if ip := parseIP(part); ip != "" {
					return ip
				}
			}
			continue
		}
		if ip := parseIP(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
