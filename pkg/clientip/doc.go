// Package clientip resolves the address of the client behind an HTTP
// request. The address keys per-client rate limiting.
//
// Proxy headers are trivially spoofed, so a Resolver trusts none by default
// and uses the TCP peer address. Deployments behind a proxy list the headers
// the proxy sets, highest priority first:
//
//	res := clientip.NewResolver(clientip.HeaderCloudflare, clientip.HeaderForwardedFor)
//	r.Use(res.Middleware)
//
// Addresses are normalized: IPv4-mapped IPv6 addresses are unmapped and
// zones are dropped.
package clientip
