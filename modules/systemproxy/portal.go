package systemproxy

import (
	"strings"
)

const (
	portalDest   = "org.freedesktop.portal.Desktop"
	portalPath   = "/org/freedesktop/portal/desktop"
	portalLookup = "org.freedesktop.portal.ProxyResolver.Lookup"
)

var portalProbes = []struct {
	scheme string
	uri    string
}{
	{"http", "http://example.com/"},
	{"https", "https://example.com/"},
}

// portalEndpoints converts the proxy URIs returned by the ProxyResolver portal.
// direct:// and schemes we cannot dial are skipped.
func portalEndpoints(proxies []string) []Endpoint {
	endpoints := make([]Endpoint, 0, len(proxies))
	for _, p := range proxies {
		if strings.HasPrefix(p, "direct://") {
			continue
		}
		ep, err := ParseEndpoint(p)
		if err != nil {
			continue
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints
}
