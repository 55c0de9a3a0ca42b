package systemproxy

import (
	"net/http"
	"net/url"
)

// Selector picks the proxies a connection to a URI should try, in order.
type Selector interface {
	// Select never returns an empty slice; Direct stands for no proxy.
	Select(u *url.URL) []Endpoint
	// ConnectFailed reports that connecting through ep, previously returned by Select, failed.
	ConnectFailed(u *url.URL, ep Endpoint, err error)
}

var (
	_ Selector = &Registry{}
)

// ProxyFunc adapts a Selector to http.Transport.Proxy. The first selected
// endpoint wins; Direct means no proxy.
func ProxyFunc(s Selector) func(*http.Request) (*url.URL, error) {
	return func(r *http.Request) (*url.URL, error) {
		endpoints := s.Select(r.URL)
		if len(endpoints) == 0 || endpoints[0].IsDirect() {
			return nil, nil
		}
		return endpoints[0].URL(), nil
	}
}
