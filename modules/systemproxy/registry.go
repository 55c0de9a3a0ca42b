package systemproxy

import (
	"errors"
	"net/url"
	"slices"
	"sync"

	"github.com/antgroup/proxyselect/modules/env"
	"github.com/sirupsen/logrus"
)

const (
	EnvOrigin    = "env"
	SystemOrigin = "system"
)

// SchemeMap maps a URI scheme to its candidate proxies, in preference order.
type SchemeMap map[string][]Endpoint

func (m SchemeMap) Clone() SchemeMap {
	if m == nil {
		return SchemeMap{}
	}
	nm := make(SchemeMap, len(m))
	for scheme, endpoints := range m {
		nm[scheme] = slices.Clone(endpoints)
	}
	return nm
}

// Origin is a named source of proxy configuration.
type Origin struct {
	Name    string    `json:"name"`
	Schemes SchemeMap `json:"schemes"`
}

// Registry aggregates proxy configuration from named origins. Origins are
// consulted in the order they were first added; adding a name again replaces
// its scheme map in place.
type Registry struct {
	mu      sync.RWMutex
	index   map[string]int
	origins []*Origin
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// NewEnvRegistry returns a registry holding the "env" origin built from
// http_proxy and https_proxy.
func NewEnvRegistry(in *env.Inspector) *Registry {
	r := NewRegistry()
	r.Add(EnvOrigin, EnvSchemeMap(in))
	return r
}

// EnvSchemeMap maps "http" to the proxy in http_proxy and "https" to the proxy
// in https_proxy. Missing or unusable values give an empty list.
func EnvSchemeMap(in *env.Inspector) SchemeMap {
	return SchemeMap{
		"http":  envEndpoints(in, env.HTTP_PROXY),
		"https": envEndpoints(in, env.HTTPS_PROXY),
	}
}

func envEndpoints(in *env.Inspector, key env.K) []Endpoint {
	endpoints := make([]Endpoint, 0, 1)
	v, ok := in.Lookup(key)
	if !ok {
		return endpoints
	}
	ep, err := ParseEndpoint(v)
	if err != nil {
		if errors.Is(err, ErrUnsupportedScheme) {
			logrus.Warnf("ignore %s=%s: %v", key, v, err)
		} else {
			logrus.Debugf("ignore %s=%s: %v", key, v, err)
		}
		return endpoints
	}
	return append(endpoints, ep)
}

// Add registers schemes under name, replacing any scheme map already held by
// that name.
func (r *Registry) Add(name string, schemes SchemeMap) {
	o := &Origin{Name: name, Schemes: schemes.Clone()}
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.index[name]; ok {
		r.origins[i] = o
		return
	}
	r.index[name] = len(r.origins)
	r.origins = append(r.origins, o)
}

// Remove drops the origin registered under name and reports whether there was one.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[name]
	if !ok {
		return false
	}
	r.origins = slices.Delete(r.origins, i, i+1)
	delete(r.index, name)
	for j := i; j < len(r.origins); j++ {
		r.index[r.origins[j].Name] = j
	}
	return true
}

// Resolve returns every proxy registered for the scheme of u, origin by origin.
// The result is never empty: without a match it holds only Direct.
func (r *Registry) Resolve(u *url.URL) []Endpoint {
	var scheme string
	if u != nil {
		scheme = u.Scheme
	}
	r.mu.RLock()
	var endpoints []Endpoint
	if len(scheme) != 0 {
		for _, o := range r.origins {
			endpoints = append(endpoints, o.Schemes[scheme]...)
		}
	}
	r.mu.RUnlock()
	if len(endpoints) == 0 {
		return []Endpoint{Direct}
	}
	return endpoints
}

func (r *Registry) Select(u *url.URL) []Endpoint {
	endpoints := r.Resolve(u)
	logrus.Debugf("select proxy for %v: %v", u, endpoints)
	return endpoints
}

// ConnectFailed is a no-op: failed proxies are not excluded from later selections.
func (r *Registry) ConnectFailed(u *url.URL, ep Endpoint, err error) {
	logrus.Debugf("connect %v via %v failed: %v", u, ep, err)
}

func (r *Registry) Origins() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.origins))
	for _, o := range r.origins {
		names = append(names, o.Name)
	}
	return names
}

func (r *Registry) Lookup(name string) (SchemeMap, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.origins[i].Schemes.Clone(), true
}

// Snapshot returns a copy of all origins in resolution order.
func (r *Registry) Snapshot() []Origin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	origins := make([]Origin, 0, len(r.origins))
	for _, o := range r.origins {
		origins = append(origins, Origin{Name: o.Name, Schemes: o.Schemes.Clone()})
	}
	return origins
}
