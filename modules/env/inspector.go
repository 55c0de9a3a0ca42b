package env

import (
	"strings"
	"sync"

	"github.com/antgroup/proxyselect/modules/strengthen"
)

// Inspector exposes the OS identity and the environment of a process. It is
// read once and never changes afterwards.
type Inspector struct {
	name  string
	flags Flags
	env   *Environment
}

// NewInspector reads the environment of b under the comparison rule of the
// platform family of name.
func NewInspector(b Broker, name string) *Inspector {
	flags := ParseFlags(name)
	return &Inspector{
		name:  name,
		flags: flags,
		env:   NewEnvironment(b.Environ(), flags.Family() == Windows),
	}
}

var (
	// System is the Inspector of the running process.
	System = sync.OnceValue(func() *Inspector {
		return NewInspector(SystemBroker, Name())
	})
)

func (in *Inspector) Name() string {
	return in.name
}

func (in *Inspector) Flags() Flags {
	return in.flags
}

func (in *Inspector) Family() Family {
	return in.flags.Family()
}

func (in *Inspector) Environment() *Environment {
	return in.env
}

func (in *Inspector) Lookup(key K) (string, bool) {
	return in.env.Lookup(string(key))
}

// lookupAny returns the value of the first of names that is set, even if empty.
func (in *Inspector) lookupAny(names ...K) (string, bool) {
	for _, n := range names {
		if v, ok := in.Lookup(n); ok {
			return v, true
		}
	}
	return "", false
}

// DefaultProxyURL returns https_proxy if set, falling back to http_proxy. Even HTTPS
// proxies are reached over http, so a value not starting with "http" gets an
// "http://" prefix.
func (in *Inspector) DefaultProxyURL() (string, bool) {
	proxy, ok := in.lookupAny(HTTPS_PROXY, HTTP_PROXY)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(proxy, "http") {
		return proxy, true
	}
	return "http://" + proxy, true
}

// Bool reads key as a boolean, returning dv when it is unset or unrecognised.
func (in *Inspector) Bool(key K, dv bool) bool {
	v, ok := in.Lookup(key)
	if !ok {
		return dv
	}
	return strengthen.SimpleAtob(v, dv)
}
