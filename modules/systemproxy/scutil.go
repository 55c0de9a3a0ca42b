package systemproxy

import (
	"net"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/http/httpproxy"
)

// MacProxySettings is the proxy part of `scutil --proxy`.
type MacProxySettings struct {
	ExceptionsList         []string
	ExcludeSimpleHostnames bool
	// HTTP
	HTTPEnable bool
	HTTPPort   string
	HTTPProxy  string
	HTTPUser   string
	// HTTPS
	HTTPSEnable bool
	HTTPSPort   string
	HTTPSProxy  string
	HTTPSUser   string
	// SOCKS
	SOCKSEnable bool
	SOCKSPort   string
	SOCKSProxy  string
	SOCKSUser   string
}

func joinHostPort(u, p string) string {
	if len(p) != 0 {
		return net.JoinHostPort(u, p)
	}
	return u
}

func joinProxyURL(defaultScheme, host, port, user string) *url.URL {
	u := &url.URL{
		Scheme: defaultScheme,
		Host:   joinHostPort(host, port),
	}
	if len(user) != 0 {
		u.User = url.User(user)
	}
	return u
}

type section map[string]any

type arrayItem struct {
	i string
	v string
}

func (se section) boolean(name string) bool {
	return se.string(name) == "1"
}

func (se section) string(name string) string {
	v, ok := se[name]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

func (se section) array(name string) []string {
	o, ok := se[name]
	if !ok {
		return nil
	}
	sub, ok := o.(section)
	if !ok {
		return nil
	}
	items := make([]*arrayItem, 0, len(sub))
	for k, v := range sub {
		s, ok := v.(string)
		if !ok {
			continue
		}
		items = append(items, &arrayItem{i: k, v: s})
	}
	slices.SortFunc(items, func(a, b *arrayItem) int {
		return strings.Compare(a.i, b.i)
	})
	arr := make([]string, 0, len(items))
	for _, i := range items {
		arr = append(arr, i.v)
	}
	return arr
}

func parseOut(out string) section {
	lines := strings.Split(out, "\n")
	var cur section
	stack := make([]section, 0)
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lastField := fields[len(fields)-1]
		firstField := fields[0]
		if lastField == "}" {
			if len(stack) == 0 {
				break
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}
		if lastField == "{" {
			newObj := make(section)
			if cur != nil {
				stack = append(stack, cur)
				cur[firstField] = newObj
			}
			cur = newObj
			continue
		}
		if cur != nil && len(fields) == 3 && fields[1] == ":" {
			cur[firstField] = lastField
		}
	}
	return cur
}

// ParseScutilProxy parses the output of `scutil --proxy`.
func ParseScutilProxy(out string) (*MacProxySettings, error) {
	se := parseOut(out)
	if se == nil {
		return nil, ErrNoSystemProxy
	}
	return &MacProxySettings{
		ExceptionsList:         se.array("ExceptionsList"),
		ExcludeSimpleHostnames: se.boolean("ExcludeSimpleHostnames"),
		HTTPEnable:             se.boolean("HTTPEnable"),
		HTTPPort:               se.string("HTTPPort"),
		HTTPProxy:              se.string("HTTPProxy"),
		HTTPUser:               se.string("HTTPUser"),
		HTTPSEnable:            se.boolean("HTTPSEnable"),
		HTTPSPort:              se.string("HTTPSPort"),
		HTTPSProxy:             se.string("HTTPSProxy"),
		HTTPSUser:              se.string("HTTPSUser"),
		SOCKSEnable:            se.boolean("SOCKSEnable"),
		SOCKSPort:              se.string("SOCKSPort"),
		SOCKSProxy:             se.string("SOCKSProxy"),
		SOCKSUser:              se.string("SOCKSUser"),
	}, nil
}

// ProxyConfig prefers an enabled SOCKS proxy for both schemes, like the
// system network stack does.
func (s *MacProxySettings) ProxyConfig() *httpproxy.Config {
	cfg := &httpproxy.Config{
		NoProxy: strings.Join(s.ExceptionsList, ","),
	}
	if s.SOCKSEnable && len(s.SOCKSProxy) != 0 {
		proxyURL := joinProxyURL("socks5", s.SOCKSProxy, s.SOCKSPort, s.SOCKSUser).String()
		cfg.HTTPProxy = proxyURL
		cfg.HTTPSProxy = proxyURL
		return cfg
	}
	if s.HTTPEnable && len(s.HTTPProxy) != 0 {
		cfg.HTTPProxy = joinProxyURL("http", s.HTTPProxy, s.HTTPPort, s.HTTPUser).String()
	}
	if s.HTTPSEnable && len(s.HTTPSProxy) != 0 {
		cfg.HTTPSProxy = joinProxyURL("http", s.HTTPSProxy, s.HTTPSPort, s.HTTPSUser).String()
	}
	return cfg
}
