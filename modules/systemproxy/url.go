package systemproxy

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrMalformedProxy    = errors.New("malformed proxy url")
	ErrUnsupportedScheme = errors.New("unsupported proxy scheme")
)

// UnsupportedSchemeError is a proxy URL whose scheme is neither http* nor socks*.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return "systemproxy: unsupported proxy scheme: " + e.Scheme
}

func (e *UnsupportedSchemeError) Is(target error) bool {
	return target == ErrUnsupportedScheme
}

func ParseURL(rawURL string, schemePrefix string) (*url.URL, error) {
	if strings.Contains(rawURL, "://") {
		return url.Parse(rawURL)
	}
	return url.Parse(schemePrefix + rawURL)
}

// ParseEndpoint parses a host, host:port or proxy URL. Input without a scheme
// is taken as http. Syntax errors match ErrMalformedProxy, unknown schemes
// return *UnsupportedSchemeError.
func ParseEndpoint(s string) (Endpoint, error) {
	u, err := ParseURL(s, "http://")
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %v", ErrMalformedProxy, err)
	}
	var t Type
	switch {
	case strings.HasPrefix(u.Scheme, "http"):
		t = HTTP
	case strings.HasPrefix(u.Scheme, "socks"):
		t = SOCKS
	default:
		return Endpoint{}, &UnsupportedSchemeError{Scheme: u.Scheme}
	}
	host := u.Hostname()
	if len(host) == 0 {
		return Endpoint{}, fmt.Errorf("%w: missing host in %q", ErrMalformedProxy, s)
	}
	port := DefaultPort
	if p := u.Port(); len(p) != 0 {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}
	return NewEndpoint(t, host, port), nil
}
