package systemproxy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

// A Dialer is a means to establish a connection.
type Dialer interface {
	DialContext(ctx context.Context, network string, address string) (net.Conn, error)
}

var noDeadline time.Time

// NewDialerFromEndpoint returns a Dialer that connects through ep.
func NewDialerFromEndpoint(ep Endpoint, forward *net.Dialer) (Dialer, error) {
	if forward == nil {
		forward = &net.Dialer{}
	}
	switch ep.Type {
	case DIRECT:
		return forward, nil
	case HTTP:
		return &connectDialer{proxy: ep, forward: forward}, nil
	case SOCKS:
		d, err := proxy.SOCKS5("tcp", ep.Address(), nil, forward)
		if err != nil {
			return nil, err
		}
		cd, ok := d.(proxy.ContextDialer)
		if !ok {
			return nil, errors.New("systemproxy: socks5 dialer does not support context")
		}
		return cd, nil
	}
	return nil, fmt.Errorf("systemproxy: unknown proxy type %d", ep.Type)
}

// SelectorDialer connects to URIs through the proxies a Selector picks,
// falling back to the next candidate when one fails.
type SelectorDialer struct {
	selector Selector
	forward  *net.Dialer
}

func NewSelectorDialer(s Selector, forward *net.Dialer) *SelectorDialer {
	if forward == nil {
		forward = &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 15 * time.Second}
	}
	return &SelectorDialer{selector: s, forward: forward}
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ssh":   "22",
}

func targetAddress(u *url.URL) (string, error) {
	host := u.Hostname()
	if len(host) == 0 {
		return "", fmt.Errorf("systemproxy: missing host in %q", u.String())
	}
	port := u.Port()
	if len(port) == 0 {
		var ok bool
		if port, ok = defaultPorts[u.Scheme]; !ok {
			return "", fmt.Errorf("systemproxy: missing port in %q", u.String())
		}
	}
	return net.JoinHostPort(host, port), nil
}

// DialURL connects to the host of u. Every failing candidate is reported to
// the selector through ConnectFailed.
func (d *SelectorDialer) DialURL(ctx context.Context, u *url.URL) (net.Conn, error) {
	address, err := targetAddress(u)
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, ep := range d.selector.Select(u) {
		conn, err := d.dialVia(ctx, ep, address)
		if err == nil {
			return conn, nil
		}
		d.selector.ConnectFailed(u, ep, err)
		errs = append(errs, fmt.Errorf("%s: %w", ep, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

func (d *SelectorDialer) dialVia(ctx context.Context, ep Endpoint, address string) (net.Conn, error) {
	dialer, err := NewDialerFromEndpoint(ep, d.forward)
	if err != nil {
		return nil, err
	}
	return dialer.DialContext(ctx, "tcp", address)
}
