package systemproxy

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// Type is the transport used to reach a proxy.
type Type int

const (
	DIRECT Type = iota
	HTTP
	SOCKS
)

// DefaultPort is used when a proxy URL has no port or one outside [0, 65535].
const DefaultPort = 8080

func (t Type) String() string {
	switch t {
	case HTTP:
		return "HTTP"
	case SOCKS:
		return "SOCKS"
	}
	return "DIRECT"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	switch string(text) {
	case "DIRECT":
		*t = DIRECT
	case "HTTP":
		*t = HTTP
	case "SOCKS":
		*t = SOCKS
	default:
		return fmt.Errorf("systemproxy: unknown proxy type %q", text)
	}
	return nil
}

// Endpoint is a proxy a connection can go through.
type Endpoint struct {
	Type Type   `json:"type"`
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

var (
	// Direct means connect without a proxy.
	Direct = Endpoint{Type: DIRECT}
)

func NewEndpoint(t Type, host string, port int) Endpoint {
	if port < 0 || port > 65535 {
		port = DefaultPort
	}
	return Endpoint{Type: t, Host: host, Port: port}
}

func (e Endpoint) IsDirect() bool {
	return e.Type == DIRECT
}

func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// URL returns the proxy URL in the form net/http and x/net/proxy expect, nil for Direct.
func (e Endpoint) URL() *url.URL {
	switch e.Type {
	case HTTP:
		return &url.URL{Scheme: "http", Host: e.Address()}
	case SOCKS:
		return &url.URL{Scheme: "socks5", Host: e.Address()}
	}
	return nil
}

func (e Endpoint) String() string {
	if e.IsDirect() {
		return "DIRECT"
	}
	return e.Type.String() + " " + e.Address()
}
