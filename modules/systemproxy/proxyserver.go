package systemproxy

import (
	"strings"

	"github.com/antgroup/proxyselect/modules/strengthen"
	"golang.org/x/net/http/httpproxy"
)

// WindowsProxyConfig holds the values of the Internet Settings registry key.
type WindowsProxyConfig struct {
	ProxyServer   string
	ProxyOverride string
	ProxyEnable   uint64
	AutoConfigURL string
}

// parseProxyServer splits "http=h:p;https=h:p" style values. A bare "h:p"
// applies to every protocol and is stored under "".
func parseProxyServer(s string) map[string]string {
	protocol := make(map[string]string)
	for _, item := range strengthen.StrSplitSkipEmpty(s, ';', 4) {
		if len(item) == 0 {
			continue
		}
		if k, v, ok := strings.Cut(item, "="); ok {
			protocol[strings.ToLower(k)] = v
			continue
		}
		protocol[""] = item
	}
	return protocol
}

// ProxyConfig returns nil when the proxy is disabled.
func (c *WindowsProxyConfig) ProxyConfig() *httpproxy.Config {
	if c.ProxyEnable < 1 {
		return nil
	}
	protocol := parseProxyServer(c.ProxyServer)
	getProtocolAny := func(keys ...string) string {
		for _, a := range keys {
			if v, ok := protocol[a]; ok {
				return v
			}
		}
		return ""
	}
	cfg := &httpproxy.Config{
		HTTPProxy:  getProtocolAny("http", ""),
		HTTPSProxy: getProtocolAny("https", ""),
		NoProxy:    strings.ReplaceAll(c.ProxyOverride, ";", ","),
	}
	if socks := getProtocolAny("socks"); len(socks) != 0 {
		if len(cfg.HTTPProxy) == 0 {
			cfg.HTTPProxy = "socks5://" + socks
		}
		if len(cfg.HTTPSProxy) == 0 {
			cfg.HTTPSProxy = "socks5://" + socks
		}
	}
	return cfg
}
