package systemproxy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/http/httpproxy"
)

const scutilOut = `<dictionary> {
  ExceptionsList : <array> {
    0 : *.local
    1 : 169.254/16
  }
  FTPPassive : 1
  HTTPEnable : 1
  HTTPPort : 3128
  HTTPProxy : proxy.corp
  HTTPSEnable : 1
  HTTPSPort : 3129
  HTTPSProxy : proxy.corp
  SOCKSEnable : 0
}
`

func TestParseScutilProxy(t *testing.T) {
	s, err := ParseScutilProxy(scutilOut)
	require.NoError(t, err)
	require.Equal(t, []string{"*.local", "169.254/16"}, s.ExceptionsList)
	require.True(t, s.HTTPEnable)
	require.Equal(t, "3128", s.HTTPPort)
	require.False(t, s.SOCKSEnable)

	schemes := FromHTTPProxyConfig(s.ProxyConfig())
	require.Equal(t, []Endpoint{{Type: HTTP, Host: "proxy.corp", Port: 3128}}, schemes["http"])
	require.Equal(t, []Endpoint{{Type: HTTP, Host: "proxy.corp", Port: 3129}}, schemes["https"])
}

func TestScutilSocksWins(t *testing.T) {
	s := &MacProxySettings{
		HTTPEnable:  true,
		HTTPProxy:   "proxy.corp",
		SOCKSEnable: true,
		SOCKSProxy:  "socks.corp",
		SOCKSPort:   "1080",
	}
	schemes := FromHTTPProxyConfig(s.ProxyConfig())
	want := []Endpoint{{Type: SOCKS, Host: "socks.corp", Port: 1080}}
	require.Equal(t, want, schemes["http"])
	require.Equal(t, want, schemes["https"])
}

func TestParseScutilEmpty(t *testing.T) {
	_, err := ParseScutilProxy("")
	require.ErrorIs(t, err, ErrNoSystemProxy)
	_, err = ParseScutilProxy("HTTPEnable : 1\n")
	require.ErrorIs(t, err, ErrNoSystemProxy)
}

func TestWindowsProxyConfig(t *testing.T) {
	c := &WindowsProxyConfig{ProxyServer: "proxy.corp:8888", ProxyOverride: "<local>;*.corp", ProxyEnable: 1}
	cfg := c.ProxyConfig()
	require.Equal(t, "proxy.corp:8888", cfg.HTTPProxy)
	require.Equal(t, "proxy.corp:8888", cfg.HTTPSProxy)
	require.Equal(t, "<local>,*.corp", cfg.NoProxy)

	c = &WindowsProxyConfig{ProxyServer: "http=a:1;https=b:2;socks=c:3", ProxyEnable: 1}
	schemes := FromHTTPProxyConfig(c.ProxyConfig())
	require.Equal(t, []Endpoint{{Type: HTTP, Host: "a", Port: 1}}, schemes["http"])
	require.Equal(t, []Endpoint{{Type: HTTP, Host: "b", Port: 2}}, schemes["https"])

	c = &WindowsProxyConfig{ProxyServer: "socks=c:3", ProxyEnable: 1}
	schemes = FromHTTPProxyConfig(c.ProxyConfig())
	require.Equal(t, []Endpoint{{Type: SOCKS, Host: "c", Port: 3}}, schemes["https"])

	c = &WindowsProxyConfig{ProxyServer: "proxy.corp:8888"}
	require.Nil(t, c.ProxyConfig())
}

func TestPortalEndpoints(t *testing.T) {
	got := portalEndpoints([]string{"direct://", "http://proxy.corp:3128", "socks://socks.corp:1080", "ftp://x:21"})
	require.Equal(t, []Endpoint{
		{Type: HTTP, Host: "proxy.corp", Port: 3128},
		{Type: SOCKS, Host: "socks.corp", Port: 1080},
	}, got)
	require.Empty(t, portalEndpoints([]string{"direct://"}))
}

func TestFromHTTPProxyConfig(t *testing.T) {
	require.Empty(t, FromHTTPProxyConfig(nil))
	schemes := FromHTTPProxyConfig(&httpproxy.Config{
		HTTPProxy:  "proxy.local:3128",
		HTTPSProxy: "ftp://proxy.local:21",
	})
	require.Equal(t, []Endpoint{{Type: HTTP, Host: "proxy.local", Port: 3128}}, schemes["http"])
	_, ok := schemes["https"]
	require.False(t, ok)
}
