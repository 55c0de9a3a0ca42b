package systemproxy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProxyFunc(t *testing.T) {
	r := NewRegistry()
	r.Add("user", SchemeMap{
		"http":  {NewEndpoint(HTTP, "proxy.local", 3128), NewEndpoint(HTTP, "backup.local", 3128)},
		"https": {NewEndpoint(SOCKS, "10.0.0.1", 1080)},
	})
	fn := ProxyFunc(r)

	req, err := http.NewRequest("GET", "http://example.com", nil)
	require.NoError(t, err)
	u, err := fn(req)
	require.NoError(t, err)
	require.Equal(t, "http://proxy.local:3128", u.String())

	req, err = http.NewRequest("GET", "https://example.com", nil)
	require.NoError(t, err)
	u, err = fn(req)
	require.NoError(t, err)
	require.Equal(t, "socks5://10.0.0.1:1080", u.String())

	require.True(t, r.Remove("user"))
	u, err = fn(req)
	require.NoError(t, err)
	require.Nil(t, u)
}
