// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/antgroup/proxyselect/modules/systemproxy"
	"github.com/stretchr/testify/require"
)

const sample = `
system = false

[server]
listen = "0.0.0.0:9000"
read_timeout = "5s"

[[origin]]
name = "user"
[origin.schemes]
http = ["proxy.corp:3128", "backup.corp"]
HTTPS = ["socks5://10.0.0.1:1080"]

[[origin]]
name = "ssh"
[origin.schemes]
ssh = ["socks5://10.0.0.2"]
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.False(t, c.System)
	require.Equal(t, "0.0.0.0:9000", c.Server.Listen)
	require.Equal(t, 5*time.Second, c.Server.ReadTimeout.Duration)
	require.Equal(t, DefaultWriteTimeout, c.Server.WriteTimeout.Duration)
	require.Len(t, c.Origins, 2)
	require.Equal(t, "user", c.Origins[0].Name)
}

func TestDefaults(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.True(t, c.System)
	require.Equal(t, DefaultListen, c.Server.Listen)
	require.Empty(t, c.Origins)
}

func TestApply(t *testing.T) {
	c, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	r := systemproxy.NewRegistry()
	require.NoError(t, c.Apply(r))
	require.Equal(t, []string{"user", "ssh"}, r.Origins())

	u, _ := url.Parse("http://example.com")
	require.Equal(t, []systemproxy.Endpoint{
		systemproxy.NewEndpoint(systemproxy.HTTP, "proxy.corp", 3128),
		systemproxy.NewEndpoint(systemproxy.HTTP, "backup.corp", systemproxy.DefaultPort),
	}, r.Resolve(u))
	u, _ = url.Parse("https://example.com")
	require.Equal(t, []systemproxy.Endpoint{systemproxy.NewEndpoint(systemproxy.SOCKS, "10.0.0.1", 1080)}, r.Resolve(u))
	u, _ = url.Parse("ssh://example.com")
	require.Equal(t, []systemproxy.Endpoint{systemproxy.NewEndpoint(systemproxy.SOCKS, "10.0.0.2", systemproxy.DefaultPort)}, r.Resolve(u))
}

func TestApplyRejectsBadOrigins(t *testing.T) {
	c := &Config{Origins: []Origin{
		{Name: "good", Schemes: map[string][]string{"http": {"proxy:1"}}},
		{Name: "bad", Schemes: map[string][]string{"http": {"ftp://proxy:21"}}},
	}}
	r := systemproxy.NewRegistry()
	err := c.Apply(r)
	require.ErrorIs(t, err, systemproxy.ErrUnsupportedScheme)
	require.Contains(t, err.Error(), `origin "bad"`)
	require.Empty(t, r.Origins())

	c = &Config{Origins: []Origin{{Schemes: map[string][]string{"http": {"proxy:1"}}}}}
	require.Error(t, c.Apply(r))

	c = &Config{Origins: []Origin{{Name: "broken", Schemes: map[string][]string{"http": {"bad host:1"}}}}}
	require.ErrorIs(t, c.Apply(r), systemproxy.ErrMalformedProxy)
}

func TestLoadExpandEnv(t *testing.T) {
	t.Setenv("CORP_PROXY", "proxy.corp:3128")
	file := filepath.Join(t.TempDir(), "proxyselect.toml")
	content := "[[origin]]\nname = \"user\"\n[origin.schemes]\nhttp = [\"${CORP_PROXY}\"]\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	c, err := Load(file, true)
	require.NoError(t, err)
	require.Equal(t, []string{"proxy.corp:3128"}, c.Origins[0].Schemes["http"])

	c, err = Load(file, false)
	require.NoError(t, err)
	require.Equal(t, []string{"${CORP_PROXY}"}, c.Origins[0].Schemes["http"])

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), false)
	require.Error(t, err)
}
