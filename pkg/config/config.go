// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/proxyselect/modules/systemproxy"
)

const (
	MiByte = 1 << 20

	DefaultListen       = "127.0.0.1:21080"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 5 * time.Minute
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Server struct {
	Listen       string   `toml:"listen"`
	ReadTimeout  Duration `toml:"read_timeout,omitempty"`
	WriteTimeout Duration `toml:"write_timeout,omitempty"`
	IdleTimeout  Duration `toml:"idle_timeout,omitempty"`
}

// Origin is a user supplied proxy origin: scheme to proxy strings, each
// accepted by systemproxy.ParseEndpoint.
type Origin struct {
	Name    string              `toml:"name"`
	Schemes map[string][]string `toml:"schemes"`
}

type Config struct {
	System  bool     `toml:"system"`
	Server  Server   `toml:"server"`
	Origins []Origin `toml:"origin,omitempty"`
}

func Default() *Config {
	return &Config{
		System: true,
		Server: Server{
			Listen:       DefaultListen,
			ReadTimeout:  Duration{Duration: DefaultReadTimeout},
			WriteTimeout: Duration{Duration: DefaultWriteTimeout},
			IdleTimeout:  Duration{Duration: DefaultIdleTimeout},
		},
	}
}

// NewExpandReader opens file, replacing ${var} and $var with environment values when expandEnv is set.
func NewExpandReader(file string, expandEnv bool) (io.ReadCloser, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	if !expandEnv {
		return fd, err
	}
	defer fd.Close()
	buf, err := io.ReadAll(io.LimitReader(fd, 64*MiByte))
	if err != nil {
		return nil, err
	}
	b := strings.NewReader(os.ExpandEnv(string(buf)))
	return io.NopCloser(b), nil
}

// Decode reads a TOML config on top of the defaults.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	if _, err := toml.NewDecoder(r).Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

func Load(file string, expandEnv bool) (*Config, error) {
	r, err := NewExpandReader(file, expandEnv)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	c, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", file, err)
	}
	return c, nil
}

// SchemeMap parses every proxy of the origin. Configured proxies are explicit,
// so malformed entries and unsupported schemes are errors here.
func (o *Origin) SchemeMap() (systemproxy.SchemeMap, error) {
	schemes := make(systemproxy.SchemeMap, len(o.Schemes))
	for scheme, proxies := range o.Schemes {
		scheme = strings.ToLower(scheme)
		endpoints := make([]systemproxy.Endpoint, 0, len(proxies))
		for _, p := range proxies {
			ep, err := systemproxy.ParseEndpoint(p)
			if err != nil {
				return nil, fmt.Errorf("origin %q scheme %q: %w", o.Name, scheme, err)
			}
			endpoints = append(endpoints, ep)
		}
		schemes[scheme] = append(schemes[scheme], endpoints...)
	}
	return schemes, nil
}

// Apply registers the configured origins in file order. Nothing is registered
// if any origin is invalid.
func (c *Config) Apply(r *systemproxy.Registry) error {
	origins := make([]systemproxy.Origin, 0, len(c.Origins))
	for i := range c.Origins {
		o := &c.Origins[i]
		if len(o.Name) == 0 {
			return fmt.Errorf("origin #%d: missing name", i+1)
		}
		schemes, err := o.SchemeMap()
		if err != nil {
			return err
		}
		origins = append(origins, systemproxy.Origin{Name: o.Name, Schemes: schemes})
	}
	for _, o := range origins {
		r.Add(o.Name, o.Schemes)
	}
	return nil
}
