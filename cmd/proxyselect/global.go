// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/proxyselect/modules/env"
	"github.com/antgroup/proxyselect/modules/systemproxy"
	"github.com/antgroup/proxyselect/modules/trace"
	"github.com/antgroup/proxyselect/pkg/config"
	"github.com/antgroup/proxyselect/pkg/version"
	"github.com/sirupsen/logrus"
)

const (
	systemLookupTimeout = 5 * time.Second
)

type Globals struct {
	Verbose   bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Config    string      `short:"c" name:"config" help:"Location of config file" env:"PROXYSELECT_CONFIG" type:"path"`
	ExpandEnv bool        `short:"E" name:"expand-env" help:"Replaces $${var} or $$var in the config file according to the values of the current environment variables."`
	NoSystem  bool        `name:"no-system" help:"Do not read the proxy settings of the operating system"`
	Version   VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
}

var (
	_ trace.Debuger = &Globals{}
)

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

func (g *Globals) DbgPrint(format string, args ...any) {
	trace.NewDebuger(g.Verbose).DbgPrint(format, args...)
}

func (g *Globals) LoadConfig() (*config.Config, error) {
	if len(g.Config) == 0 {
		return config.Default(), nil
	}
	cfg, err := config.Load(g.Config, g.ExpandEnv)
	if err != nil {
		return nil, err
	}
	g.DbgPrint("load config %s: %d origins", g.Config, len(cfg.Origins))
	return cfg, nil
}

// NewRegistry registers the env origin, then the system origin, then the
// configured origins.
func (g *Globals) NewRegistry(ctx context.Context, cfg *config.Config, in *env.Inspector) (*systemproxy.Registry, error) {
	r := systemproxy.NewEnvRegistry(in)
	if cfg.System && !g.NoSystem {
		g.addSystemOrigin(ctx, r)
	}
	if err := cfg.Apply(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (g *Globals) addSystemOrigin(ctx context.Context, r *systemproxy.Registry) {
	newCtx, cancelCtx := context.WithTimeout(ctx, systemLookupTimeout)
	defer cancelCtx()
	schemes, err := systemproxy.LoadSystemOrigin(newCtx)
	if errors.Is(err, systemproxy.ErrNoSystemProxy) {
		g.DbgPrint("no system proxy settings on this platform")
		return
	}
	if err != nil {
		logrus.Warnf("read system proxy settings: %v", err)
		return
	}
	r.Add(systemproxy.SystemOrigin, schemes)
}

// Registry loads the config and builds the registry for the running process.
func (g *Globals) Registry(ctx context.Context) (*config.Config, *systemproxy.Registry, error) {
	cfg, err := g.LoadConfig()
	if err != nil {
		return nil, nil, trace.Errorf("load config: %v", err)
	}
	r, err := g.NewRegistry(ctx, cfg, env.System())
	if err != nil {
		return nil, nil, trace.Errorf("apply config: %v", err)
	}
	return cfg, r, nil
}
