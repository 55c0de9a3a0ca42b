// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/proxyselect/modules/env"
	"github.com/antgroup/proxyselect/modules/trace"
	"github.com/antgroup/proxyselect/pkg/version"
)

type App struct {
	Globals
	Env         Env         `cmd:"env" help:"Show the operating system and proxy environment"`
	Resolve     Resolve     `cmd:"resolve" help:"Resolve the proxies to use for the given URIs"`
	Origins     Origins     `cmd:"origins" help:"List registered proxy origins"`
	PAC         PAC         `cmd:"pac" help:"Print a proxy auto-config script for the registered origins"`
	Serve       Serve       `cmd:"serve" help:"Start the proxy query service"`
	VersionInfo VersionInfo `cmd:"" name:"version" help:"Show version and system information"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("proxyselect"),
		kong.Description("proxyselect - choose proxies for URIs from the environment, system settings and configured origins"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)
	now := time.Now()
	if app.Verbose || env.System().Bool(env.PROXYSELECT_DEBUG, false) {
		app.Verbose = true
		trace.EnableDebugMode()
	}
	err := ctx.Run(&app.Globals)
	if app.Verbose {
		trace.DbgPrint("time spent: %v", time.Since(now))
	}
	if err != nil {
		os.Exit(1)
	}
}
