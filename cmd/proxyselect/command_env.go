// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/antgroup/proxyselect/modules/env"
	"github.com/antgroup/proxyselect/modules/term"
)

type Env struct {
	All bool `short:"a" name:"all" help:"Also print the ordered process environment"`
}

func (c *Env) Run(g *Globals) error {
	in := env.System()
	g.DbgPrint("environment: %d variables, ignore case: %v", in.Environment().Len(), in.Environment().IgnoreCase())
	writeInspector(os.Stdout, term.StdoutLevel, in, c.All)
	return nil
}

func writeInspector(w io.Writer, level term.Level, in *env.Inspector, all bool) {
	flags := in.Flags()
	fmt.Fprintf(w, "%s %s\n", level.Blue("os:"), in.Name())
	fmt.Fprintf(w, "%s linux=%v mac=%v windows=%v\n", level.Blue("flags:"), flags.Linux, flags.Mac, flags.Windows)
	fmt.Fprintf(w, "%s %s\n", level.Blue("family:"), in.Family())
	if proxy, ok := in.DefaultProxyURL(); ok {
		fmt.Fprintf(w, "%s %s\n", level.Blue("default proxy:"), level.Green(proxy))
	} else {
		fmt.Fprintf(w, "%s %s\n", level.Blue("default proxy:"), level.Yellow("none"))
	}
	if !all {
		return
	}
	fmt.Fprintln(w)
	in.Environment().Each(func(key, value string) {
		fmt.Fprintf(w, "%s=%s\n", key, value)
	})
}
