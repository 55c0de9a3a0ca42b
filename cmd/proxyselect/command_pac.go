// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"

	"github.com/antgroup/proxyselect/modules/systemproxy"
	"github.com/sirupsen/logrus"
)

type PAC struct {
	Output string `short:"o" name:"output" help:"Write the script to file instead of stdout" type:"path"`
}

func (c *PAC) Run(g *Globals) error {
	_, r, err := g.Registry(context.Background())
	if err != nil {
		return err
	}
	if len(c.Output) == 0 {
		return systemproxy.WritePAC(os.Stdout, r.Snapshot())
	}
	fd, err := os.Create(c.Output)
	if err != nil {
		logrus.Errorf("create %s error: %v", c.Output, err)
		return err
	}
	defer fd.Close()
	if err := systemproxy.WritePAC(fd, r.Snapshot()); err != nil {
		logrus.Errorf("write %s error: %v", c.Output, err)
		return err
	}
	g.DbgPrint("pac written to %s", c.Output)
	return nil
}
