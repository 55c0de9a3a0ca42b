// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"net/http"

	"github.com/antgroup/proxyselect/pkg/serve/httpserver"
	"github.com/sirupsen/logrus"
)

type Serve struct {
	Listen string `short:"l" name:"listen" help:"Listen address, overrides the config file"`
}

func (c *Serve) Run(g *Globals) error {
	cfg, r, err := g.Registry(context.Background())
	if err != nil {
		return err
	}
	if len(c.Listen) != 0 {
		cfg.Server.Listen = c.Listen
	}
	srv, err := httpserver.NewServer(&cfg.Server, r)
	if err != nil {
		logrus.Errorf("proxyselect serve new server error: %v", err)
		return err
	}
	closer := newCloser()
	go closer.listenSignal(context.Background(), srv)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Errorf("proxyselect serve listen error: %v", err)
		return err
	}
	<-closer.ch
	logrus.Infof("proxyselect serve exited")
	return nil
}
