// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func (c *closer) listenSignal(ctx context.Context, srv Shutdowner) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-quit
	logrus.Infof("proxyselect receive signal: %v, exiting ...", sig)
	newCtx, cancelCtx := context.WithTimeout(ctx, shutdownTimeout)
	defer cancelCtx()
	_ = srv.Shutdown(newCtx)
	c.ch <- true
}
