//go:build linux

package systemproxy

import (
	"context"
	"fmt"

	dbus "github.com/godbus/dbus/v5"
	"golang.org/x/sync/errgroup"
)

// LoadSystemOrigin asks the desktop ProxyResolver portal which proxies apply
// to http and https URIs.
func LoadSystemOrigin(ctx context.Context) (SchemeMap, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSystemProxy, err)
	}
	defer conn.Close() // nolint
	obj := conn.Object(portalDest, dbus.ObjectPath(portalPath))
	results := make([][]string, len(portalProbes))
	g, newCtx := errgroup.WithContext(ctx)
	for i, probe := range portalProbes {
		g.Go(func() error {
			if err := obj.CallWithContext(newCtx, portalLookup, 0, probe.uri).Store(&results[i]); err != nil {
				return fmt.Errorf("%w: portal lookup %s: %v", ErrNoSystemProxy, probe.uri, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	schemes := make(SchemeMap)
	for i, probe := range portalProbes {
		if endpoints := portalEndpoints(results[i]); len(endpoints) != 0 {
			schemes[probe.scheme] = endpoints
		}
	}
	return schemes, nil
}
