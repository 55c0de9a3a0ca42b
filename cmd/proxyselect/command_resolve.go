// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/antgroup/proxyselect/modules/systemproxy"
	"github.com/antgroup/proxyselect/modules/term"
)

type Resolve struct {
	URIs []string `arg:"" name:"uri" help:"URIs to resolve"`
	JSON bool     `short:"j" name:"json" help:"Print results as JSON"`
}

type resolved struct {
	URI     string                 `json:"uri"`
	Proxies []systemproxy.Endpoint `json:"proxies"`
}

func resolveURIs(s systemproxy.Selector, uris []string) ([]resolved, error) {
	results := make([]resolved, 0, len(uris))
	for _, raw := range uris {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse uri %q: %w", raw, err)
		}
		results = append(results, resolved{URI: raw, Proxies: s.Select(u)})
	}
	return results, nil
}

func writeResolved(w io.Writer, level term.Level, results []resolved) {
	for _, r := range results {
		items := make([]string, 0, len(r.Proxies))
		for _, ep := range r.Proxies {
			if ep.IsDirect() {
				items = append(items, level.Yellow(ep.String()))
				continue
			}
			items = append(items, level.Green(ep.String()))
		}
		fmt.Fprintf(w, "%s -> %s\n", r.URI, strings.Join(items, ", "))
	}
}

func (c *Resolve) Run(g *Globals) error {
	_, r, err := g.Registry(context.Background())
	if err != nil {
		return err
	}
	results, err := resolveURIs(r, c.URIs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proxyselect resolve: %v\n", err)
		return err
	}
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	writeResolved(os.Stdout, term.StdoutLevel, results)
	return nil
}
