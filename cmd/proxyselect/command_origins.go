// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/antgroup/proxyselect/modules/systemproxy"
	"github.com/rivo/uniseg"
)

type Origins struct{}

type row [3]string

func originRows(origins []systemproxy.Origin) []row {
	rows := []row{{"ORIGIN", "SCHEME", "PROXIES"}}
	for _, o := range origins {
		if len(o.Schemes) == 0 {
			rows = append(rows, row{o.Name, "-", "-"})
			continue
		}
		schemes := make([]string, 0, len(o.Schemes))
		for scheme := range o.Schemes {
			schemes = append(schemes, scheme)
		}
		slices.Sort(schemes)
		for _, scheme := range schemes {
			endpoints := o.Schemes[scheme]
			items := make([]string, 0, len(endpoints))
			for _, ep := range endpoints {
				items = append(items, ep.String())
			}
			proxies := strings.Join(items, ", ")
			if len(proxies) == 0 {
				proxies = "-"
			}
			rows = append(rows, row{o.Name, scheme, proxies})
		}
	}
	return rows
}

// writeTable pads columns by display width so names with wide characters line up.
func writeTable(w io.Writer, rows []row) {
	var widths [3]int
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], uniseg.StringWidth(cell))
		}
	}
	for _, r := range rows {
		var b strings.Builder
		for i, cell := range r {
			b.WriteString(cell)
			if i == len(r)-1 {
				break
			}
			b.WriteString(strings.Repeat(" ", widths[i]-uniseg.StringWidth(cell)+2))
		}
		fmt.Fprintln(w, b.String())
	}
}

func (c *Origins) Run(g *Globals) error {
	_, r, err := g.Registry(context.Background())
	if err != nil {
		return err
	}
	writeTable(os.Stdout, originRows(r.Snapshot()))
	return nil
}
