package systemproxy

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func pacDirective(endpoints []Endpoint) string {
	items := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		switch ep.Type {
		case HTTP:
			items = append(items, "PROXY "+ep.Address())
		case SOCKS:
			items = append(items, "SOCKS "+ep.Address())
		default:
			items = append(items, "DIRECT")
		}
	}
	return strings.Join(items, "; ")
}

// WritePAC renders a proxy auto-config script answering like Registry.Resolve
// over the given origins.
func WritePAC(w io.Writer, origins []Origin) error {
	merged := make(map[string][]Endpoint)
	for _, o := range origins {
		for scheme, endpoints := range o.Schemes {
			merged[scheme] = append(merged[scheme], endpoints...)
		}
	}
	schemes := make([]string, 0, len(merged))
	for scheme, endpoints := range merged {
		if len(endpoints) != 0 {
			schemes = append(schemes, scheme)
		}
	}
	slices.Sort(schemes)
	var b strings.Builder
	b.WriteString("function FindProxyForURL(url, host) {\n")
	for _, scheme := range schemes {
		prefix := scheme + ":"
		fmt.Fprintf(&b, "  if (url.substring(0, %d) == %q) {\n    return %q;\n  }\n", len(prefix), prefix, pacDirective(merged[scheme]))
	}
	b.WriteString("  return \"DIRECT\";\n}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
