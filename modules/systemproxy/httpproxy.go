package systemproxy

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/http/httpproxy"
)

// FromHTTPProxyConfig converts the HTTP and HTTPS proxies of cfg into a scheme
// map. Unusable values are skipped.
func FromHTTPProxyConfig(cfg *httpproxy.Config) SchemeMap {
	schemes := make(SchemeMap)
	if cfg == nil {
		return schemes
	}
	add := func(scheme, raw string) {
		if len(raw) == 0 {
			return
		}
		ep, err := ParseEndpoint(raw)
		if err != nil {
			if errors.Is(err, ErrUnsupportedScheme) {
				logrus.Warnf("ignore %s proxy %s: %v", scheme, raw, err)
			}
			return
		}
		schemes[scheme] = append(schemes[scheme], ep)
	}
	add("http", cfg.HTTPProxy)
	add("https", cfg.HTTPSProxy)
	return schemes
}
