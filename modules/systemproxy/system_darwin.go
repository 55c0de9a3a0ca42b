//go:build darwin

package systemproxy

import (
	"context"
	"os/exec"
	"time"
)

func findSystemProxy(ctx context.Context) (*MacProxySettings, error) {
	ctx, cancelCtx := context.WithTimeout(ctx, time.Second)
	defer cancelCtx()
	cmd := exec.CommandContext(ctx, "scutil", "--proxy")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, err
	}
	return ParseScutilProxy(string(out))
}

// LoadSystemOrigin reads the proxies of the current network service.
func LoadSystemOrigin(ctx context.Context) (SchemeMap, error) {
	settings, err := findSystemProxy(ctx)
	if err != nil {
		return nil, err
	}
	return FromHTTPProxyConfig(settings.ProxyConfig()), nil
}
