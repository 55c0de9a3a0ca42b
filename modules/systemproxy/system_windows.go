//go:build windows

package systemproxy

import (
	"context"

	"golang.org/x/sys/windows/registry"
)

func fromWindowsProxy() (values WindowsProxyConfig, err error) {
	var proxySettingsPerUser uint64 = 1 // 1 is the default value to consider current user
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `Software\Policies\Microsoft\Windows\CurrentVersion\Internet Settings`, registry.QUERY_VALUE)
	if err == nil {
		// GetIntegerValue zeroes its result on failure
		tempPrxUsrSettings, _, err := k.GetIntegerValue("ProxySettingsPerUser")
		if err == nil {
			proxySettingsPerUser = tempPrxUsrSettings
		}
		k.Close()
	}
	var hkey registry.Key
	if proxySettingsPerUser == 0 {
		hkey = registry.LOCAL_MACHINE
	} else {
		hkey = registry.CURRENT_USER
	}
	k, err = registry.OpenKey(hkey, `Software\Microsoft\Windows\CurrentVersion\Internet Settings`, registry.QUERY_VALUE)
	if err != nil {
		return
	}
	defer k.Close()

	values.ProxyServer, _, err = k.GetStringValue("ProxyServer")
	if err != nil && err != registry.ErrNotExist {
		return
	}
	values.ProxyOverride, _, err = k.GetStringValue("ProxyOverride")
	if err != nil && err != registry.ErrNotExist {
		return
	}
	values.ProxyEnable, _, err = k.GetIntegerValue("ProxyEnable")
	if err != nil && err != registry.ErrNotExist {
		return
	}
	values.AutoConfigURL, _, err = k.GetStringValue("AutoConfigURL")
	if err != nil && err != registry.ErrNotExist {
		return
	}
	err = nil
	return
}

// LoadSystemOrigin reads the WinINet proxy of the current user (or machine,
// when policy says so).
func LoadSystemOrigin(ctx context.Context) (SchemeMap, error) {
	values, err := fromWindowsProxy()
	if err != nil {
		return nil, err
	}
	cfg := values.ProxyConfig()
	if cfg == nil {
		// not config or disabled
		return SchemeMap{}, nil
	}
	return FromHTTPProxyConfig(cfg), nil
}
