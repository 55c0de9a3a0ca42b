//go:build windows

package env

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/windows"
)

func ReadOSInfo() (*OSInfo, error) {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	node, _ := os.Hostname()
	return &OSInfo{
		Sysname:  "Windows NT",
		Nodename: node,
		Release:  fmt.Sprintf("%d.%d", major, minor),
		// the high nibble of the build number flags checked builds
		Version: fmt.Sprintf("%d.%d.%d", major, minor, build&0xffff),
		Machine: runtime.GOARCH,
	}, nil
}
