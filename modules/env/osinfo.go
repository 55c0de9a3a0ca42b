package env

import (
	"runtime"
	"sync"
)

// OSInfo is the kernel identity of a host, in uname terms.
type OSInfo struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// formatOSName derives the raw OS name. Darwin's sysname carries no "mac"
// marker, so it is reported as "Mac OS X <release>".
func formatOSName(goos string, info *OSInfo) string {
	if info == nil {
		info = &OSInfo{}
	}
	switch goos {
	case "darwin":
		if len(info.Release) == 0 {
			return "Mac OS X"
		}
		return "Mac OS X " + info.Release
	case "windows":
		if len(info.Release) == 0 {
			return "Windows NT"
		}
		return "Windows NT " + info.Release
	}
	if len(info.Sysname) != 0 {
		return info.Sysname
	}
	return goos
}

var (
	// OS is the kernel identity of the running host, read once.
	OS = sync.OnceValues(ReadOSInfo)

	// Name is the raw name of the running operating system.
	Name = sync.OnceValue(func() string {
		info, _ := OS()
		return formatOSName(runtime.GOOS, info)
	})
)
