package version

import (
	"runtime"
	"sync"

	"github.com/antgroup/proxyselect/modules/env"
	"github.com/klauspost/cpuid/v2"
)

type SystemInfo struct {
	Name      string `json:"name"`
	Node      string `json:"node"`
	Release   string `json:"release"`
	Version   string `json:"version"`
	Machine   string `json:"machine"`
	OS        string `json:"os"`
	Family    string `json:"family"`
	Processor string `json:"processor"`
}

// GetSystemInfo reports the host as the environment inspector sees it, plus
// the CPU brand.
func GetSystemInfo() (*SystemInfo, error) {
	info, err := env.OS()
	if err != nil {
		return nil, err
	}
	return &SystemInfo{
		Name:      info.Sysname,
		Node:      info.Nodename,
		Release:   info.Release,
		Version:   info.Version,
		Machine:   info.Machine,
		OS:        runtime.GOOS,
		Family:    env.FamilyOf(env.Name()).String(),
		Processor: cpuid.CPU.BrandName,
	}, nil
}

var uname = sync.OnceValues(GetSystemInfo)

func Uname() (*SystemInfo, error) {
	return uname()
}
