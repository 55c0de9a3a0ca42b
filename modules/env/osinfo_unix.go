//go:build !windows

package env

import (
	"golang.org/x/sys/unix"
)

func ReadOSInfo() (*OSInfo, error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return nil, err
	}
	return &OSInfo{
		Sysname:  unix.ByteSliceToString(utsname.Sysname[:]),
		Nodename: unix.ByteSliceToString(utsname.Nodename[:]),
		Release:  unix.ByteSliceToString(utsname.Release[:]),
		Version:  unix.ByteSliceToString(utsname.Version[:]),
		Machine:  unix.ByteSliceToString(utsname.Machine[:]),
	}, nil
}
