package env

import (
	"strings"
)

// Family is the coarse platform category of an OS name.
type Family int

const (
	Other Family = iota
	Linux
	MacOS
	Windows
)

func (f Family) String() string {
	switch f {
	case Linux:
		return "Linux"
	case MacOS:
		return "MacOS"
	case Windows:
		return "Windows"
	}
	return "Other"
}

// Flags holds the result of independent substring checks against an OS name.
// More than one flag may be set.
type Flags struct {
	Linux   bool
	Mac     bool
	Windows bool
}

func ParseFlags(name string) Flags {
	n := strings.ToLower(name)
	return Flags{
		Linux:   strings.Contains(n, "linux"),
		Mac:     strings.Contains(n, "mac"),
		Windows: strings.Contains(n, "windows"),
	}
}

// Family collapses the flags in the order Linux, MacOS, Windows.
func (f Flags) Family() Family {
	switch {
	case f.Linux:
		return Linux
	case f.Mac:
		return MacOS
	case f.Windows:
		return Windows
	}
	return Other
}

func FamilyOf(name string) Family {
	return ParseFlags(name).Family()
}
