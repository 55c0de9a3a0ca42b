package term

import (
	"os"
	"strings"

	"github.com/antgroup/proxyselect/modules/strengthen"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type Level int

const (
	LevelNone Level = iota
	Level256
	Level16M
)

var (
	StderrLevel Level
	StdoutLevel Level
)

func detectColorLevel() Level {
	if strengthen.SimpleAtob(os.Getenv("PROXYSELECT_FORCE_TRUECOLOR"), false) {
		return Level16M
	}
	if strengthen.SimpleAtob(os.Getenv("NO_COLOR"), false) {
		return LevelNone
	}
	if _, ok := os.LookupEnv("WT_SESSION"); ok {
		return Level16M
	}
	colorTermEnv := os.Getenv("COLORTERM")
	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTermEnv, "24bit") ||
		strings.Contains(colorTermEnv, "truecolor") {
		return Level16M
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTermEnv, "256") {
		return Level256
	}
	return LevelNone
}

func init() {
	level := detectColorLevel()
	if IsTerminal(os.Stderr.Fd()) {
		StderrLevel = level
	}
	if IsTerminal(os.Stdout.Fd()) {
		StdoutLevel = level
	}
}

// IsTerminal also accepts cygwin/msys2 ptys, which are pipes to the native check.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
