package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/antgroup/proxyselect/modules/term"
	"github.com/sirupsen/logrus"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose}
}

type debuger struct {
	verbose bool
}

var (
	debugMode atomic.Bool
	stderr    io.Writer = os.Stderr
)

// EnableDebugMode turns on DbgPrint output and lowers the logrus level to debug.
func EnableDebugMode() {
	debugMode.Store(true)
	logrus.SetLevel(logrus.DebugLevel)
}

func formatDebug(level term.Level, message string) []byte {
	var buffer bytes.Buffer
	for _, s := range strings.Split(message, "\n") {
		_, _ = buffer.WriteString(level.Yellow("* " + s))
		_ = buffer.WriteByte('\n')
	}
	return buffer.Bytes()
}

func DbgPrint(format string, args ...any) {
	if !debugMode.Load() {
		return
	}
	message := fmt.Sprintf(format, args...)
	_, _ = stderr.Write(formatDebug(term.StderrLevel, message))
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	message := fmt.Sprintf(format, args...)
	_, _ = stderr.Write(formatDebug(term.StderrLevel, message))
}

var (
	_ Debuger = &debuger{}
)
