package trace

import (
	"bytes"
	"testing"

	"github.com/antgroup/proxyselect/modules/term"
	"github.com/stretchr/testify/require"
)

func TestFormatDebug(t *testing.T) {
	b := formatDebug(term.LevelNone, "resolve http://example.com\n[DIRECT]")
	require.Equal(t, "* resolve http://example.com\n* [DIRECT]\n", string(b))
	b = formatDebug(term.Level256, "jack")
	require.Equal(t, "\x1b[33m* jack\x1b[0m\n", string(b))
}

func TestDebuger(t *testing.T) {
	var buf bytes.Buffer
	saved := stderr
	stderr = &buf
	defer func() { stderr = saved }()
	NewDebuger(false).DbgPrint("quiet")
	require.Zero(t, buf.Len())
	NewDebuger(true).DbgPrint("origin %s", "env")
	require.Contains(t, buf.String(), "origin env")
}

func TestErrorf(t *testing.T) {
	err := Errorf("load config %s: %v", "a.toml", "missing")
	require.EqualError(t, err, "load config a.toml: missing")
	fn, _ := Location(1)
	require.Contains(t, fn, "TestErrorf")
}
