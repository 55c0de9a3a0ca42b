package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelColor(t *testing.T) {
	require.Equal(t, "direct", LevelNone.Yellow("direct"))
	require.Equal(t, "\x1b[32mproxy\x1b[0m", Level256.Green("proxy"))
	require.Equal(t, "\x1b[38;2;0;201;255mhttp\x1b[0m", Level16M.Blue("http"))
	require.Equal(t, "\x1b[38;2;254;225;64mDIRECT\x1b[0m", Level16M.Yellow("DIRECT"))
	require.Equal(t, "\x1b[33m* debug\x1b[0m", Level256.Yellow("* debug"))
}

func TestDetectColorLevel(t *testing.T) {
	t.Setenv("PROXYSELECT_FORCE_TRUECOLOR", "")
	t.Setenv("WT_SESSION", "")
	t.Setenv("NO_COLOR", "1")
	require.Equal(t, LevelNone, detectColorLevel())
	t.Setenv("NO_COLOR", "")
	t.Setenv("PROXYSELECT_FORCE_TRUECOLOR", "on")
	require.Equal(t, Level16M, detectColorLevel())
}
