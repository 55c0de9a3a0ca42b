package version

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSystemInfo(t *testing.T) {
	info, err := GetSystemInfo()
	require.NoError(t, err)
	require.Equal(t, runtime.GOOS, info.OS)
	require.NotEmpty(t, info.Name)
	require.NotEmpty(t, info.Family)
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", " ")
	_ = enc.Encode(info)
}

func TestUnameOnce(t *testing.T) {
	a, err := Uname()
	require.NoError(t, err)
	b, err := Uname()
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestVersionStrings(t *testing.T) {
	require.True(t, strings.HasPrefix(GetUserAgent(), "proxyselect/"))
	require.Equal(t, "proxyselect-"+GetVersion(), GetServerVersion())
	require.Contains(t, GetVersionString(), GetBuildCommit())
}
