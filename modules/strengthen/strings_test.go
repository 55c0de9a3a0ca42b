package strengthen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleAtob(t *testing.T) {
	require.True(t, SimpleAtob("YES", false))
	require.True(t, SimpleAtob("1", false))
	require.False(t, SimpleAtob("off", true))
	require.True(t, SimpleAtob("maybe", true))
	require.False(t, SimpleAtob("", false))
}

func TestStrSplitSkipEmpty(t *testing.T) {
	sv := StrSplitSkipEmpty(";http=proxy:3128;; https=proxy:3129;", ';', 4)
	require.Equal(t, []string{"http=proxy:3128", "https=proxy:3129"}, sv)
}
