//go:build !darwin && !windows && !linux

package systemproxy

import (
	"context"
)

func LoadSystemOrigin(ctx context.Context) (SchemeMap, error) {
	return nil, ErrNoSystemProxy
}
