package systemproxy

import (
	"errors"
)

// ErrNoSystemProxy is returned where the host has no readable proxy settings.
var ErrNoSystemProxy = errors.New("systemproxy: no system proxy settings")
