package env

import (
	"os"
	"strings"
)

// Broker is the source of environment variables an Inspector reads from.
type Broker interface {
	LookupEnv(key string) (string, bool)
	Getenv(key string) string
	Environ() []string
}

type broker struct {
}

func (b *broker) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (b *broker) Getenv(key string) string {
	return os.Getenv(key)
}

func (b *broker) Environ() []string {
	return os.Environ()
}

type staticBroker struct {
	env  map[string]int
	envs []string
}

// NewBroker returns a Broker over a fixed KEY=VALUE list. Malformed entries are
// ignored and a repeated key keeps its last value.
func NewBroker(kv []string) Broker {
	sb := &staticBroker{
		env:  make(map[string]int),
		envs: make([]string, 0, len(kv)),
	}
	for _, e := range kv {
		k, _, ok := strings.Cut(e, "=")
		if !ok || len(k) == 0 {
			continue
		}
		if i, ok := sb.env[k]; ok {
			sb.envs[i] = e
			continue
		}
		sb.env[k] = len(sb.envs)
		sb.envs = append(sb.envs, e)
	}
	return sb
}

func (sb *staticBroker) LookupEnv(key string) (string, bool) {
	i, ok := sb.env[key]
	if !ok {
		return "", false
	}
	_, v, _ := strings.Cut(sb.envs[i], "=")
	return v, true
}

func (sb *staticBroker) Getenv(key string) string {
	v, _ := sb.LookupEnv(key)
	return v
}

func (sb *staticBroker) Environ() []string {
	a := make([]string, len(sb.envs))
	copy(a, sb.envs)
	return a
}

var (
	SystemBroker Broker = &broker{}
)
