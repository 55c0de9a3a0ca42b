package env

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/text/cases"
)

// Environment is an ordered, read-only view of environment variables. Keys are
// kept in ascending order under the comparison rule it was built with.
type Environment struct {
	tree       *treemap.Map
	ignoreCase bool
}

// foldComparator compares keys by case folding. A Caser keeps state, so
// each comparison gets its own.
func foldComparator(a, b any) int {
	c := cases.Fold()
	return strings.Compare(c.String(a.(string)), c.String(b.(string)))
}

// NewEnvironment builds an Environment from KEY=VALUE entries. With ignoreCase
// set, keys differing only in case collapse into one entry holding the value
// of the later entry.
func NewEnvironment(kv []string, ignoreCase bool) *Environment {
	var tree *treemap.Map
	if ignoreCase {
		tree = treemap.NewWith(foldComparator)
	} else {
		tree = treemap.NewWith(utils.StringComparator)
	}
	for _, e := range kv {
		k, v, ok := strings.Cut(e, "=")
		if !ok || len(k) == 0 {
			continue
		}
		tree.Put(k, v)
	}
	return &Environment{tree: tree, ignoreCase: ignoreCase}
}

func (e *Environment) IgnoreCase() bool {
	return e.ignoreCase
}

func (e *Environment) Lookup(key string) (string, bool) {
	v, ok := e.tree.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (e *Environment) Get(key string) string {
	v, _ := e.Lookup(key)
	return v
}

func (e *Environment) Len() int {
	return e.tree.Size()
}

// Keys returns the variable names in ascending order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, e.tree.Size())
	for _, k := range e.tree.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Each calls fn for every variable in key order.
func (e *Environment) Each(fn func(key, value string)) {
	e.tree.Each(func(k, v any) {
		fn(k.(string), v.(string))
	})
}

// Environ returns KEY=VALUE entries in key order.
func (e *Environment) Environ() []string {
	a := make([]string, 0, e.tree.Size())
	e.Each(func(k, v string) {
		a = append(a, k+"="+v)
	})
	return a
}
