// Package idgen mints record IDs of the form "<prefix>_<suffix>"
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator mints IDs
type Generator interface {
	Generate() string
}

func withPrefix(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "_" + suffix
}

// UUID mints random IDs such as "char_1b4e28ba-2fa1-11d2-883f-0016d3cca427"
type UUID struct {
	prefix string
}

func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

func (g *UUID) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

// Sequential mints "char_1", "char_2", ... for tests that assert on IDs
type Sequential struct {
	prefix string
	next   atomic.Uint64
}

func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (g *Sequential) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}
