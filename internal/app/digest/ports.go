package digest

import (
	"context"

	"github.com/osvaldoandrade/canonhash/internal/domain"
)

type Canonicalizer interface {
	Canonicalize(ctx context.Context, value any, replacer domain.Replacer) (string, error)
	CanonicalizeAsync(ctx context.Context, value any, replacer domain.Replacer, done func(string, error))
}

type Hasher interface {
	SumHex(data []byte) string
}

// AlgorithmResolver maps an algorithm name to its hasher.
type AlgorithmResolver func(name string) (Hasher, error)
