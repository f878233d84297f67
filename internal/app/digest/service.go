package digest

import (
	"context"
	"strings"

	"github.com/osvaldoandrade/canonhash/internal/domain"
)

type Service struct {
	canonicalizer Canonicalizer
	algorithms    AlgorithmResolver
}

func NewService(canonicalizer Canonicalizer, algorithms AlgorithmResolver) *Service {
	return &Service{
		canonicalizer: canonicalizer,
		algorithms:    algorithms,
	}
}

// Digest canonicalizes value under the optional replacer and returns the
// lowercase hex digest of the canonical text.
func (s *Service) Digest(ctx context.Context, value any, algorithm string, replacer domain.Replacer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hasher, err := s.resolve(algorithm)
	if err != nil {
		return "", err
	}
	canonical, err := s.canonicalizer.Canonicalize(ctx, value, replacer)
	if err != nil {
		return "", err
	}
	return hasher.SumHex([]byte(canonical)), nil
}

// DigestAsync is the asynchronous twin of Digest. A nil done callback makes
// the call a no-op, matching the canonicalizer's contract.
func (s *Service) DigestAsync(ctx context.Context, value any, algorithm string, replacer domain.Replacer, done func(string, error)) {
	if done == nil {
		return
	}
	hasher, err := s.resolve(algorithm)
	if err != nil {
		go done("", err)
		return
	}
	s.canonicalizer.CanonicalizeAsync(ctx, value, replacer, func(canonical string, err error) {
		if err != nil {
			done("", err)
			return
		}
		done(hasher.SumHex([]byte(canonical)), nil)
	})
}

func (s *Service) resolve(algorithm string) (Hasher, error) {
	if strings.TrimSpace(algorithm) == "" {
		return nil, ErrAlgorithmRequired
	}
	return s.algorithms(algorithm)
}
