package digest

import (
	"context"
	"errors"
	"testing"

	"github.com/osvaldoandrade/canonhash/internal/domain"
)

type fakeCanonicalizer struct {
	out   string
	err   error
	value any
}

func (f *fakeCanonicalizer) Canonicalize(ctx context.Context, value any, replacer domain.Replacer) (string, error) {
	f.value = value
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func (f *fakeCanonicalizer) CanonicalizeAsync(ctx context.Context, value any, replacer domain.Replacer, done func(string, error)) {
	if done == nil {
		return
	}
	go func() {
		done(f.Canonicalize(ctx, value, replacer))
	}()
}

type fakeHasher struct {
	sum  string
	data []byte
}

func (f *fakeHasher) SumHex(data []byte) string {
	f.data = data
	return f.sum
}

func resolverFor(h Hasher, err error) AlgorithmResolver {
	return func(name string) (Hasher, error) {
		if err != nil {
			return nil, err
		}
		return h, nil
	}
}

func TestDigestHashesCanonicalText(t *testing.T) {
	canonicalizer := &fakeCanonicalizer{out: `{"a":1}`}
	hasher := &fakeHasher{sum: "abc123"}
	service := NewService(canonicalizer, resolverFor(hasher, nil))

	got, err := service.Digest(context.Background(), map[string]any{"a": 1}, "sha256", nil)
	if err != nil {
		t.Fatalf("Digest returned error: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("expected abc123, got %s", got)
	}
	if string(hasher.data) != `{"a":1}` {
		t.Fatalf("hasher received %q, want canonical text", hasher.data)
	}
}

func TestDigestRequiresAlgorithm(t *testing.T) {
	service := NewService(&fakeCanonicalizer{out: "null"}, resolverFor(&fakeHasher{}, nil))

	_, err := service.Digest(context.Background(), nil, "  ", nil)
	if !errors.Is(err, ErrAlgorithmRequired) {
		t.Fatalf("expected ErrAlgorithmRequired, got %v", err)
	}
}

func TestDigestPropagatesResolverError(t *testing.T) {
	resolverErr := errors.New("no such algorithm")
	service := NewService(&fakeCanonicalizer{out: "null"}, resolverFor(nil, resolverErr))

	_, err := service.Digest(context.Background(), nil, "whirlpool", nil)
	if !errors.Is(err, resolverErr) {
		t.Fatalf("expected resolver error, got %v", err)
	}
}

func TestDigestPropagatesCanonicalizeError(t *testing.T) {
	encodeErr := errors.New("encode failed")
	service := NewService(&fakeCanonicalizer{err: encodeErr}, resolverFor(&fakeHasher{}, nil))

	_, err := service.Digest(context.Background(), nil, "md5", nil)
	if !errors.Is(err, encodeErr) {
		t.Fatalf("expected canonicalize error, got %v", err)
	}
}

func TestDigestAsyncDeliversResult(t *testing.T) {
	canonicalizer := &fakeCanonicalizer{out: `[1,2]`}
	hasher := &fakeHasher{sum: "feed"}
	service := NewService(canonicalizer, resolverFor(hasher, nil))

	results := make(chan string, 1)
	service.DigestAsync(context.Background(), []any{1, 2}, "md5", nil, func(sum string, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		results <- sum
	})
	if got := <-results; got != "feed" {
		t.Fatalf("expected feed, got %s", got)
	}
}

func TestDigestAsyncNilCallbackIsNoOp(t *testing.T) {
	canonicalizer := &fakeCanonicalizer{out: "null"}
	service := NewService(canonicalizer, resolverFor(&fakeHasher{}, nil))

	service.DigestAsync(context.Background(), nil, "md5", nil, nil)
	if canonicalizer.value != nil {
		t.Fatal("canonicalizer must not run without a completion callback")
	}
}

func TestDigestAsyncUnknownAlgorithm(t *testing.T) {
	resolverErr := errors.New("no such algorithm")
	service := NewService(&fakeCanonicalizer{out: "null"}, resolverFor(nil, resolverErr))

	errs := make(chan error, 1)
	service.DigestAsync(context.Background(), nil, "whirlpool", nil, func(_ string, err error) {
		errs <- err
	})
	if err := <-errs; !errors.Is(err, resolverErr) {
		t.Fatalf("expected resolver error, got %v", err)
	}
}
