package canonhash

import (
	"context"

	digestapp "github.com/osvaldoandrade/canonhash/internal/app/digest"
	"github.com/osvaldoandrade/canonhash/internal/domain"
	"github.com/osvaldoandrade/canonhash/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/canonhash/internal/infra/hash"
	"github.com/osvaldoandrade/canonhash/internal/infra/rawjson"
)

// Replacer transforms each (key, value) pair before serialization; the root
// is passed the empty key. Returning Undefined drops the member.
type Replacer = domain.Replacer

// Undefined marks a member with no canonical encoding: omitted from
// objects, null inside arrays.
var Undefined = domain.Undefined

// ErrNoEncoding reports that the whole value reduced to "no value", which
// is different from encoding to the string "null".
var ErrNoEncoding = domain.ErrNoEncoding

var service = digestapp.NewService(canonicaljson.Canonicalizer{}, func(name string) (digestapp.Hasher, error) {
	hasher, err := hash.ByName(name)
	if err != nil {
		return nil, err
	}
	return hasher, nil
})

// Canonicalize returns the canonical encoding of value under the optional
// replacer (pass nil for none).
func Canonicalize(ctx context.Context, value any, replacer Replacer) (string, error) {
	return (canonicaljson.Canonicalizer{}).Canonicalize(ctx, value, replacer)
}

// CanonicalizeAsync computes the same string as Canonicalize off the
// calling goroutine and hands it to done. A nil done is a no-op: nothing
// runs and no error is reported.
func CanonicalizeAsync(ctx context.Context, value any, replacer Replacer, done func(string, error)) {
	(canonicaljson.Canonicalizer{}).CanonicalizeAsync(ctx, value, replacer, done)
}

// CanonicalizeRaw canonicalizes a raw JSON document. Numbers keep their
// literal text from the input.
func CanonicalizeRaw(ctx context.Context, raw []byte) (string, error) {
	value, err := rawjson.Decode(raw)
	if err != nil {
		return "", err
	}
	return Canonicalize(ctx, value, nil)
}

// Digest canonicalizes value and returns the lowercase hex digest of the
// canonical text under the named algorithm (see Algorithms).
func Digest(ctx context.Context, value any, algorithm string, replacer Replacer) (string, error) {
	return service.Digest(ctx, value, algorithm, replacer)
}

// DigestAsync is the asynchronous twin of Digest, with the same nil-done
// no-op contract as CanonicalizeAsync.
func DigestAsync(ctx context.Context, value any, algorithm string, replacer Replacer, done func(string, error)) {
	service.DigestAsync(ctx, value, algorithm, replacer, done)
}

// Algorithms lists the supported digest algorithm names.
func Algorithms() []string {
	return hash.Names()
}
