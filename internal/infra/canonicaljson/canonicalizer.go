// Package canonicaljson renders JSON-representable values into a single
// canonical text: object members sorted, insertion order erased, so the
// output is stable enough to feed a cache key or a cryptographic digest.
package canonicaljson

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osvaldoandrade/canonhash/internal/domain"
)

type Canonicalizer struct{}

// Canonicalize returns the canonical encoding of value. The optional
// replacer is applied once per node before that node is serialized.
func (c Canonicalizer) Canonicalize(ctx context.Context, value any, replacer domain.Replacer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.render(ctx, value, replacer, runSerial)
}

// CanonicalizeAsync delivers the same string the synchronous form would
// produce, serializing container members on their own goroutines. A nil
// done callback makes the call a no-op.
func (c Canonicalizer) CanonicalizeAsync(ctx context.Context, value any, replacer domain.Replacer, done func(string, error)) {
	if done == nil {
		return
	}
	go func() {
		done(c.render(ctx, value, replacer, runConcurrent))
	}()
}

func (c Canonicalizer) render(ctx context.Context, value any, replacer domain.Replacer, run runFunc) (string, error) {
	enc := encoder{run: run}
	frag, err := enc.encode(ctx, "", value, replacer, nil)
	if err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}
	if !frag.ok {
		return "", domain.ErrNoEncoding
	}
	return frag.text, nil
}

// runFunc is the suspension strategy: the serial form runs member tasks in
// dispatch order, the concurrent form joins them through an errgroup. Both
// feed the same encoder, so the two public forms cannot drift apart.
type runFunc func(tasks []func() error) error

func runSerial(tasks []func() error) error {
	for _, task := range tasks {
		if err := task(); err != nil {
			return err
		}
	}
	return nil
}

// runConcurrent dispatches every task before joining. Wait is the single
// assembly barrier and its first error wins; siblings of a failed member
// run to completion and their fragments are discarded with the group.
func runConcurrent(tasks []func() error) error {
	var group errgroup.Group
	for _, task := range tasks {
		group.Go(task)
	}
	return group.Wait()
}
