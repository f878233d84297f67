package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/osvaldoandrade/canonhash/pkg/canonhash"
)

func main() {
	ctx := context.Background()

	value := map[string]any{
		"hello": "world",
		"foo":   "bar",
		"list":  []any{1, nil, 3},
	}

	canonical, err := canonhash.Canonicalize(ctx, value, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "canonicalize: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("canonical %s\n", canonical)

	sum, err := canonhash.Digest(ctx, value, "sha256", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "digest: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sha256 %s\n", sum)

	var wg sync.WaitGroup
	wg.Add(1)
	canonhash.CanonicalizeAsync(ctx, value, nil, func(async string, err error) {
		defer wg.Done()
		if err != nil {
			fmt.Fprintf(os.Stderr, "async canonicalize: %v\n", err)
			return
		}
		fmt.Printf("async matches sync: %v\n", async == canonical)
	})
	wg.Wait()

	redacting := func(key string, v any) any {
		if key == "foo" {
			return canonhash.Undefined
		}
		return v
	}
	redacted, err := canonhash.Canonicalize(ctx, value, redacting)
	if err != nil {
		fmt.Fprintf(os.Stderr, "redacted canonicalize: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("redacted %s\n", redacted)
}
