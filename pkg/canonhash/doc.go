// Package canonhash serializes JSON-representable values into a canonical
// text form and hashes it. Two values that are structurally equal produce
// byte-identical canonical strings regardless of the order in which their
// object members were inserted, which makes the output usable as a cache
// key, a comparison fingerprint, or input to a cryptographic digest.
//
// Object members are ordered by sorting the rendered `"key":value`
// fragments, members with no encoding (Undefined, bare funcs) are omitted
// from objects and rendered as null inside arrays, and numbers keep the
// literal form of the host encoder. Every operation has a synchronous form
// and an asynchronous twin that delivers the identical bytes.
package canonhash
