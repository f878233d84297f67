package domain

import "errors"

// ErrNoEncoding is returned when a whole value reduces to "no value"
// (an undefined or func root). It lets callers tell an absent result
// apart from the three-character string "null".
var ErrNoEncoding = errors.New("value has no canonical encoding")
