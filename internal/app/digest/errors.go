package digest

import "errors"

var ErrAlgorithmRequired = errors.New("digest algorithm is required")
