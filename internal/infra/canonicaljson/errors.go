package canonicaljson

import "errors"

var ErrCycle = errors.New("cycle through container value")
var ErrInvalidNumber = errors.New("invalid number literal")
