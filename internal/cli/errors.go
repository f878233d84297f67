package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	digestapp "github.com/osvaldoandrade/canonhash/internal/app/digest"
	"github.com/osvaldoandrade/canonhash/internal/domain"
	"github.com/osvaldoandrade/canonhash/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/canonhash/internal/infra/hash"
	"github.com/osvaldoandrade/canonhash/internal/infra/rawjson"
)

type ErrorKind string

const (
	KindInternal   ErrorKind = "internal"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
)

const (
	ExitInternal = 1
	ExitInvalid  = 2
	ExitNotFound = 3
)

type ExitError struct {
	Code    int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e ExitError) Error() string {
	return errorMessage(e)
}

func NormalizeError(err error) ExitError {
	if err == nil {
		return ExitError{Code: 0}
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 0 {
			exitErr.Code = ExitInternal
		}
		return exitErr
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ExitError{Code: ExitNotFound, Kind: KindNotFound, Err: err}
	case errors.Is(err, digestapp.ErrAlgorithmRequired),
		errors.Is(err, hash.ErrUnknownAlgorithm),
		errors.Is(err, rawjson.ErrEmptyInput),
		errors.Is(err, rawjson.ErrTrailingData),
		errors.Is(err, canonicaljson.ErrCycle),
		errors.Is(err, canonicaljson.ErrInvalidNumber),
		errors.Is(err, domain.ErrNoEncoding):
		return ExitError{Code: ExitInvalid, Kind: KindValidation, Err: err}
	default:
		return ExitError{Code: ExitInternal, Kind: KindInternal, Err: err}
	}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return NormalizeError(err).Code
}

func writeCLIError(w io.Writer, exitErr ExitError, asJSON bool) error {
	if exitErr.Code == 0 {
		return nil
	}
	message := errorMessage(exitErr)
	if asJSON {
		payload := struct {
			Code    int    `json:"code"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}{
			Code:    exitErr.Code,
			Kind:    string(exitErr.Kind),
			Message: message,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(w, false)
	prefix := "Error"
	if exitErr.Kind != "" {
		prefix = fmt.Sprintf("Error (%s)", exitErr.Kind)
	}
	prefix = ui.err(prefix)
	_, err := fmt.Fprintf(w, "%s: %s\n", prefix, message)
	return err
}

func errorMessage(exitErr ExitError) string {
	if exitErr.Message != "" {
		return exitErr.Message
	}
	if exitErr.Err != nil {
		return exitErr.Err.Error()
	}
	return "unknown error"
}
