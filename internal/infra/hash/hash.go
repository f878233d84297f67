package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Hex computes the lowercase hexadecimal digest of data.
type Hex interface {
	SumHex(data []byte) string
}

type MD5 struct{}

func (MD5) SumHex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

type SHA1 struct{}

func (SHA1) SumHex(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

type SHA256 struct{}

func (SHA256) SumHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

type SHA512 struct{}

func (SHA512) SumHex(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// ByName resolves an algorithm name, case-insensitively.
func ByName(name string) (Hex, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md5":
		return MD5{}, nil
	case "sha1":
		return SHA1{}, nil
	case "sha256":
		return SHA256{}, nil
	case "sha512":
		return SHA512{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
}

// Names lists the supported algorithm names.
func Names() []string {
	return []string{"md5", "sha1", "sha256", "sha512"}
}
