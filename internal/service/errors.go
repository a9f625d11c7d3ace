package service

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

// Reason strips the sentinel prefix so handlers can surface the
// human-readable part, e.g. "validation: items required" -> "items required".
func Reason(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if i := strings.Index(s, ": "); i >= 0 {
		return s[i+2:]
	}
	return s
}
