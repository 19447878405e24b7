package models

import (
	"errors"
	"fmt"
)

// MaxBundleSize is the maximum number of services one appointment can hold.
const MaxBundleSize = 5

var (
	ErrBundleFull        = fmt.Errorf("an appointment can have at most %d services", MaxBundleSize)
	ErrEmptyBundle       = errors.New("an appointment needs at least one service")
	ErrDuplicateInBundle = errors.New("a service can appear only once per appointment")
)

// Bundle is the ordered set of service IDs attached to one appointment.
// The first element is the primary service.
//
// Bundle has value semantics: Toggle returns a new bundle and never mutates
// the receiver's backing array.
type Bundle []string

// Primary returns the first service in the bundle, or "" if empty.
func (b Bundle) Primary() string {
	if len(b) == 0 {
		return ""
	}
	return b[0]
}

// Len returns the number of services in the bundle.
func (b Bundle) Len() int {
	return len(b)
}

// Contains reports whether id is part of the bundle.
func (b Bundle) Contains(id string) bool {
	for _, s := range b {
		if s == id {
			return true
		}
	}
	return false
}

// Toggle removes id if it is present, otherwise appends it.
// Removing the primary promotes the next member. Adding to a full bundle
// returns the bundle unchanged together with ErrBundleFull.
func (b Bundle) Toggle(id string) (Bundle, error) {
	if b.Contains(id) {
		out := make(Bundle, 0, len(b)-1)
		for _, s := range b {
			if s != id {
				out = append(out, s)
			}
		}
		return out, nil
	}
	if len(b) >= MaxBundleSize {
		return b, ErrBundleFull
	}
	out := make(Bundle, len(b), len(b)+1)
	copy(out, b)
	return append(out, id), nil
}

// Validate checks the bundle holds between 1 and MaxBundleSize distinct,
// non-empty service IDs.
func (b Bundle) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBundle
	}
	if len(b) > MaxBundleSize {
		return ErrBundleFull
	}
	seen := make(map[string]bool, len(b))
	for _, id := range b {
		if id == "" {
			return errors.New("service id cannot be empty")
		}
		if seen[id] {
			return ErrDuplicateInBundle
		}
		seen[id] = true
	}
	return nil
}
