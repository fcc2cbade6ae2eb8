// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidPrefix     = errors.New("invalid mount prefix")
	ErrOverlappingPrefix = errors.New("overlapping mount prefixes")
)

// Paths owned by the inline handlers; no mount may cover them
var reservedPaths = []string{"/health"}

// Mount binds a handler to every path under Prefix.
// The handler sees the request path with Prefix stripped.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Validate checks that every prefix is well formed and that no two
// prefixes overlap, so dispatch never depends on registration order.
func Validate(mounts []Mount) error {
	for i, m := range mounts {
		if err := validPrefix(m.Prefix); err != nil {
			return err
		}
		if m.Handler == nil {
			return fmt.Errorf("%w: %q has no handler", ErrInvalidPrefix, m.Prefix)
		}
		for _, reserved := range reservedPaths {
			if overlaps(m.Prefix, reserved) {
				return fmt.Errorf("%w: %q shadows %s", ErrOverlappingPrefix, m.Prefix, reserved)
			}
		}
		for _, other := range mounts[:i] {
			if overlaps(m.Prefix, other.Prefix) {
				return fmt.Errorf("%w: %q and %q", ErrOverlappingPrefix, other.Prefix, m.Prefix)
			}
		}
	}
	return nil
}

func validPrefix(p string) error {
	switch {
	case p == "" || p == "/":
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, p)
	case !strings.HasPrefix(p, "/"):
		return fmt.Errorf("%w: %q must start with /", ErrInvalidPrefix, p)
	case strings.HasSuffix(p, "/"):
		return fmt.Errorf("%w: %q must not end with /", ErrInvalidPrefix, p)
	case strings.ContainsAny(p, "{} \t"):
		return fmt.Errorf("%w: %q contains pattern characters", ErrInvalidPrefix, p)
	}
	return nil
}

// overlaps reports whether one prefix equals the other or covers it by
// whole path segments. /api/food and /api/foods do not overlap.
func overlaps(a, b string) bool {
	return a == b || strings.HasPrefix(b, a+"/") || strings.HasPrefix(a, b+"/")
}
