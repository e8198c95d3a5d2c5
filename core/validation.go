package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateQuery validates a Query according to dispatch rules.
//
// Validation rules:
//   - Mode must be Normal, HardwareOnly or Raw
//   - Normal and HardwareOnly queries need a non-blank Term
//   - Raw queries need at least one argument
//
// NOT validated:
//   - RawArgs contents (passed to the index tool untouched)
//   - Raw (kept for logging only)
func ValidateQuery(q Query) error {
	if err := ValidateSearchMode(q.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	if q.Mode == SearchModeRaw {
		if len(q.RawArgs) == 0 {
			return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyRawArgs)
		}
		return nil
	}

	if strings.TrimSpace(q.Term) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyTerm)
	}
	return nil
}

// ValidateSearchMode validates that a SearchMode has a known value.
func ValidateSearchMode(mode SearchMode) error {
	switch mode {
	case SearchModeNormal, SearchModeHardwareOnly, SearchModeRaw:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidSearchMode, mode)
	}
}

// IsUnder reports whether path equals base or lies beneath it.
// Both paths are cleaned first, so "/media/" and "/media" compare equal.
func IsUnder(path, base string) bool {
	path = filepath.Clean(path)
	base = filepath.Clean(base)
	if path == base {
		return true
	}
	if base == string(filepath.Separator) {
		return strings.HasPrefix(path, base)
	}
	return strings.HasPrefix(path, base+string(filepath.Separator))
}
