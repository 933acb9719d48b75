// Package useragent loads browser/OS catalogs and synthesizes plausible
// HTTP User-Agent strings from them.
package useragent

import (
	"fmt"
	"os"

	json "github.com/json-iterator/go" // Use json-iterator for consistency and performance
)

// OperatingSystem is one platform a browser plausibly runs on, with the
// versions it ships in.
type OperatingSystem struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// Browser describes one browser family: its released versions and the
// operating systems it pairs with.
type Browser struct {
	Name     string            `json:"name"`
	Versions []string          `json:"versions"`
	OS       []OperatingSystem `json:"os"`
}

// Catalog is the read-only browser/OS reference data a generation run
// selects from. Nothing mutates it after Load returns.
type Catalog struct {
	Browsers []Browser `json:"browsers"`
}

// Load reads and parses a catalog file, then verifies its structure.
// Failures are classified: ErrNotFound for a missing file, ErrPermission
// for an unreadable one, ErrMalformed for parse or schema violations.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		case os.IsPermission(err):
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		default:
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformed, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate walks the catalog top-down and reports the first structural
// violation it finds, naming the offending index or entry.
func (c *Catalog) validate() error {
	if len(c.Browsers) == 0 {
		return fmt.Errorf("%w: 'browsers' must be a non-empty list", ErrMalformed)
	}
	for i, b := range c.Browsers {
		if b.Name == "" {
			return fmt.Errorf("%w: browser at index %d is missing 'name'", ErrMalformed, i)
		}
		if len(b.Versions) == 0 {
			return fmt.Errorf("%w: browser %q must have a non-empty 'versions' list", ErrMalformed, b.Name)
		}
		if len(b.OS) == 0 {
			return fmt.Errorf("%w: browser %q must have a non-empty 'os' list", ErrMalformed, b.Name)
		}
		for j, o := range b.OS {
			if o.Name == "" {
				return fmt.Errorf("%w: os at index %d for browser %q is missing 'name'", ErrMalformed, j, b.Name)
			}
			if len(o.Versions) == 0 {
				return fmt.Errorf("%w: os %q for browser %q must have a non-empty 'versions' list", ErrMalformed, o.Name, b.Name)
			}
		}
	}
	return nil
}
