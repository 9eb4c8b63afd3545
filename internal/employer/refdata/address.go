// Package refdata owns the static reference data consumed by the employer
// gates: the address directory, the payroll-provider name list, and the
// high-infrastructure role list. Everything here is read-only after
// construction so gates stay independently testable.
package refdata

import (
	"fmt"
)

// Zoning is the land-use classification of a directory address.
type Zoning string

const (
	ZoningCommercial  Zoning = "COMMERCIAL"
	ZoningResidential Zoning = "RESIDENTIAL"
)

// AddressEntry is one known, resolvable location. Formatted is the unique
// lookup key.
type AddressEntry struct {
	Formatted string
	Lat       float64
	Lng       float64
	Zoning    Zoning
	City      string
}

// Directory is an immutable address lookup built once at startup.
type Directory struct {
	byFormatted map[string]AddressEntry
}

// NewDirectory builds a directory from entries, enforcing the invariant that
// Formatted is unique across the set.
func NewDirectory(entries []AddressEntry) (*Directory, error) {
	byFormatted := make(map[string]AddressEntry, len(entries))
	for _, entry := range entries {
		if entry.Formatted == "" {
			return nil, fmt.Errorf("address entry with empty formatted string")
		}
		if _, exists := byFormatted[entry.Formatted]; exists {
			return nil, fmt.Errorf("duplicate address entry %q", entry.Formatted)
		}
		byFormatted[entry.Formatted] = entry
	}
	return &Directory{byFormatted: byFormatted}, nil
}

// MustDirectory is NewDirectory for static seed data, where a duplicate is a
// programming error.
func MustDirectory(entries []AddressEntry) *Directory {
	directory, err := NewDirectory(entries)
	if err != nil {
		panic(err)
	}
	return directory
}

// Find resolves an address by exact string match on its formatted form.
func (d *Directory) Find(formatted string) (AddressEntry, bool) {
	entry, ok := d.byFormatted[formatted]
	return entry, ok
}

// Len reports the number of entries.
func (d *Directory) Len() int { return len(d.byFormatted) }

// DefaultAddresses is the built-in directory seed used when no external
// address source is configured.
func DefaultAddresses() []AddressEntry {
	return []AddressEntry{
		{
			Formatted: "100 King St, Toronto",
			Lat:       43.6487,
			Lng:       -79.3817,
			Zoning:    ZoningCommercial,
			City:      "Toronto",
		},
		{
			Formatted: "500 Industrial Rd, Calgary",
			Lat:       51.0447,
			Lng:       -114.0719,
			Zoning:    ZoningCommercial,
			City:      "Calgary",
		},
		{
			Formatted: "12 Maple Ave, Toronto",
			Lat:       43.7001,
			Lng:       -79.4163,
			Zoning:    ZoningResidential,
			City:      "Toronto",
		},
	}
}
