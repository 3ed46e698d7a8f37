// Package icongen renders the PWA icon set from a single source logo.
package icongen

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when the source logo does not exist.
	ErrMissingInput = errors.New("missing source logo")
	// ErrInvalidParameter is returned for a size/padding pair that leaves
	// no room for the logo.
	ErrInvalidParameter = errors.New("padding must be >= 0 and less than half the size")
)

const (
	PurposeAny      = "any"
	PurposeMaskable = "maskable"
)

// Spec describes one output icon.
type Spec struct {
	Name    string // file name inside the output directory
	Size    int    // canvas edge in pixels
	Padding int    // minimum margin on every side
	Purpose string // PurposeAny | PurposeMaskable
}

// DefaultSpecs returns the fixed output set in write order.
// Maskable variants get extra padding so the logo survives the circle or
// squircle crop applied by the launcher.
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: "icon-192.png", Size: 192, Padding: 20, Purpose: PurposeAny},
		{Name: "icon-512.png", Size: 512, Padding: 56, Purpose: PurposeAny},
		{Name: "maskable-192.png", Size: 192, Padding: 32, Purpose: PurposeMaskable},
		{Name: "maskable-512.png", Size: 512, Padding: 96, Purpose: PurposeMaskable},
	}
}

// Validate checks the geometric invariant 0 <= Padding and 2*Padding < Size.
func (s Spec) Validate() error {
	return checkGeometry(s.Size, s.Padding)
}

// MaxSide is the edge of the box the logo is shrunk into.
func (s Spec) MaxSide() int {
	return s.Size - 2*s.Padding
}

// checkGeometry is written without padding*2 so that large values cannot
// overflow past it.
func checkGeometry(size, padding int) error {
	if size <= 0 || padding < 0 || padding >= size-padding {
		return fmt.Errorf("size=%d padding=%d: %w", size, padding, ErrInvalidParameter)
	}
	return nil
}
