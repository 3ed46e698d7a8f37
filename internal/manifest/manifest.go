// Package manifest builds the "icons" member of a web app manifest for
// the generated icon set.
package manifest

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/snapdeck/genicons/internal/icongen"
)

// Icon is one entry of a web app manifest "icons" array.
type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// Icons returns manifest entries for specs, with src paths under prefix.
func Icons(specs []icongen.Spec, prefix string) []Icon {
	icons := make([]Icon, 0, len(specs))
	for _, s := range specs {
		purpose := s.Purpose
		if purpose == "" {
			purpose = icongen.PurposeAny
		}
		icons = append(icons, Icon{
			Src:     path.Join(prefix, s.Name),
			Sizes:   fmt.Sprintf("%dx%d", s.Size, s.Size),
			Type:    "image/png",
			Purpose: purpose,
		})
	}
	return icons
}

// Marshal returns {"icons": [...]} as indented JSON.
func Marshal(icons []Icon) ([]byte, error) {
	return json.MarshalIndent(struct {
		Icons []Icon `json:"icons"`
	}{icons}, "", "  ")
}
