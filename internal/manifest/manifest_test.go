package manifest

import (
	"encoding/json"
	"testing"

	"github.com/snapdeck/genicons/internal/icongen"
)

func TestIconsForDefaultSpecs(t *testing.T) {
	icons := Icons(icongen.DefaultSpecs(), "icons")
	want := []Icon{
		{Src: "icons/icon-192.png", Sizes: "192x192", Type: "image/png", Purpose: "any"},
		{Src: "icons/icon-512.png", Sizes: "512x512", Type: "image/png", Purpose: "any"},
		{Src: "icons/maskable-192.png", Sizes: "192x192", Type: "image/png", Purpose: "maskable"},
		{Src: "icons/maskable-512.png", Sizes: "512x512", Type: "image/png", Purpose: "maskable"},
	}
	if len(icons) != len(want) {
		t.Fatalf("got %d icons, want %d", len(icons), len(want))
	}
	for i := range want {
		if icons[i] != want[i] {
			t.Errorf("icons[%d] = %+v, want %+v", i, icons[i], want[i])
		}
	}
}

func TestIconsDefaultPurpose(t *testing.T) {
	icons := Icons([]icongen.Spec{{Name: "a.png", Size: 48}}, "/static/")
	if icons[0].Purpose != "any" || icons[0].Src != "/static/a.png" {
		t.Errorf("unexpected icon %+v", icons[0])
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Icons(icongen.DefaultSpecs(), "icons"))
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Icons []Icon `json:"icons"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Icons) != 4 || doc.Icons[3].Purpose != "maskable" {
		t.Errorf("round trip = %+v", doc.Icons)
	}
}
