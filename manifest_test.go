package logo565

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	entries := []ManifestEntry{
		{Team: "NJD", LogoURL: "https://example.com/NJD_dark.svg", RGB565: "NJD.rgb565", PreviewPNG: "NJD.png", Width: 20, Height: 20},
		{Team: "CAN", Kind: "international", RGB565: "CAN.rgb565", PreviewPNG: "CAN.png", Width: 20, Height: 20},
	}
	if err := WriteManifest(path, entries); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []ManifestEntry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(entries) {
		t.Fatalf("entry count: got %d want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d: got %+v want %+v", i, got[i], entries[i])
		}
	}
}
