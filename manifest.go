package logo565

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes one generated logo asset.
type ManifestEntry struct {
	Team       string `json:"team"`
	Kind       string `json:"type,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
	RGB565     string `json:"rgb565"`
	PreviewPNG string `json:"preview_png"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// WriteManifest writes the asset manifest as indented JSON, the file
// the firmware flasher reads to lay out flash.
func WriteManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
