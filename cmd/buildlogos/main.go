// Command buildlogos fetches team logos for a standings date, runs them
// through the quantization pipeline and writes .rgb565 assets, PNG
// previews and a manifest.json into the output folder. Failures are
// per-team: a bad logo is logged and skipped, the batch continues.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	logo565 "github.com/scorepanel/logo565-go"
)

const (
	standingsURLFmt = "https://api-web.nhle.com/v1/standings/%s"
	intlLogoURLFmt  = "https://assets.nhle.com/logos/ntl/svg/%s_dark.svg"

	// SVG rasterization size before the pipeline downscales. Large
	// enough that enhancement works on real edges, cheap enough to
	// batch.
	renderSize = 200
)

// International codes that show up in NHL international games.
var internationalTeams = []string{
	"AUT", "CAN", "CZE", "DEN", "FIN", "FRA", "GER", "ITA",
	"LAT", "NOR", "RUS", "SVK", "SUI", "SWE", "USA",
}

type standingsResponse struct {
	Standings []struct {
		TeamAbbrev struct {
			Default string `json:"default"`
		} `json:"teamAbbrev"`
		TeamLogo string `json:"teamLogo"`
	} `json:"standings"`
}

func main() {
	var (
		date       = flag.String("date", "", "standings date YYYY-MM-DD (default: today)")
		out        = flag.String("out", "out", "output folder")
		size       = flag.Int("size", 20, "output size in pixels (square)")
		mode       = flag.String("mode", "perceptual", "perceptual | legacy")
		depth      = flag.Int("depth", 4, "bits per channel in legacy mode")
		dith       = flag.Bool("dither", false, "enable Floyd-Steinberg dithering")
		contrast   = flag.Float64("contrast", 1.2, "contrast enhancement factor")
		saturation = flag.Float64("saturation", 1.3, "saturation enhancement factor")
		sharpness  = flag.Float64("sharpness", 1.1, "sharpness enhancement factor")
		teams      = flag.String("teams", "", "comma-separated international codes instead of standings (empty: all from -international)")
		intl       = flag.Bool("international", false, "build international team logos instead of standings")
	)
	flag.Parse()
	log.SetFlags(0)

	quantMode, err := parseMode(*mode)
	if err != nil {
		exitf("%v", err)
	}

	pal, err := logo565.Default()
	if err != nil {
		exitf("build palette: %v", err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		exitf("create output folder: %v", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	opts := logo565.Options{
		Size:       *size,
		Contrast:   *contrast,
		Saturation: *saturation,
		Sharpness:  *sharpness,
		Mode:       quantMode,
		Dither:     *dith,
		Depth:      *depth,
	}

	var manifest []logo565.ManifestEntry
	if *intl || *teams != "" {
		manifest = buildInternational(client, pal, opts, splitTeams(*teams), *out)
	} else {
		day := *date
		if day == "" {
			day = time.Now().Format("2006-01-02")
		}
		manifest = buildStandings(client, pal, opts, day, *out)
	}

	manifestPath := filepath.Join(*out, "manifest.json")
	if err := logo565.WriteManifest(manifestPath, manifest); err != nil {
		exitf("write manifest: %v", err)
	}
	log.Printf("[done] %d logos", len(manifest))
}

func buildStandings(client *http.Client, pal *logo565.Palette, opts logo565.Options, date, out string) []logo565.ManifestEntry {
	var standings standingsResponse
	if err := fetchJSON(client, fmt.Sprintf(standingsURLFmt, date), &standings); err != nil {
		exitf("fetch standings: %v", err)
	}

	var manifest []logo565.ManifestEntry
	for _, entry := range standings.Standings {
		abbrev := entry.TeamAbbrev.Default
		if abbrev == "" || entry.TeamLogo == "" {
			continue
		}
		logoURL := darkLogoURL(entry.TeamLogo)
		opts.Team = abbrev
		m, err := buildOne(client, pal, opts, abbrev, "", logoURL, out)
		if err != nil {
			log.Printf("[skip] %s: %v", abbrev, err)
			continue
		}
		manifest = append(manifest, m)
		log.Printf("[ok] %s -> %s", abbrev, m.RGB565)
	}
	return manifest
}

func buildInternational(client *http.Client, pal *logo565.Palette, opts logo565.Options, codes []string, out string) []logo565.ManifestEntry {
	if len(codes) == 0 {
		codes = internationalTeams
	}
	var manifest []logo565.ManifestEntry
	for _, code := range codes {
		logoURL := fmt.Sprintf(intlLogoURLFmt, code)
		opts.Team = code
		m, err := buildOne(client, pal, opts, code, "international", logoURL, out)
		if err != nil {
			log.Printf("[skip] %s: %v", code, err)
			continue
		}
		manifest = append(manifest, m)
		log.Printf("[ok] %s -> %s", code, m.RGB565)
	}
	return manifest
}

func buildOne(client *http.Client, pal *logo565.Palette, opts logo565.Options, team, kind, logoURL, out string) (logo565.ManifestEntry, error) {
	svg, err := fetchBytes(client, logoURL)
	if err != nil {
		return logo565.ManifestEntry{}, fmt.Errorf("fetch logo: %w", err)
	}
	raster, err := logo565.RenderSVG(svg, renderSize, renderSize)
	if err != nil {
		return logo565.ManifestEntry{}, err
	}
	img, err := pal.Process(raster, opts)
	if err != nil {
		return logo565.ManifestEntry{}, err
	}

	rgbName := team + ".rgb565"
	pngName := team + ".png"
	f, err := os.Create(filepath.Join(out, rgbName))
	if err != nil {
		return logo565.ManifestEntry{}, err
	}
	if err := logo565.WriteRGB565(f, img); err != nil {
		f.Close()
		return logo565.ManifestEntry{}, err
	}
	if err := f.Close(); err != nil {
		return logo565.ManifestEntry{}, err
	}

	pf, err := os.Create(filepath.Join(out, pngName))
	if err != nil {
		return logo565.ManifestEntry{}, err
	}
	if err := png.Encode(pf, img); err != nil {
		pf.Close()
		return logo565.ManifestEntry{}, err
	}
	if err := pf.Close(); err != nil {
		return logo565.ManifestEntry{}, err
	}

	return logo565.ManifestEntry{
		Team:       team,
		Kind:       kind,
		LogoURL:    logoURL,
		RGB565:     rgbName,
		PreviewPNG: pngName,
		Width:      img.Bounds().Dx(),
		Height:     img.Bounds().Dy(),
	}, nil
}

// normalizeLogoURL strips query and fragment from a logo URL.
func normalizeLogoURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// darkLogoURL swaps the light SVG variant for the dark one, which reads
// better on an unlit panel background.
func darkLogoURL(raw string) string {
	return strings.Replace(normalizeLogoURL(raw), "_light.svg", "_dark.svg", 1)
}

func parseMode(s string) (logo565.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perceptual":
		return logo565.ModePerceptual, nil
	case "legacy":
		return logo565.ModeLegacy, nil
	}
	return 0, fmt.Errorf("unsupported mode %q", s)
}

func splitTeams(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}

func fetchJSON(client *http.Client, url string, v any) error {
	data, err := fetchBytes(client, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func fetchBytes(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
