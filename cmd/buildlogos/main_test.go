package main

import (
	"encoding/json"
	"reflect"
	"testing"

	logo565 "github.com/scorepanel/logo565-go"
)

func TestDarkLogoURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://assets.nhle.com/logos/nhl/svg/NJD_light.svg", "https://assets.nhle.com/logos/nhl/svg/NJD_dark.svg"},
		{"https://assets.nhle.com/logos/nhl/svg/NJD_dark.svg", "https://assets.nhle.com/logos/nhl/svg/NJD_dark.svg"},
		{"https://assets.nhle.com/logos/nhl/svg/NJD_light.svg?v=2#x", "https://assets.nhle.com/logos/nhl/svg/NJD_dark.svg"},
	}
	for _, tc := range tests {
		if got := darkLogoURL(tc.in); got != tc.want {
			t.Fatalf("darkLogoURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeLogoURL(t *testing.T) {
	got := normalizeLogoURL("https://example.com/a.svg?token=abc#frag")
	if got != "https://example.com/a.svg" {
		t.Fatalf("got %q", got)
	}
	// Unparseable input passes through untouched.
	if got := normalizeLogoURL("://bad"); got != "://bad" {
		t.Fatalf("got %q", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    logo565.Mode
		wantErr bool
	}{
		{"perceptual", logo565.ModePerceptual, false},
		{"Legacy", logo565.ModeLegacy, false},
		{" legacy ", logo565.ModeLegacy, false},
		{"adaptive", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := parseMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("parseMode(%q): err = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Fatalf("parseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitTeams(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"can", []string{"CAN"}},
		{"CAN,usa, fin ,", []string{"CAN", "USA", "FIN"}},
	}
	for _, tc := range tests {
		if got := splitTeams(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitTeams(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStandingsResponseDecode(t *testing.T) {
	raw := `{"standings":[
		{"teamAbbrev":{"default":"NJD"},"teamLogo":"https://assets.nhle.com/logos/nhl/svg/NJD_light.svg"},
		{"teamAbbrev":{"default":""},"teamLogo":""}
	]}`
	var resp standingsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Standings) != 2 {
		t.Fatalf("got %d entries", len(resp.Standings))
	}
	if resp.Standings[0].TeamAbbrev.Default != "NJD" {
		t.Fatalf("got %q", resp.Standings[0].TeamAbbrev.Default)
	}
}
