package patchgl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRunConfigDefaults(t *testing.T) {
	got := RunConfig{}.WithDefaults()
	want := RunConfig{Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight, Background: "#ffffff"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	kept := RunConfig{Title: "x", Width: 10, Height: 20, Background: "#000000"}.WithDefaults()
	if kept.Title != "x" || kept.Width != 10 || kept.Height != 20 || kept.Background != "#000000" {
		t.Errorf("explicit fields overwritten: %+v", kept)
	}
}

func TestLoadRunConfig(t *testing.T) {
	data := []byte(`
title: Counter
width: 800
debug: true
show_fps: true
font_size: 14
background: "#fafafa"
test_script: scripts/smoke.yaml
`)
	got, err := LoadRunConfig(data)
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	want := RunConfig{
		Title:      "Counter",
		Width:      800,
		Height:     DefaultHeight,
		Debug:      true,
		ShowFPS:    true,
		FontSize:   14,
		Background: "#fafafa",
		TestScript: "scripts/smoke.yaml",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "title: [unclosed"},
		{"bad color", "background: red"},
		{"negative font size", "font_size: -2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadRunConfig([]byte(tt.data)); err == nil {
				t.Errorf("LoadRunConfig(%q) returned nil error", tt.data)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ffffff", want: Color{1, 1, 1, 1}},
		{in: "000000", want: Color{0, 0, 0, 1}},
		{in: "#ff000080", want: Color{1, 0, 0, 128.0 / 255}},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRunConfigBackgroundColor(t *testing.T) {
	c, err := RunConfig{}.BackgroundColor()
	if err != nil || c != ColorWhite {
		t.Errorf("empty background = %+v, %v; want white", c, err)
	}
}
