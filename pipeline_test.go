package chunky

import "testing"

func TestNewArtSurfaceDimensions(t *testing.T) {
	art, err := NewArtSurface(20)
	if err != nil {
		t.Fatal(err)
	}
	if art.Rect().W != 320 || art.Rect().H != 180 {
		t.Errorf("rect = %+v, want 320x180", art.Rect())
	}
	if art.Scale() != 20 {
		t.Errorf("Scale = %d, want 20", art.Scale())
	}
}

func TestNewArtSurfaceRejectsBadScale(t *testing.T) {
	if _, err := NewArtSurface(0); err == nil {
		t.Error("scale 0 should error")
	}
	if _, err := NewArtSurface(-3); err == nil {
		t.Error("negative scale should error")
	}
}

func TestNewPipelineDefaults(t *testing.T) {
	p, err := NewPipeline(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Art().Rect().W != 16*DefaultArtScale || p.Art().Rect().H != 9*DefaultArtScale {
		t.Errorf("art rect = %+v, want %dx%d", p.Art().Rect(), 16*DefaultArtScale, 9*DefaultArtScale)
	}
	if p.TickMultiplier() != 1 {
		t.Errorf("TickMultiplier = %d, want 1", p.TickMultiplier())
	}
	if p.Mode().Name() != "gencurve" {
		t.Errorf("default mode = %q, want gencurve", p.Mode().Name())
	}
	if p.Palette().Background() != colorDarkGravel {
		t.Errorf("default background = %v, want dark gravel", p.Palette().Background())
	}
}

func TestNewPipelineUnknownMode(t *testing.T) {
	if _, err := NewPipeline(Config{ModeName: "nope"}); err == nil {
		t.Error("unknown mode name should error")
	}
}

func TestNewPipelineExplicitMode(t *testing.T) {
	art := Rect{W: 320, H: 180}
	blob := NewBlob(art)
	p, err := NewPipeline(Config{ArtScale: 20, Mode: blob, ModeName: "ignored"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Mode() != Mode(blob) {
		t.Error("explicit Mode should override ModeName")
	}
}

func TestPipelineLayoutPassesThrough(t *testing.T) {
	p, err := NewPipeline(Config{ArtScale: 20})
	if err != nil {
		t.Fatal(err)
	}
	w, h := p.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Layout = (%d, %d), want (1024, 768)", w, h)
	}
}
