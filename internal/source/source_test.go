package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestListImagesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListImages(dir)
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	want := []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "b.PNG")}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("image %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestImageSourceSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slide.png")
	writePNG(t, path, 40, 30)

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 1 {
		t.Fatalf("expected 1 page, got %d", src.PageCount())
	}
	w, h, err := src.GetPageDimensions(0)
	if err != nil {
		t.Fatal(err)
	}
	if w != 40 || h != 30 {
		t.Errorf("expected 40x30, got %.0fx%.0f", w, h)
	}
	img, err := src.RenderPage(0, 300)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 40 {
		t.Errorf("dpi must not change raster size, got %v", img.Bounds())
	}
}

func TestImageSourceOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slide.png")
	writePNG(t, path, 4, 4)
	src, err := NewImageSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.RenderPage(1, 0); err == nil {
		t.Error("expected error for page 1 of a single image")
	}
	if _, _, err := src.GetPageDimensions(-1); err == nil {
		t.Error("expected error for a negative page")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for a missing file")
	}
}
