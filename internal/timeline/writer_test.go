package timeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTimelineWriteRead(t *testing.T) {
	tl := &Timeline{
		Version: Version,
		Title:   "demo",
		Slides: []Slide{
			{
				ID:       1,
				Scene:    "Intro",
				Duration: 2.0,
				Steps: []Step{
					{Time: 0.0, Action: "play", Duration: 1.0, Animations: []string{"fade_in"}},
					{Time: 1.0, Action: "wait", Duration: 1.0},
				},
				Objects: []Object{
					{ID: "t1", Kind: "text", Label: "Title", Rect: Rectangle{X: 10, Y: 20, W: 300, H: 48}},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "out", "timeline.yaml")
	if err := WriteTimeline(tl, path); err != nil {
		t.Fatalf("WriteTimeline failed: %v", err)
	}

	read, err := ReadTimeline(path)
	if err != nil {
		t.Fatalf("ReadTimeline failed: %v", err)
	}

	if read.Title != tl.Title {
		t.Errorf("Title mismatch: expected %s, got %s", tl.Title, read.Title)
	}
	if len(read.Slides) != 1 || len(read.Slides[0].Steps) != 2 {
		t.Fatalf("Unexpected slides: %+v", read.Slides)
	}
	if read.Slides[0].Objects[0].Rect.W != 300 {
		t.Errorf("Rect mismatch: %+v", read.Slides[0].Objects[0].Rect)
	}
}

func TestReadTimelineRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.yaml")
	os.WriteFile(path, []byte("version: \"0.1\"\nslides: []\n"), 0644)

	if _, err := ReadTimeline(path); err == nil {
		t.Error("Expected error for unknown version")
	}
}

func TestFindLatestTimeline(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		filepath.Join(dir, "timeline_2026-02-12_10-00-00.yaml"),
		filepath.Join(dir, "timeline_2026-02-13_01-00-00.yaml"),
		filepath.Join(dir, "timeline_2026-02-11_15-30-00.yaml"),
	}

	for i, f := range files {
		os.WriteFile(f, []byte("test"), 0644)
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		os.Chtimes(f, modTime, modTime)
	}
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0644)

	latest, err := FindLatestTimeline(dir)
	if err != nil {
		t.Fatalf("FindLatestTimeline failed: %v", err)
	}
	if latest != files[len(files)-1] {
		t.Errorf("Expected latest to be %s, got %s", files[len(files)-1], latest)
	}

	if _, err := FindLatestTimeline(t.TempDir()); err == nil {
		t.Error("Expected error for empty directory")
	}
}

func TestGenerateTimelinePath(t *testing.T) {
	path := GenerateTimelinePath("output")
	if filepath.Dir(path) != "output" {
		t.Errorf("Path should be in output/: %s", path)
	}
	if base := filepath.Base(path); len(base) < len("timeline_.yaml") || base[:9] != "timeline_" {
		t.Errorf("Unexpected file name: %s", base)
	}
}
