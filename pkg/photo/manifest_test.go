package photo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDemoPhotos(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	photos := DemoPhotos(now)

	if len(photos) != 20 {
		t.Fatalf("expected 20 demo photos, got %d", len(photos))
	}

	first := photos[0]
	want := Photo{
		ID:           "demo-2025-1",
		URL:          "https://picsum.photos/seed/2025_1/600/600",
		ThumbnailURL: "https://picsum.photos/seed/2025_1/300/400",
		Year:         2025,
		Timestamp:    time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC).UnixMilli(),
		Description:  "Demo Memory 2025",
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("first demo photo mismatch (-want +got):\n%s", diff)
	}

	if photos[1].URL != "https://picsum.photos/seed/2025_2/600/800" {
		t.Errorf("even photos should be portrait, got %s", photos[1].URL)
	}
	if last := photos[19]; last.Year != DemoFirstYear || last.ID != "demo-2017-5" {
		t.Errorf("last demo photo = %+v", last)
	}
}

func TestGroupByYear(t *testing.T) {
	photos := []Photo{
		{ID: "a", Year: 2019},
		{ID: "b", Year: 2023},
		{ID: "c", Year: 2019},
		{ID: "d", Year: 2021},
		{ID: "e", Year: 2023},
	}

	got := GroupByYear(photos)
	want := []YearGroup{
		{Year: 2023, Photos: []Photo{{ID: "b", Year: 2023}, {ID: "e", Year: 2023}}},
		{Year: 2021, Photos: []Photo{{ID: "d", Year: 2021}}},
		{Year: 2019, Photos: []Photo{{ID: "a", Year: 2019}, {ID: "c", Year: 2019}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupByYear mismatch (-want +got):\n%s", diff)
	}

	if groups := GroupByYear(nil); len(groups) != 0 {
		t.Errorf("GroupByYear(nil) = %v, want empty", groups)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "photos.json")
	data := `[{"id":"p1","url":"/photos/2020/a.jpg","thumbnailUrl":"/photos/2020/a.jpg","year":2020,"timestamp":1580000000000}]`
	if err := os.WriteFile(valid, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		wantDemo bool
		wantLen  int
	}{
		{"valid manifest", valid, false, 1},
		{"missing file", filepath.Join(dir, "missing.json"), true, 20},
		{"broken json", broken, true, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos, demo := LoadManifest(tt.path)
			if demo != tt.wantDemo {
				t.Errorf("demo = %v, want %v", demo, tt.wantDemo)
			}
			if len(photos) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(photos), tt.wantLen)
			}
		})
	}

	photos, _ := LoadManifest(valid)
	if photos[0].Description != "" || photos[0].Year != 2020 {
		t.Errorf("unexpected parsed photo: %+v", photos[0])
	}
}
