package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/heat"
)

const sample = `{
  "rows": 3, "cols": 4,
  "frames": [
    {"datetime": "2017-03-01 08:00", "points": [{"r": 1, "c": 2, "w": 0.5}, {"r": 0, "c": 0, "w": 1}]},
    {"datetime": "2017-03-01 09:00", "points": []}
  ]
}`

func TestDecode(t *testing.T) {
	fs, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}

	if fs.Size() != heat.Sz(3, 4) {
		t.Errorf("Size() = %v, want 3x4", fs.Size())
	}
	if fs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fs.Len())
	}

	f, err := fs.Frame(0)
	if err != nil {
		t.Fatalf("Frame(0) = %v", err)
	}
	want := Frame{
		Datetime: "2017-03-01 08:00",
		Points:   []heat.Point{heat.Pt(1, 2, 0.5), heat.Pt(0, 0, 1)},
	}
	if diff := cmp.Diff(want, *f); diff != "" {
		t.Errorf("Frame(0) mismatch (-want +got):\n%s", diff)
	}

	f1, _ := fs.Frame(1)
	if len(f1.Points) != 0 {
		t.Errorf("Frame(1) points = %v, want empty", f1.Points)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"no frames", `{"rows": 2, "cols": 2, "frames": []}`, ErrNoFrames},
		{"missing frames", `{"rows": 2, "cols": 2}`, ErrNoFrames},
		{"negative rows", `{"rows": -1, "cols": 2, "frames": [{"points": []}]}`, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"rows": `)); err == nil {
		t.Error("Decode() of truncated JSON should fail")
	}
}

func TestFrameRange(t *testing.T) {
	fs, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 2, 10} {
		if _, err := fs.Frame(i); !errors.Is(err, ErrFrameRange) {
			t.Errorf("Frame(%d) = %v, want ErrFrameRange", i, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.json")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}

	fs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want os.ErrNotExist", err)
	}
}
