// Package dataset decodes the JSON frame sets consumed by cmd/heatgrid.
//
// A frame set describes one grid and a sequence of timestamped point lists:
//
//	{
//	  "rows": 60, "cols": 80,
//	  "frames": [
//	    {"datetime": "2017-03-01 08:00", "points": [{"r": 12, "c": 40, "w": 0.8}]}
//	  ]
//	}
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/heat"
)

var (
	// ErrNoFrames is returned when a frame set contains no frames.
	ErrNoFrames = errors.New("dataset: no frames")

	// ErrFrameRange is returned for a frame index outside the frame set.
	ErrFrameRange = errors.New("dataset: frame index out of range")

	// ErrInvalidSize is returned when rows or cols is negative.
	ErrInvalidSize = errors.New("dataset: invalid grid size")
)

// Frame is one timestamped set of points.
type Frame struct {
	Datetime string       `json:"datetime"`
	Points   []heat.Point `json:"points"`
}

// FrameSet is a grid extent plus its frames.
type FrameSet struct {
	Rows   int     `json:"rows"`
	Cols   int     `json:"cols"`
	Frames []Frame `json:"frames"`
}

// Size returns the grid extent of the frame set.
func (fs *FrameSet) Size() heat.Size {
	return heat.Sz(fs.Rows, fs.Cols)
}

// Len returns the number of frames.
func (fs *FrameSet) Len() int {
	return len(fs.Frames)
}

// Frame returns frame i.
func (fs *FrameSet) Frame(i int) (*Frame, error) {
	if i < 0 || i >= len(fs.Frames) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameRange, i, len(fs.Frames))
	}
	return &fs.Frames[i], nil
}

// Validate checks the grid extent and that at least one frame exists.
func (fs *FrameSet) Validate() error {
	if fs.Rows < 0 || fs.Cols < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, fs.Rows, fs.Cols)
	}
	if len(fs.Frames) == 0 {
		return ErrNoFrames
	}
	return nil
}

// Decode reads and validates a frame set from r.
func Decode(r io.Reader) (*FrameSet, error) {
	var fs FrameSet
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if err := fs.Validate(); err != nil {
		return nil, err
	}
	return &fs, nil
}

// Load reads a frame set from the file at path.
func Load(path string) (*FrameSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	fs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fs, nil
}
