// Command heatgrid computes the kernel density grid for one frame of a frame
// set and writes it as raw float32, JSON or a PNG preview.
//
// Usage:
//
//	heatgrid -input frames.json -frame 3 -radius 2.5 -format png -output frame3.png
package main

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/heat"
	"github.com/gogpu/heat/internal/dataset"
	"github.com/gogpu/heat/internal/preview"
	"github.com/gogpu/heat/kernel"
)

var errUnknownFormat = errors.New("unknown output format")

type config struct {
	input   string
	output  string
	format  string
	frame   int
	radius  float64
	workers int
	from    string
	to      string
	scale   int
	stats   bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("heatgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.input, "input", "", "frame set JSON file (required)")
	fs.StringVar(&cfg.output, "output", "", "output file (default stdout)")
	fs.StringVar(&cfg.format, "format", "raw", "output format: raw, json or png")
	fs.IntVar(&cfg.frame, "frame", 0, "frame index")
	fs.Float64Var(&cfg.radius, "radius", 2, "blur radius in cells")
	fs.IntVar(&cfg.workers, "workers", 1, "accumulation goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.from, "from", "#0000ff", "png colour for low intensity")
	fs.StringVar(&cfg.to, "to", "#ff0000", "png colour for high intensity")
	fs.IntVar(&cfg.scale, "scale", 1, "png pixels per cell")
	fs.BoolVar(&cfg.stats, "stats", false, "print grid statistics to stderr")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.input == "" {
		return nil, errors.New("-input is required")
	}
	if err := kernel.Validate(cfg.radius); err != nil {
		return nil, err
	}
	switch cfg.format {
	case "raw", "json", "png":
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, cfg.format)
	}
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("heatgrid: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if cfg.verbose {
		heat.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer heat.SetLogger(nil)
	}

	set, err := dataset.Load(cfg.input)
	if err != nil {
		return err
	}
	frame, err := set.Frame(cfg.frame)
	if err != nil {
		return err
	}

	calc := heat.NewCalculator(heat.WithWorkers(cfg.workers))
	defer calc.Close()

	g := calc.CalculateGrid(frame.Points, set.Size(), cfg.radius)

	if cfg.stats {
		writeStats(stderr, frame.Datetime, g)
	}

	if cfg.output == "" {
		return write(stdout, cfg, frame, g)
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := write(f, cfg, frame, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func write(w io.Writer, cfg *config, frame *dataset.Frame, g *heat.Grid) error {
	switch cfg.format {
	case "raw":
		return binary.Write(w, binary.LittleEndian, g.Data())
	case "json":
		return writeJSON(w, cfg.radius, frame, g)
	case "png":
		opts, err := previewOptions(cfg)
		if err != nil {
			return err
		}
		return preview.Encode(w, g, opts)
	}
	return fmt.Errorf("%w: %q", errUnknownFormat, cfg.format)
}

type gridJSON struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	Datetime string    `json:"datetime,omitempty"`
	Radius   float64   `json:"radius"`
	Values   []float32 `json:"values"`
}

func writeJSON(w io.Writer, radius float64, frame *dataset.Frame, g *heat.Grid) error {
	enc := json.NewEncoder(w)
	return enc.Encode(gridJSON{
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Datetime: frame.Datetime,
		Radius:   radius,
		Values:   g.Data(),
	})
}

func previewOptions(cfg *config) (preview.Options, error) {
	from, err := preview.ParseHex(cfg.from)
	if err != nil {
		return preview.Options{}, err
	}
	to, err := preview.ParseHex(cfg.to)
	if err != nil {
		return preview.Options{}, err
	}
	return preview.Options{From: from, To: to, Scale: cfg.scale}, nil
}

func writeStats(w io.Writer, datetime string, g *heat.Grid) {
	if g.Len() == 0 {
		fmt.Fprintf(w, "frame %q: empty grid\n", datetime)
		return
	}

	values := make([]float64, g.Len())
	for i, v := range g.Data() {
		values[i] = float64(v)
	}
	mean, std := stat.MeanStdDev(values, nil)

	fmt.Fprintf(w, "frame %q: %dx%d sum=%.6g max=%.6g mean=%.6g std=%.6g\n",
		datetime, g.Rows(), g.Cols(), floats.Sum(values), floats.Max(values), mean, std)
}
