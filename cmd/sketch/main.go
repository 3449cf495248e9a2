package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"

	"github.com/colormotor/canvas"
	"github.com/colormotor/canvas/renderers"
	"github.com/colormotor/canvas/renderers/svg"
	"github.com/colormotor/canvas/sketch"
	"github.com/tdewolff/argp"
)

type Main struct {
}

type RunCmd struct {
	Frames      int     `short:"n" default:"60" desc:"Number of frames, zero runs until interrupted"`
	FrameRate   float64 `short:"f" default:"-1" desc:"Frames per second, overrides the sketch"`
	Output      string  `short:"o" desc:"Output file for the last frame, format by extension"`
	Resolution  float64 `short:"r" default:"1" desc:"Pixels per canvas unit for raster output"`
	Input       string  `short:"i" desc:"Video input: GIF file, image file or glob of image files"`
	Seed        int64   `default:"0" desc:"Noise seed"`
	Interactive bool    `desc:"Read key presses from stdin, one per line"`
	Verbose     bool    `short:"v" desc:"Log to stderr"`
	Name        string  `index:"0" desc:"Sketch name"`
}

type ListCmd struct {
}

type RasterCmd struct {
	Resolution float64 `short:"r" default:"1" desc:"Pixels per canvas unit"`
	Output     string  `short:"o" desc:"Output file, format by extension"`
	Verbose    bool    `short:"v" desc:"Log to stderr"`
	Input      string  `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Immediate-mode sketches on a 2D canvas")
	root.AddCmd(&RunCmd{}, "run", "Run a sketch")
	root.AddCmd(&ListCmd{}, "list", "List sketches")
	root.AddCmd(&RasterCmd{}, "raster", "Redraw an SVG exported by a sketch")
	root.Parse()
	root.PrintHelp()
}

func setVerbose(verbose bool) {
	if verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *ListCmd) Run() error {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-8s %s\n", name, sketches[name].desc)
	}
	return nil
}

func (cmd *RunCmd) Run() error {
	if cmd.Name == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	entry, ok := sketches[cmd.Name]
	if !ok {
		return fmt.Errorf("unknown sketch %q, see list", cmd.Name)
	}
	s, err := entry.new(cmd)
	if err != nil {
		return err
	}
	if closer, ok := s.(io.Closer); ok {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := sketch.DefaultConfig
	cfg.Frames = cmd.Frames
	r := sketch.NewRunner(cfg)
	if 0.0 <= cmd.FrameRate {
		// after setup, so that it overrides the sketch
		r.OnFrame = func(sc *sketch.Context) error {
			if sc.FrameCount() == 0 {
				return sc.SetFrameRate(cmd.FrameRate)
			}
			return nil
		}
	}
	if cmd.Interactive {
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				for _, key := range scanner.Text() {
					r.PressKey(key)
					break
				}
			}
		}()
	}

	sc, err := r.Run(ctx, s)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	} else if sc == nil || cmd.Output == "" {
		return nil
	}
	return sc.Save(cmd.Output, renderers.Resolution(cmd.Resolution))
}

func (cmd *RasterCmd) Run() error {
	if cmd.Input == "" || cmd.Output == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := svg.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}
	c, err := doc.Canvas()
	if err != nil {
		return err
	}
	return renderers.Write(cmd.Output, c, renderers.Resolution(cmd.Resolution))
}
