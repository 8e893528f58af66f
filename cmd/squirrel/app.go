package main

import (
	"io"
	"log"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"squirrel-noise/internal/config"
	"squirrel-noise/internal/field"
	"squirrel-noise/internal/profiling"
)

// color
var (
	fred, fcyan func(a ...any) string
)

func init() {
	fcyan = color.New(color.FgHiCyan).SprintFunc()
	fred = color.New(color.FgHiRed).SprintFunc()
}

// newApp wires all subcommands. Flag defaults come from conf.
func newApp(conf config.Configuration, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "squirrel"
	app.Usage = "deterministic integer noise, streams and fields"
	app.Version = config.Version
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "profile", Usage: "log phase timings on exit"},
		cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("no-color") {
			color.NoColor = true
		}
		profiling.Reset()
		return nil
	}
	app.After = func(c *cli.Context) error {
		if c.GlobalBool("profile") {
			log.Printf("timings: %s", profiling.TopN(8))
		}
		return nil
	}
	app.Commands = []cli.Command{
		mixCommand(conf),
		streamCommand(conf),
		fieldCommand(conf),
		previewCommand(conf),
		distCommand(conf),
		{
			Name:  "env",
			Usage: "list environment variables that set flag defaults",
			Action: func(c *cli.Context) error {
				return config.PrintUsage(c.App.Writer)
			},
		},
	}
	return app
}

func seedFlag(conf config.Configuration) cli.Flag {
	return cli.Uint64Flag{Name: "seed, s", Value: uint64(conf.Seed), Usage: "noise seed"}
}

// fieldFlags are shared by the field and preview commands.
func fieldFlags(conf config.Configuration) []cli.Flag {
	return []cli.Flag{
		seedFlag(conf),
		cli.IntFlag{Name: "x", Usage: "grid origin x"},
		cli.IntFlag{Name: "y", Usage: "grid origin y"},
		cli.IntFlag{Name: "z", Usage: "sample the 3D field at this depth"},
		cli.IntFlag{Name: "width, W", Value: 16, Usage: "grid width"},
		cli.IntFlag{Name: "height, H", Value: 8, Usage: "grid height"},
		cli.IntFlag{Name: "octaves", Value: conf.Octaves, Usage: "fractal octaves (1..16)"},
		cli.Float64Flag{Name: "persistence", Value: conf.Persistence, Usage: "amplitude multiplier per octave"},
		cli.Float64Flag{Name: "lacunarity", Value: conf.Lacunarity, Usage: "frequency multiplier per octave"},
		cli.Float64Flag{Name: "scale", Value: conf.Scale, Usage: "grid to noise scale"},
	}
}

// seedArg reads the seed flag, rejecting values that do not fit 32 bits.
func seedArg(c *cli.Context) (uint32, error) {
	v := c.Uint64("seed")
	if v > 1<<32-1 {
		return 0, errors.Errorf("seed %d does not fit in 32 bits", v)
	}
	return uint32(v), nil
}

func samplerArg(c *cli.Context) (*field.Sampler, error) {
	seed, err := seedArg(c)
	if err != nil {
		return nil, err
	}
	persistence := c.Float64("persistence")
	if err := config.CheckPersistence(persistence); err != nil {
		return nil, err
	}
	s := field.NewSampler(seed)
	s.Scale = c.Float64("scale")
	s.Octaves = field.Octaves{
		Count:       config.ClampOctaves(c.Int("octaves")),
		Persistence: persistence,
		Lacunarity:  c.Float64("lacunarity"),
	}
	return s, nil
}

func sizeArg(c *cli.Context) (w, h int, err error) {
	w, h = c.Int("width"), c.Int("height")
	if w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf("invalid size %dx%d", w, h)
	}
	return w, h, nil
}

// int32Arg reads an int flag, rejecting values outside the int32 range.
func int32Arg(c *cli.Context, name string) (int32, error) {
	v := c.Int(name)
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errors.Errorf("--%s %d does not fit in 32 bits", name, v)
	}
	return int32(v), nil
}

// originArg reads the grid origin; raw previews hash it as int32.
func originArg(c *cli.Context) (x, y int, err error) {
	x32, err := int32Arg(c, "x")
	if err != nil {
		return 0, 0, err
	}
	y32, err := int32Arg(c, "y")
	if err != nil {
		return 0, 0, err
	}
	return int(x32), int(y32), nil
}

func parseCoord(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	return int32(v), nil
}
