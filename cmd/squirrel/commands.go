package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
	"gonum.org/v1/gonum/stat"

	"squirrel-noise/internal/config"
	"squirrel-noise/internal/distrib"
	"squirrel-noise/internal/preview"
	"squirrel-noise/internal/profiling"
	"squirrel-noise/internal/state"
	"squirrel-noise/pkg/squirrel"
)

func mixCommand(conf config.Configuration) cli.Command {
	return cli.Command{
		Name:      "mix",
		Usage:     "hash a 1D to 4D integer coordinate",
		ArgsUsage: "X [Y [Z [W]]]",
		Flags:     []cli.Flag{seedFlag(conf)},
		Action: func(c *cli.Context) error {
			seed, err := seedArg(c)
			if err != nil {
				return err
			}
			if c.NArg() < 1 || c.NArg() > 4 {
				return errors.Errorf("expected 1 to 4 coordinates, got %d", c.NArg())
			}
			coords := make([]int32, c.NArg())
			for i, a := range c.Args() {
				if coords[i], err = parseCoord(a); err != nil {
					return err
				}
			}
			h := mixN(coords, seed)
			fmt.Fprintf(c.App.Writer, "%s uint=%d int=%d fraction=%.9f\n",
				fcyan(fmt.Sprint(coords)), h, int32(h), squirrel.ToRange[float64](h, 0, 1<<32-1))
			return nil
		},
	}
}

func mixN(c []int32, seed uint32) uint32 {
	switch len(c) {
	case 1:
		return squirrel.Mix1D(c[0], seed)
	case 2:
		return squirrel.Mix2D(c[0], c[1], seed)
	case 3:
		return squirrel.Mix3D(c[0], c[1], c[2], seed)
	default:
		return squirrel.Mix4D(c[0], c[1], c[2], c[3], seed)
	}
}

func streamCommand(conf config.Configuration) cli.Command {
	return cli.Command{
		Name:  "stream",
		Usage: "draw values from a seeded stream",
		Flags: []cli.Flag{
			seedFlag(conf),
			cli.IntFlag{Name: "count, n", Value: 10, Usage: "number of draws"},
			cli.StringFlag{Name: "as", Value: "uint", Usage: "uint, int, float, range or chance"},
			cli.IntFlag{Name: "lo", Usage: "range lower bound (inclusive)"},
			cli.IntFlag{Name: "hi", Value: 99, Usage: "range upper bound (inclusive)"},
			cli.Float64Flag{Name: "p", Value: 0.5, Usage: "probability for chance draws"},
			cli.IntFlag{Name: "child", Usage: "draw from the derived child stream with this index"},
			cli.StringFlag{Name: "state", Value: conf.StateFile, Usage: "YAML file to resume from and save to"},
		},
		Action: func(c *cli.Context) error {
			seed, err := seedArg(c)
			if err != nil {
				return err
			}
			if c.IsSet("child") {
				child, err := int32Arg(c, "child")
				if err != nil {
					return err
				}
				seed = squirrel.Derive(seed, child)
			}
			s := squirrel.New(seed)

			path := c.String("state")
			if path != "" {
				st, err := state.Load(path)
				switch {
				case err == nil:
					s = st.Stream()
				case !errors.Is(err, os.ErrNotExist):
					return err
				}
			}

			draw, err := drawFunc(c, &s)
			if err != nil {
				return err
			}
			stop := profiling.Track("stream.Draw")
			for range c.Int("count") {
				pos := s.Position()
				fmt.Fprintf(c.App.Writer, "%d\t%s\n", pos, draw())
			}
			stop()

			if path != "" {
				return state.Save(path, state.Capture(&s))
			}
			return nil
		},
	}
}

// drawFunc binds the draw selected by --as to s.
func drawFunc(c *cli.Context, s *squirrel.Stream) (func() string, error) {
	switch kind := strings.ToLower(c.String("as")); kind {
	case "uint":
		return func() string { return fmt.Sprint(s.NextUint()) }, nil
	case "int":
		return func() string { return fmt.Sprint(s.NextInt()) }, nil
	case "float":
		return func() string { return fmt.Sprintf("%.9f", s.NextFloat64()) }, nil
	case "range":
		lo, err := int32Arg(c, "lo")
		if err != nil {
			return nil, err
		}
		hi, err := int32Arg(c, "hi")
		if err != nil {
			return nil, err
		}
		return func() string { return fmt.Sprint(s.NextIntRange(lo, hi)) }, nil
	case "chance":
		p := c.Float64("p")
		if !(p >= 0 && p <= 1) {
			return nil, errors.Errorf("invalid probability %v: must be in [0, 1]", p)
		}
		flip := distrib.NewCoinFlip(p, s)
		return func() string { return fmt.Sprint(flip.Next()) }, nil
	default:
		return nil, errors.Errorf("unknown draw kind %q", kind)
	}
}

func fieldCommand(conf config.Configuration) cli.Command {
	return cli.Command{
		Name:  "field",
		Usage: "print a grid of fractal value noise",
		Flags: fieldFlags(conf),
		Action: func(c *cli.Context) error {
			s, err := samplerArg(c)
			if err != nil {
				return err
			}
			w, h, err := sizeArg(c)
			if err != nil {
				return err
			}
			x0, y0, err := originArg(c)
			if err != nil {
				return err
			}
			var grid []float64
			stop := profiling.Track("field.Grid")
			if c.IsSet("z") {
				grid = s.Slice(x0, y0, c.Int("z"), w, h)
			} else {
				grid = s.Grid(x0, y0, w, h)
			}
			stop()
			for row := range h {
				cells := make([]string, w)
				for col := range w {
					cells[col] = fmt.Sprintf("%.3f", grid[row*w+col])
				}
				fmt.Fprintln(c.App.Writer, strings.Join(cells, " "))
			}
			return nil
		},
	}
}

func previewCommand(conf config.Configuration) cli.Command {
	flags := append(fieldFlags(conf),
		cli.StringFlag{Name: "out, o", Value: "noise." + conf.Format, Usage: "output image (.bmp, .tif, .tiff)"},
		cli.BoolFlag{Name: "raw", Usage: "render the raw 2D hash instead of fractal noise"},
	)
	return cli.Command{
		Name:  "preview",
		Usage: "render noise into an image file",
		Flags: flags,
		Action: func(c *cli.Context) error {
			s, err := samplerArg(c)
			if err != nil {
				return err
			}
			w, h, err := sizeArg(c)
			if err != nil {
				return err
			}
			x0, y0, err := originArg(c)
			if err != nil {
				return err
			}
			out := c.String("out")
			format, err := preview.FormatFromPath(out, conf.Format)
			if err != nil {
				return err
			}

			sample := func(x, y int) float64 { return s.At(x0+x, y0+y) }
			switch {
			case c.Bool("raw"):
				sample = func(x, y int) float64 {
					return squirrel.Fraction2D[float64](int32(x0+x), int32(y0+y), s.Seed)
				}
			case c.IsSet("z"):
				z := c.Int("z")
				sample = func(x, y int) float64 { return s.At3(x0+x, y0+y, z) }
			}

			stop := profiling.Track("preview.Render")
			img := preview.Render(w, h, sample)
			stop()

			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "create preview")
			}
			// drop a partial file if interrupted mid-write
			done := false
			closer.Bind(func() {
				if !done {
					f.Close()
					os.Remove(out)
				}
			})

			stop = profiling.Track("preview.Encode")
			err = preview.Encode(f, img, format)
			stop()
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			done = true
			if err != nil {
				os.Remove(out)
				return err
			}
			fmt.Fprintf(c.App.Writer, "wrote %dx%d preview to %s\n", w, h, out)
			return nil
		},
	}
}

func distCommand(conf config.Configuration) cli.Command {
	return cli.Command{
		Name:      "dist",
		Usage:     "sample a distribution driven by a seeded stream",
		ArgsUsage: `"normal(0, 1)" | "uniform(a, b)" | "exponential(rate)" | "laplace(mu, scale)" | "bernoulli(p)"`,
		Flags: []cli.Flag{
			seedFlag(conf),
			cli.IntFlag{Name: "count, n", Value: 1000, Usage: "number of samples"},
			cli.BoolFlag{Name: "values", Usage: "print every sample"},
		},
		Action: func(c *cli.Context) error {
			seed, err := seedArg(c)
			if err != nil {
				return err
			}
			n := c.Int("count")
			if n <= 0 {
				return errors.Errorf("invalid count %d", n)
			}
			s := squirrel.New(seed)
			d, err := distrib.Parse(strings.Join(c.Args(), " "), &s)
			if err != nil {
				return err
			}
			stop := profiling.Track("dist.Sample")
			xs := make([]float64, n)
			for i := range xs {
				xs[i] = d.Rand()
			}
			stop()
			if c.Bool("values") {
				for _, x := range xs {
					fmt.Fprintln(c.App.Writer, x)
				}
			}
			mean, std := stat.MeanStdDev(xs, nil)
			fmt.Fprintf(c.App.Writer, "%s n=%d mean=%.6f stddev=%.6f\n", fcyan("summary"), n, mean, std)
			return nil
		},
	}
}
