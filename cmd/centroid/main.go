// Command centroid computes weighted geographic centers of mass from the
// command line.
//
//	centroid demo [--all]
//	centroid compute [--precision N] LAT,LONG[,ALT[,WEIGHT]] ...
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"geocentroid/internal/config"
	"geocentroid/internal/geo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app := &cli.App{
		Name:  "centroid",
		Usage: "weighted center of mass of geographic points on a spherical Earth",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "precision",
				Usage: "fixed decimals in output (negative for shortest exact form)",
				Value: cfg.Render.Precision,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "aggregate the built-in named places",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "all", Usage: "include every named place, not just the default subset"},
				},
				Action: runDemo,
			},
			{
				Name:      "compute",
				Usage:     "aggregate the points given as arguments",
				ArgsUsage: "LAT,LONG[,ALT[,WEIGHT]] ...",
				Action:    runCompute,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type place struct {
	name           string
	lat, long, alt float64
	inDefault      bool
}

// places are the built-in named points. The default subset leaves out the
// neighbouring English towns so the demo spans several continents.
var places = []place{
	{"turkdean", 51.895846, -2.114565, 0, true},
	{"rosewood", 51.898005, -2.104593, 0, false},
	{"witney", 51.779955, -1.490665, 0, false},
	{"bristol", 51.453309, -2.588483, 0, false},
	{"paris", 48.85989398981465, 2.2352585254318944, 0, true},
	{"baltimore", 39.28836948143914, -76.62152303086647, 0, true},
	{"bangalore", 12.973712960117666, 77.58698644923022, 0, true},
	{"hongkong", 22.311170317382366, 113.68675044868934, 0, true},
}

func runDemo(c *cli.Context) error {
	acc := geo.NewAccumulator()
	for _, pl := range places {
		if !pl.inDefault && !c.Bool("all") {
			continue
		}
		p, err := geo.NewPoint(pl.lat, pl.long, pl.alt)
		if err != nil {
			return fmt.Errorf("%s: %w", pl.name, err)
		}
		acc.Add(p)
	}

	return printCenter(c, acc)
}

func runCompute(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one point is required", 2)
	}

	acc := geo.NewAccumulator()
	for _, arg := range c.Args().Slice() {
		p, err := parsePoint(arg)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		acc.Add(p)
	}

	return printCenter(c, acc)
}

func printCenter(c *cli.Context, acc *geo.Accumulator) error {
	center, err := acc.CenterOfMass()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintln(c.App.Writer, "COM:")
	if center == nil {
		fmt.Fprintln(c.App.Writer, "none")
		return nil
	}
	fmt.Fprintln(c.App.Writer, center.FormatFixed(c.Int("precision")))
	return nil
}

// parsePoint reads LAT,LONG[,ALT[,WEIGHT]]. Altitude defaults to 0 and weight to 1.
func parsePoint(s string) (geo.GeoPoint, error) {
	fields := strings.Split(s, ",")
	if len(fields) < 2 || len(fields) > 4 {
		return geo.GeoPoint{}, fmt.Errorf("point %q: want LAT,LONG[,ALT[,WEIGHT]]", s)
	}

	values := []float64{0, 0, 0, 1}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geo.GeoPoint{}, fmt.Errorf("point %q: %w", s, err)
		}
		values[i] = v
	}

	p, err := geo.NewGeoPoint(values[0], values[1], values[2], values[3])
	if err != nil {
		return geo.GeoPoint{}, fmt.Errorf("point %q: %w", s, err)
	}
	return p, nil
}
