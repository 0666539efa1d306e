// Command pathtrace renders a scene file to a PNG image.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/anthropics/pathtrace/pkg/camera"
	"github.com/anthropics/pathtrace/pkg/config"
	"github.com/anthropics/pathtrace/pkg/integrator"
	"github.com/anthropics/pathtrace/pkg/render"
	"github.com/anthropics/pathtrace/pkg/rlog"
)

var logger = rlog.New("pathtrace")

func main() {
	app := &cli.App{
		Name:  "pathtrace",
		Usage: "render a scene file to a PNG image",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scene", Aliases: []string{"s"}, Required: true, Usage: "path to a YAML scene file"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "render.png", Usage: "output PNG path"},
			&cli.IntFlag{Name: "spp", Usage: "override scene file samples per pixel"},
			&cli.IntFlag{Name: "max-depth", Usage: "override scene file max bounce depth"},
			&cli.IntFlag{Name: "workers", Usage: "override scene file worker count (0 = NumCPU)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable info-level logging"},
			&cli.BoolFlag{Name: "stats-table", Usage: "print a render-stats table after rendering"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%s", err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		rlog.SetLevel(rlog.Info)
	}

	sf, err := config.LoadSceneFile(c.String("scene"))
	if err != nil {
		return err
	}
	scn, cam, rc, err := config.BuildScene(sf)
	if err != nil {
		return err
	}

	if c.IsSet("spp") {
		rc.SamplesPerPixel = c.Int("spp")
	}
	if c.IsSet("max-depth") {
		rc.MaxDepth = c.Int("max-depth")
	}
	if c.IsSet("workers") {
		rc.Workers = c.Int("workers")
	}
	if err := rc.Validate(); err != nil {
		return err
	}

	ig := integrator.New(scn, rc.MaxDepth, rc.BackgroundMode)

	logger.Noticef("rendering %dx%d, %d spp, %d max depth", cam.Width(), cam.Height(), rc.SamplesPerPixel, rc.MaxDepth)

	job := render.NewJob()
	pixels, stats, err := render.Capture(job, cam, ig, render.Options{
		SamplesPerPixel: rc.SamplesPerPixel,
		Workers:         rc.Workers,
		Seed:            rc.Seed,
	})
	if err != nil {
		return err
	}

	camera.Gamma(pixels, rc.Gamma)

	logger.Noticef("rendered in %s (%.0f rays/sec) using %d workers", stats.Elapsed, stats.RaysPerSecond(), stats.Workers)
	if c.Bool("stats-table") {
		printStatsTable(stats)
	}

	return writePNG(c.String("out"), pixels, cam.Width(), cam.Height())
}

func writePNG(path string, pixels []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			o := img.PixOffset(x, y)
			img.Pix[o] = pixels[i]
			img.Pix[o+1] = pixels[i+1]
			img.Pix[o+2] = pixels[i+2]
			img.Pix[o+3] = 255
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pathtrace: failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("pathtrace: failed to encode PNG: %w", err)
	}
	logger.Noticef("wrote %s", path)
	return nil
}

func printStatsTable(stats render.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Width", "Height", "Samples/px", "Workers", "Elapsed", "Rays/sec"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Width),
		fmt.Sprintf("%d", stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Workers),
		stats.Elapsed.String(),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
