// Command spotcanvas renders a small synthetic star field and writes it to
// a PNG file.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/skyfield/spotcanvas"
)

func main() {
	var (
		width    = flag.Int("width", 512, "canvas width in pixels")
		height   = flag.Int("height", 512, "canvas height in pixels")
		spots    = flag.Int("spots", 200, "number of random spots to render")
		seed     = flag.Int64("seed", 1, "random seed")
		output   = flag.String("output", "starfield.png", "output PNG path")
		gamma    = flag.Bool("gamma", true, "apply sRGB gamma compression on export")
		tileRows = flag.Int("tile-rows", 0, "row-tile height for parallel accumulation (0 disables)")
	)
	flag.Parse()

	c := spotcanvas.New(*width, *height)
	c.SetParallelism(*tileRows)

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *spots; i++ {
		pos := spotcanvas.Point{
			float32(rng.Float64()) * float32(*width),
			float32(rng.Float64()) * float32(*height),
		}
		shape := spotcanvas.DefaultShape().Scale(0.6 + float32(rng.Float64())*1.5)
		intensity := float32(0.2 + rng.Float64()*0.8)
		c.AddSpot(pos, shape, intensity)
	}
	c.Draw()

	format := spotcanvas.PngLinear16Bpp
	if *gamma {
		format = spotcanvas.PngGamma8Bpp
	}
	data, err := c.ExportImage(format)
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	log.Printf("wrote %s (%dx%d, %d spots)", *output, *width, *height, *spots)
}
