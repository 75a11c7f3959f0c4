package main

import (
	"flag"
	"image/color"
	"log"
	"slices"
	"strings"

	"github.com/skratchdot/open-golang/open"

	"github.com/roffe/fancontroller/pkg/colors"
	"github.com/roffe/fancontroller/pkg/fandial"
	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/labels"
	"github.com/roffe/fancontroller/pkg/render/raster"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	width      = flag.Int("width", 512, "image width")
	height     = flag.Int("height", 512, "image height")
	speedName  = flag.String("speed", "off", "fan speed: off, low, medium or high")
	output     = flag.String("o", "dial.png", "output file")
	locale     = flag.String("lang", "en", "label language: "+strings.Join(labels.Locales(), ", "))
	mode       = flag.String("mode", colors.Normal, "colour blind mode")
	background = flag.String("bg", "#171718", "background colour")
	textSize   = flag.Float64("textsize", raster.DefaultTextSize/2.0, "label size in points")
	openFile   = flag.Bool("open", false, "open the image when done")
)

func main() {
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid size %dx%d, width and height must be positive", *width, *height)
	}
	if !slices.Contains(labels.Locales(), *locale) {
		log.Fatalf("unknown language %q, have %s", *locale, strings.Join(labels.Locales(), ", "))
	}

	speed, err := fanspeed.Parse(*speedName)
	if err != nil {
		log.Fatal(err)
	}
	lbl, err := labels.Load(*locale)
	if err != nil {
		log.Fatal(err)
	}
	bg, err := colors.ParseHex(*background)
	if err != nil {
		log.Fatal(err)
	}

	low, mid, high := colors.Palette(colors.StringToColorBlindMode(*mode))
	d := fandial.New(&fandial.Config{
		Style:   fandial.NewStyle(low, mid, high),
		Labels:  lbl,
		Initial: speed,
	})
	d.OnResize(float32(*width), float32(*height))

	if err := raster.WritePNG(*output, d.Frame(), *width, *height, color.Color(bg), *textSize); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d, %s)", *output, *width, *height, speed)

	if *openFile {
		if err := open.Run(*output); err != nil {
			log.Fatal(err)
		}
	}
}
