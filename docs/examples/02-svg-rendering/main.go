package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cartolab/mosaic/pkg/mosaic"
)

// pathSink accumulates stream events as SVG path data.
type pathSink struct {
	b       strings.Builder
	started bool
}

func (p *pathSink) Point(x, y float64) {
	cmd := "L"
	if !p.started {
		cmd = "M"
		p.started = true
	}
	fmt.Fprintf(&p.b, "%s%.1f,%.1f", cmd, x, y)
}

func (p *pathSink) LineStart()    { p.started = false }
func (p *pathSink) LineEnd()      {}
func (p *pathSink) PolygonStart() {}
func (p *pathSink) PolygonEnd()   { p.b.WriteString("Z") }
func (p *pathSink) Sphere()       {}

func main() {
	data, err := os.ReadFile("france.json")
	if err != nil {
		log.Fatal(err)
	}

	composite, err := mosaic.NewLoader(nil).LoadFromJSON(data, mosaic.LoadOptions{
		Width:  960,
		Height: 500,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Render a graticule through the composite. Each territory clips its
	// own inset, so one geometry pass draws all of them.
	graticule := &pathSink{}
	mosaic.StreamGeometry(
		mosaic.DefaultGraticule().MultiLineString(),
		composite.Stream(graticule),
	)

	// Draw the inset frames on top.
	borders := &pathSink{}
	composite.StreamCompositionBorders(borders)

	w, h := composite.CanvasSize()
	fmt.Printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f">`+"\n", w, h)
	fmt.Printf(`  <path d="%s" fill="none" stroke="#ccc"/>`+"\n", graticule.b.String())
	fmt.Printf(`  <path d="%s" fill="none" stroke="#000"/>`+"\n", borders.b.String())
	fmt.Println(`</svg>`)
}
