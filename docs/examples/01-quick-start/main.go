package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cartolab/mosaic/pkg/mosaic"
)

func main() {
	// Load atlas config
	data, err := os.ReadFile("france.json")
	if err != nil {
		log.Fatal(err)
	}

	loader := mosaic.NewLoader(nil)
	composite, err := loader.LoadFromJSON(data, mosaic.DefaultLoadOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Print atlas info
	fmt.Printf("Pattern: %s\n", composite.Pattern())
	fmt.Printf("Reference scale: %.0f\n", composite.ReferenceScale())
	fmt.Printf("Territories: %d\n", len(composite.SubProjections()))

	for _, sub := range composite.SubProjections() {
		fmt.Printf("  %s (%s, %s) scale=%.0f\n",
			sub.Code, sub.ProjectionID, sub.Role, sub.Projection.Scale())
	}

	// Project a few points and see which territory claims them
	for _, coord := range [][2]float64{
		{2.35, 48.86},   // Paris
		{-61.46, 16.14}, // Guadeloupe
		{55.53, -21.13}, // La Réunion
	} {
		xy, ok := composite.Project(coord)
		if !ok {
			fmt.Printf("[%.2f,%.2f] -> outside every territory\n", coord[0], coord[1])
			continue
		}
		code, _ := composite.TerritoryFor(coord)
		fmt.Printf("[%.2f,%.2f] -> [%.1f,%.1f] (%s)\n",
			coord[0], coord[1], xy[0], xy[1], code)
	}

	// Round trip back to geographic coordinates
	coord, ok := composite.Invert([2]float64{480, 250})
	if ok {
		fmt.Printf("[480,250] -> [%.4f,%.4f]\n", coord[0], coord[1])
	}
}
