package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cartolab/mosaic/pkg/mosaic"
)

func main() {
	data, err := os.ReadFile("france.json")
	if err != nil {
		log.Fatal(err)
	}

	composite, err := mosaic.NewLoader(nil).LoadFromJSON(data, mosaic.DefaultLoadOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Layered parameter editing: global values apply to every territory,
	// territory overrides win over them.
	manager := mosaic.NewParameterManager(mosaic.Parameters{})
	manager.OnChange(func(ch mosaic.ParameterChange) {
		fmt.Printf("changed %s=%v (source=%s territory=%q)\n",
			ch.Key, ch.Value, ch.Source, ch.TerritoryCode)
	})

	if err := manager.SetGlobalParameter(mosaic.KeyScale, 3000.0); err != nil {
		log.Fatal(err)
	}
	if err := manager.SetTerritoryParameter("FR-GP", mosaic.KeyScale, 4200.0); err != nil {
		log.Fatal(err)
	}

	for _, code := range []string{"FR-MET", "FR-GP"} {
		info := manager.ParameterInheritance(code, mosaic.KeyScale)
		fmt.Printf("%s: scale=%v from %s (overridden=%v)\n",
			code, info.Value, info.Source, info.IsOverridden)
	}

	// Apply the global scale to the composite and write the result back
	// out as a config preset.
	effective := manager.EffectiveParameters("FR-MET")
	if effective.Scale != nil {
		composite.SetScale(*effective.Scale)
	}

	preset, err := composite.ExportJSON()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", preset)
}
