package extrude_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/extrude"
	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
)

// ExampleEngine_Generate builds a worn rail and prints what was published.
func ExampleEngine_Generate() {
	eng := extrude.New()

	res, err := eng.Generate(context.Background(), "rail", domain.Context{
		"profile_scale":     1.0,
		"degradation_state": 10,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("slot: %s\n", res.Slot)
	fmt.Printf("size: %v\n", res.Solid.Size)
	fmt.Printf("wear: %v\n", res.Dimensions["wear"])
	fmt.Printf("blended edges: %d\n", len(res.Solid.Blends))
	// Output:
	// slot: result
	// size: [50 80 150]
	// wear: 15
	// blended edges: 8
}

// ExampleEngine_Generate_infeasible shows how geometry failures surface.
func ExampleEngine_Generate_infeasible() {
	eng := extrude.New()

	_, err := eng.Generate(context.Background(), "frame", domain.Context{"wall_thickness": 25})
	fmt.Println(errors.Is(err, geom.ErrInfeasible))
	// Output:
	// true
}
