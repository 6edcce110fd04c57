package material_test

import (
	"fmt"

	"github.com/katalvlaran/pinlat/material"
)

// ExampleCatalog_Define registers heavy-water moderator with its S(α,β) table.
func ExampleCatalog_Define() {
	c := material.NewCatalog()
	mod, err := c.Define("moderator",
		material.Density{Unit: material.AtomPerBarnCm, Value: 6.5491e-2},
		[]material.Nuclide{
			material.Atom("H2", 4.3661e-2),
			material.Atom("O16", 2.1830e-2),
		},
		600,
		material.WithScatteringLaw("c_D_in_D2O"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mod.ID(), mod.Name(), mod.Density().Unit, mod.FractionKind(), mod.ScatteringLaw())

	// Output:
	// 1 moderator atom/b-cm ao c_D_in_D2O
}
