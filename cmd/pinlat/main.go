// Command pinlat builds fuel-assembly models for the OpenMC Monte Carlo code.
//
//	pinlat validate                  build the model and report problems
//	pinlat describe                  print the lattice map and pin counts
//	pinlat export --out DIR          write materials/geometry/settings/plots XML
//	pinlat run --out DIR [--plot]    export, then start the solver
//
// Without --config the embedded 17×17 reference assembly is used.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(&app{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
