// Package pinlat builds parametric fuel-assembly models for the OpenMC Monte
// Carlo neutron transport code.
//
// A model is built in one linear pass, each step owned by a subpackage:
//
//	material/  — named substances: density, nuclide fractions, temperature, S(α,β)
//	pin/       — concentric radial region stacks compiled into universes
//	lattice/   — N×N grids filled by a base pin plus ordered placement rules
//	boundary/  — radial prism and axial planes with boundary conditions
//	model/     — catalog + geometry + run settings + plot requests, validated
//
// Supporting packages:
//
//	csg/       — surfaces, half-spaces, cells, universes and the ID arena
//	config/    — YAML assembly descriptions and PINLAT_* environment overrides
//	assembly/  — config.File → model.Model orchestration
//	xmlexport/ — materials.xml, geometry.xml, settings.xml, plots.xml
//	solver/    — runs the solver on an exported directory
//
// The pinlat command (cmd/pinlat) wires them together:
//
//	pinlat describe
//	pinlat export --out build/
//	pinlat run --out build/ --threads 8
//
// Quick ASCII view of the reference 17×17 lattice centre row:
//
//	F F C F F C F F G F F C F F C F F
//
// Every build is deterministic: IDs are assigned in construction order and the
// exported documents are byte-stable.
package pinlat
