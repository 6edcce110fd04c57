// Package material defines named substances and the ordered catalog that
// holds them for one build.
//
// What:
//
//   - Substance: name, density, nuclide composition, temperature (K) and an
//     optional thermal scattering law (S(α,β) table name).
//   - Catalog: an explicit, insertion-ordered collection with unique names.
//     Insertion order defines the 1-based material IDs used by export.
//
// The package stores nuclide references by name and fraction only; nuclear
// data lives in the solver's cross-section library.
//
// Invariants:
//
//   - All fractions of one substance share one FractionKind.
//   - Density magnitude is finite and > 0, in one DensityUnit.
//   - A substance is immutable once defined.
//
// Errors:
//
//   - ErrInvalidComposition: mixed fraction kinds, empty composition, bad
//     fraction, non-positive density or unknown unit.
//   - ErrDuplicateName:      the name is already present in the catalog.
//   - ErrEmptyName:          blank substance or nuclide name.
//   - ErrInvalidTemperature: temperature not finite or ≤ 0.
package material
