package material

import "errors"

var (
	// ErrInvalidComposition indicates an inconsistent composition or density.
	ErrInvalidComposition = errors.New("material: invalid composition")

	// ErrDuplicateName indicates a substance name already defined in the catalog.
	ErrDuplicateName = errors.New("material: duplicate name")

	// ErrEmptyName indicates a blank substance or nuclide name.
	ErrEmptyName = errors.New("material: empty name")

	// ErrInvalidTemperature indicates a temperature that is not a positive number.
	ErrInvalidTemperature = errors.New("material: invalid temperature")

	// ErrFrozen indicates Define on a catalog already sealed by Freeze.
	ErrFrozen = errors.New("material: catalog is frozen")
)
