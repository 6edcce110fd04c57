package config

// File is an assembly description as written in YAML.
type File struct {
	Name      string     `yaml:"name"`
	Materials []Material `yaml:"materials"`
	Pins      []Pin      `yaml:"pins"`
	Lattice   Lattice    `yaml:"lattice"`
	Bounds    Bounds     `yaml:"bounds"`
	Settings  Settings   `yaml:"settings"`
	Plots     []Plot     `yaml:"plots"`

	// Source names where the description came from (a path or "reference").
	Source string `yaml:"-"`
}

// Material is one catalog entry.
type Material struct {
	Name        string    `yaml:"name"`
	Density     float64   `yaml:"density"`
	Units       string    `yaml:"units"`
	Fraction    string    `yaml:"fraction"`
	Temperature float64   `yaml:"temperature"`
	Sab         string    `yaml:"sab"`
	Nuclides    []Nuclide `yaml:"nuclides"`
}

// Nuclide is a (name, fraction) pair; the kind comes from Material.Fraction.
type Nuclide struct {
	Name     string  `yaml:"name"`
	Fraction float64 `yaml:"fraction"`
}

// Pin is a radial region stack referencing materials by name.
type Pin struct {
	Name      string    `yaml:"name"`
	Radii     []float64 `yaml:"radii"`
	Materials []string  `yaml:"materials"`
}

// Lattice describes the square pin lattice.
type Lattice struct {
	Size           int      `yaml:"size"`
	Pitch          float64  `yaml:"pitch"`
	Base           string   `yaml:"base"`
	PitchTolerance *float64 `yaml:"pitch_tolerance"`
	Rules          []Rule   `yaml:"rules"`
}

// Rule places a pin at every (row, col) in Rows × Cols.
type Rule struct {
	Pin  string `yaml:"pin"`
	Rows []int  `yaml:"rows"`
	Cols []int  `yaml:"cols"`
}

// Bounds describes the bounding box and its boundary conditions.
type Bounds struct {
	Span   float64 `yaml:"span"`
	Height float64 `yaml:"height"`
	Radial string  `yaml:"radial"`
	Axial  string  `yaml:"axial"`
}

// Settings are the run parameters.
type Settings struct {
	Particles   int    `yaml:"particles"`
	Inactive    int    `yaml:"inactive"`
	Batches     int    `yaml:"batches"`
	Temperature string `yaml:"temperature"`
	Seed        int64  `yaml:"seed"`
}

// Plot is a slice-plot request.
type Plot struct {
	ID       int       `yaml:"id"`
	Basis    string    `yaml:"basis"`
	Filename string    `yaml:"filename"`
	Origin   []float64 `yaml:"origin"`
	Pixels   []int     `yaml:"pixels"`
	Width    []float64 `yaml:"width"`
	ColorBy  string    `yaml:"color_by"`
}
