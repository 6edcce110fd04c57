package xmlexport

import "encoding/xml"

// materials.xml

type materialsDoc struct {
	XMLName   xml.Name      `xml:"materials"`
	Materials []materialXML `xml:"material"`
}

type materialXML struct {
	ID          int          `xml:"id,attr"`
	Name        string       `xml:"name,attr,omitempty"`
	Temperature string       `xml:"temperature,attr,omitempty"`
	Density     densityXML   `xml:"density"`
	Nuclides    []nuclideXML `xml:"nuclide"`
	Sab         *sabXML      `xml:"sab,omitempty"`
}

type densityXML struct {
	Units string `xml:"units,attr"`
	Value string `xml:"value,attr"`
}

type nuclideXML struct {
	Name string `xml:"name,attr"`
	AO   string `xml:"ao,attr,omitempty"`
	WO   string `xml:"wo,attr,omitempty"`
}

type sabXML struct {
	Name string `xml:"name,attr"`
}

// geometry.xml

type geometryDoc struct {
	XMLName  xml.Name     `xml:"geometry"`
	Cells    []cellXML    `xml:"cell"`
	Surfaces []surfaceXML `xml:"surface"`
	Lattices []latticeXML `xml:"lattice"`
}

type cellXML struct {
	ID       int    `xml:"id,attr"`
	Name     string `xml:"name,attr,omitempty"`
	Material string `xml:"material,attr,omitempty"`
	Fill     string `xml:"fill,attr,omitempty"`
	Region   string `xml:"region,attr,omitempty"`
	Universe int    `xml:"universe,attr"`
}

type surfaceXML struct {
	ID         int    `xml:"id,attr"`
	Type       string `xml:"type,attr"`
	Coeffs     string `xml:"coeffs,attr"`
	Boundary   string `xml:"boundary,attr,omitempty"`
	PeriodicID int    `xml:"periodic_surface_id,attr,omitempty"`
}

type latticeXML struct {
	ID        int    `xml:"id,attr"`
	Name      string `xml:"name,attr,omitempty"`
	Pitch     string `xml:"pitch"`
	Dimension string `xml:"dimension"`
	LowerLeft string `xml:"lower_left"`
	Universes rawXML `xml:"universes"`
}

// rawXML is written verbatim so the universe map keeps its line breaks.
type rawXML struct {
	Body string `xml:",innerxml"`
}

// settings.xml

type settingsDoc struct {
	XMLName              xml.Name `xml:"settings"`
	RunMode              string   `xml:"run_mode"`
	Particles            int      `xml:"particles"`
	Batches              int      `xml:"batches"`
	Inactive             int      `xml:"inactive"`
	Seed                 int64    `xml:"seed,omitempty"`
	TemperatureMethod    string   `xml:"temperature_method"`
	TemperatureMultipole bool     `xml:"temperature_multipole,omitempty"`
}

// plots.xml

type plotsDoc struct {
	XMLName xml.Name  `xml:"plots"`
	Plots   []plotXML `xml:"plot"`
}

type plotXML struct {
	ID       int    `xml:"id,attr"`
	Type     string `xml:"type,attr"`
	Basis    string `xml:"basis,attr"`
	ColorBy  string `xml:"color_by,attr"`
	Filename string `xml:"filename,attr"`
	Origin   string `xml:"origin"`
	Width    string `xml:"width"`
	Pixels   string `xml:"pixels"`
}
