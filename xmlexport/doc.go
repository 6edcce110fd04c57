// Package xmlexport renders a model.Model as the four input documents the
// Monte Carlo solver reads: materials.xml, geometry.xml, settings.xml and
// plots.xml.
//
// Render is pure and byte-stable: the same model always produces the same
// bytes. Elements are ordered by ID, floats use the shortest representation
// that round-trips, and no timestamps or random identifiers are written.
//
// Writer implements model.Exporter and writes the documents into a directory:
//
//	w := xmlexport.New("out", xmlexport.WithLogger(log))
//	if err := w.Export(ctx, m); err != nil { ... }
//
// plots.xml is written only when the model carries plot requests.
package xmlexport
