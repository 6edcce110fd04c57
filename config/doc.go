// Package config reads assembly descriptions from YAML and applies
// environment overrides.
//
// A description names materials, pin templates, the lattice with its
// placement rules, the bounding box, run settings and plot requests. Parse
// checks structure only (required fields, keywords, vector lengths) and
// reports the offending field path, e.g. "pins[1].materials". Physical
// validation is left to the builder packages.
//
// Reference returns the embedded 17×17 heavy-water assembly.
//
// Environment variables (see Env) override run settings and tell the CLI
// where to write files and which solver to start.
package config
