// SPDX-License-Identifier: MIT

// Package model gathers a material catalog, a bounded lattice geometry, run
// settings and plot requests into one validated Model ready for export.
//
// Assemble is the last step of the linear build:
//
//	catalog → pin templates → lattice → boundary → model
//
// It checks that every substance reachable from the lattice is the catalog's
// own substance of that name (identity, not name equality), that the run
// settings are consistent, and that plot requests are well-formed. Plots
// without an ID receive sequential IDs after the largest explicit one.
//
// A Model is immutable. Writers such as xmlexport implement Exporter.
package model
