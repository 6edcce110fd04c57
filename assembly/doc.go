// SPDX-License-Identifier: MIT

// Package assembly turns a config.File into a validated model.Model.
//
// Build runs the linear pass in a fixed order so IDs are reproducible:
//
//  1. define every material in a fresh catalog
//  2. build all pin templates (validated concurrently, compiled in order)
//  3. compose the lattice from the base pin and the placement rules
//  4. bound it radially and axially
//  5. assemble settings and plots into the model
//
// Names in pins and rules that do not match a declared material or pin fail
// with ErrUnknownReference. Every other failure carries the sentinel of the
// package that detected it (material, pin, lattice, boundary, model).
package assembly
