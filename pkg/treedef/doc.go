// Package treedef loads declarative YAML descriptions of widget trees and
// builds them into solvable arenas.
//
// A definition mirrors the tree shape directly: the document is the root
// widget, frames carry a "sequence" axis and nested "children", and every
// widget lists one size spec per axis:
//
//	axes: 2
//	name: gui
//	sequence: 0
//	sizes:
//	  - {demand: exact, extent: 10.0, justify: spread}
//	  - {demand: exact, extent: 6.0, justify: toLowest}
//	children:
//	  - name: panel
//	    sequence: 1
//	    sizes:
//	      - {demand: shrinkToFit, inner: 0.01}
//	      - {demand: exact, extent: 4.0, inner: 0.01}
//	    children: ...
//
// Buffers may be given as a bare number (a fraction of the root's maximum
// extent) or as {value: 0.1, unit: world} for absolute units.
package treedef
