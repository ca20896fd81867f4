// Package widget provides the tree scaffolding consumers need in order to
// drive the geometry solver: an arena of widget records addressed by stable
// handles, with frame/leaf builders that keep the tree acyclic by
// construction.
//
// The arena keeps each widget's declared size preferences separate from the
// working copies handed to the solver, so a tree can be reset and re-solved
// after a failed configuration is corrected, without rebuilding it.
package widget
