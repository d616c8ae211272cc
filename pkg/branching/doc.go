// Package branching grows a branching, space-filling point pattern over a
// rectangle with a directional variant of Poisson-disk sampling.
//
// Every accepted sample throws up to DefaultRetries children inside a wedge
// around the direction it was itself placed in; a child is kept only if no
// earlier sample lies within Radius. The parent→child segments form the
// output and are written by WriteLines.
package branching
