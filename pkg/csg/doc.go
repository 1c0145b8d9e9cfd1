// Package csg defines the immutable constructive solid geometry
// expression tree. Builders produce trees; geometry kernels consume them.
package csg
