// Package geom holds the small amount of vector geometry that noise-driven
// rendering needs on top of mgl32: rays, reflection and refraction, screen
// unprojection and random directions.
package geom
