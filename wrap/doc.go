// Package wrap classifies display lines into screen cells and computes where
// soft wrapping breaks them.
package wrap
