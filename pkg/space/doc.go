// Package space computes the open floor area available for ílot placement:
// the envelope of the classified drawing, minus walls and buffered
// restricted/entrance obstacles.
package space
