// Package viz renders the live terminal view of a running universe: the
// board, population history, and playback controls.
package viz
