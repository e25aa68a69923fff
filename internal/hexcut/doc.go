// Package hexcut turns a named map image on disk into a hexagonal tile.
//
// A Cutter resolves <dir>/<name>.<ext> through its Locator, cuts the hexagon
// with imaging.CutHexagon and writes <dir>/<name>_hex.png atomically.
//
// # Errors
//
// A missing source yields an error wrapping ErrNotFound and leaves the
// directory untouched; callers processing many names skip it and carry on.
// Every other error (decode, mkdir, write) is a failure for that name and is
// returned to the caller. CutAll applies this policy across a list of names.
//
// # Concurrency
//
// A Cutter holds no mutable state and may be shared between goroutines, as
// long as no two calls target the same name and directory at once.
package hexcut
