package models

// Image is an embedded picture anchored at a cell's top-left corner. The byte
// slice is owned by the source document or the overlay and is never mutated.
type Image struct {
	Data   []byte
	Format string // lower-case extension without the dot: "png", "jpg", ...
}
