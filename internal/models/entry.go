package models

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	Size  int64
	IsDir bool
}
