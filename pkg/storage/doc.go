// Package storage manages the output directory of gifsaver.
//
// The directory holds the exported files, named by their position in the
// sorted search results ("0.gif", "1.gif", ...), and the manifest.
//
// WriteFileAtomic streams data through a temporary file and renames it into
// place, so a reader never sees a half-written file and a failed download
// leaves nothing behind.
//
// Usage:
//
//	store := storage.NewManager("saved", ".gif")
//	if err := store.EnsureDir(); err != nil {
//	    return err
//	}
//	n, err := storage.WriteFileAtomic(store.Path(store.FileName(0)), body)
package storage
