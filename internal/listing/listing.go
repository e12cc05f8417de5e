package listing

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/kubev2v/concurrency-patterns/internal/models"
	srvErrors "github.com/kubev2v/concurrency-patterns/pkg/errors"
)

// Read returns the entries of dir in the order the OS yields them.
func Read(dir string) ([]models.Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory %q: %w", dir, err)
	}
	defer f.Close()

	dirEntries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory %q: %w", dir, err)
	}

	entries := make([]models.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("unable to stat %q: %w", filepath.Join(dir, de.Name()), err)
		}
		entries = append(entries, models.Entry{
			Name:  de.Name(),
			Size:  info.Size(),
			IsDir: de.IsDir(),
		})
	}

	return entries, nil
}

// OrderFromFlags maps the --size and --name flags to a sort order. The flags
// are mutually exclusive.
func OrderFromFlags(bySize, byName bool) (models.SortOrder, error) {
	switch {
	case bySize && byName:
		return "", srvErrors.NewConflictingFlagsError("size", "name")
	case bySize:
		return models.SortOrderSize, nil
	case byName:
		return models.SortOrderName, nil
	default:
		return models.SortOrderNone, nil
	}
}

// Sort orders entries in place. Equal keys keep their relative order.
func Sort(entries []models.Entry, order models.SortOrder) {
	switch order {
	case models.SortOrderSize:
		slices.SortStableFunc(entries, func(a, b models.Entry) int {
			return cmp.Compare(a.Size, b.Size)
		})
	case models.SortOrderName:
		slices.SortStableFunc(entries, func(a, b models.Entry) int {
			return cmp.Compare(a.Name, b.Name)
		})
	}
}

// Write prints one line per entry: name, directory flag and size.
func Write(w io.Writer, entries []models.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-15s %-15t %-15s\n", e.Name, e.IsDir, humanize.IBytes(uint64(e.Size))); err != nil {
			return err
		}
	}
	return nil
}
