package panel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// priority ranks formats sharing a stem; formats that keep alpha win.
var priority = map[string]int{
	".jpg":  0,
	".jpeg": 0,
	".bmp":  1,
	".webp": 2,
	".png":  3,
	".tga":  3,
}

// Index maps lowercase image stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and its subdirectories for decodable images.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !Supported(path) {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || priority[ext] > priority[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the path for a panel name, or ("", false). Directory
// prefixes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Names returns the indexed stems in sorted order, which is the order the
// panels are flipped through.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for n := range idx.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of indexed panels.
func (idx *Index) Len() int {
	return len(idx.entries)
}
