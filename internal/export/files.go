package export

import (
	"fmt"
	"path"
	"strings"

	"github.com/secforge/secforge/pkg/models"
)

// Resolve collapses duplicate paths so that the last entry for a path wins,
// keeping each path at the position it first appeared.
func Resolve(files []models.File) []models.File {
	index := make(map[string]int, len(files))
	out := make([]models.File, 0, len(files))
	for _, f := range files {
		key := path.Clean(f.Path)
		if i, ok := index[key]; ok {
			out[i] = f
			continue
		}
		index[key] = len(out)
		out = append(out, f)
	}
	return out
}

// cleanPath returns p in canonical slash form, or ErrPathTraversal when p
// would land outside the export root.
func cleanPath(p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, `\`) || (len(p) >= 2 && p[1] == ':') {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, p)
	}
	c := path.Clean(p)
	if c == "." || c == ".." || strings.HasPrefix(c, "../") {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, p)
	}
	return c, nil
}
