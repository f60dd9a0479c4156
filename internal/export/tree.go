package export

import (
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/secforge/secforge/pkg/models"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// WriteTree writes the files of p into fs. Later entries for a path
// overwrite earlier ones. Every path is checked before anything is written.
func WriteTree(fs billy.Filesystem, p *models.Project) ([]string, error) {
	files := Resolve(p.Files)

	names := make([]string, len(files))
	for i, f := range files {
		name, err := cleanPath(f.Path)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}

	for i, f := range files {
		if dir := path.Dir(names[i]); dir != "." {
			if err := fs.MkdirAll(dir, dirPerm); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(fs, names[i], []byte(f.Content), filePerm); err != nil {
			return nil, fmt.Errorf("write %s: %w", names[i], err)
		}
	}
	return names, nil
}
