package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/secforge/secforge/pkg/models"
)

// ArchiveName returns the zip file name for p.
func ArchiveName(p *models.Project) string {
	return p.Name + ".zip"
}

// WriteZip writes every file of p into a zip archive on w. Duplicate paths
// are stored once with the content of the last entry. Entries carry no
// timestamps, so the same project always yields the same bytes.
func WriteZip(w io.Writer, p *models.Project) error {
	if len(p.Files) == 0 {
		return ErrEmptyProject
	}

	zw := zip.NewWriter(w)
	for _, f := range Resolve(p.Files) {
		name, err := cleanPath(f.Path)
		if err != nil {
			return err
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("zip %s: %w", name, err)
		}
		if _, err := io.WriteString(fw, f.Content); err != nil {
			return fmt.Errorf("zip %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("zip close: %w", err)
	}
	return nil
}

// ZipBytes returns the archive WriteZip would produce.
func ZipBytes(p *models.Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
