package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// ZipEntry is one file of an archive. Exactly one of Data or Open is used;
// Open wins when both are set, so large attachment files are streamed rather
// than buffered.
type ZipEntry struct {
	Name string
	Data []byte
	Open func() (io.ReadCloser, error)
}

// WriteZip packages the entries into an in-memory zip archive. An entry
// whose Open fails aborts the archive; a half-written bundle is worse than
// an error.
func WriteZip(entries []ZipEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("create entry %s: %w", e.Name, err)
		}

		if e.Open != nil {
			rc, err := e.Open()
			if err != nil {
				return nil, fmt.Errorf("open entry %s: %w", e.Name, err)
			}
			_, err = io.Copy(w, rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("copy entry %s: %w", e.Name, err)
			}
			continue
		}

		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("write entry %s: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
