package vtk

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// writeFileAtomic lands data at path via a uniquely named sibling temp file
// and rename, so a name a manifest can reference never exposes a partial
// file. The uuid suffix keeps concurrent exporters off each other's temp
// files.
func writeFileAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
