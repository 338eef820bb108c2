package static

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Preflight verifies that the required application files are present under
// root before the server starts. Returns an error naming every missing
// file so startup can fail with one descriptive message.
func Preflight(root string, files ...string) error {
	var missing []string
	for _, f := range files {
		if !fileExists(filepath.Join(root, f)) {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required files in %s: %s", root, strings.Join(missing, ", "))
	}
	return nil
}
