// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shelf

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Export writes the save-set to w, ordered by title. Supported formats are
// "yaml" (the default when format is empty) and "json".
func (s *Shelf) Export(w io.Writer, format string) error {
	entries := s.Entries()

	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling shelf: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing shelf export: %w", err)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
