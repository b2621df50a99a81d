package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vemonet/rdfdocs/config"
	"github.com/vemonet/rdfdocs/document"
)

// writeDocuments prints documents in the selected output format.
func writeDocuments(w io.Writer, docs []document.Document, format string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText:
		for i, doc := range docs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, doc.Content)
			for _, key := range doc.MetadataKeys() {
				fmt.Fprintf(w, "  %s: %s\n", key, doc.Metadata[key])
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
