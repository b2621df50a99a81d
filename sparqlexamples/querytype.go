package sparqlexamples

import (
	"fmt"
	"strings"

	"github.com/vemonet/rdfdocs/vocabulary/shacl"
)

// Query forms reported in document metadata.
const (
	QueryTypeSelect    = "SELECT"
	QueryTypeAsk       = "ASK"
	QueryTypeConstruct = "CONSTRUCT"
	QueryTypeDescribe  = "DESCRIBE"
)

// queryTypeFromPredicate maps the SHACL property that carried the query text
// to its form.
func queryTypeFromPredicate(pred string) (string, bool) {
	switch pred {
	case shacl.Select:
		return QueryTypeSelect, true
	case shacl.Ask:
		return QueryTypeAsk, true
	case shacl.Construct:
		return QueryTypeConstruct, true
	case shacl.Describe:
		return QueryTypeDescribe, true
	default:
		return "", false
	}
}

// DetectQueryType scans past comments and the PREFIX/BASE prologue for the
// query form keyword. It errors when no form keyword is found, which doubles
// as a cheap well-formedness check on retrieved query text.
func DetectQueryType(query string) (string, error) {
	for _, line := range strings.Split(query, "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		for _, token := range strings.Fields(line) {
			switch strings.ToUpper(token) {
			case QueryTypeSelect:
				return QueryTypeSelect, nil
			case QueryTypeAsk:
				return QueryTypeAsk, nil
			case QueryTypeConstruct:
				return QueryTypeConstruct, nil
			case QueryTypeDescribe:
				return QueryTypeDescribe, nil
			}
		}
	}
	return "", fmt.Errorf("no query form keyword in %q", truncate(query, 80))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
