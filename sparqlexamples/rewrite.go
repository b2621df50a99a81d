package sparqlexamples

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// anchorTagPattern matches HTML anchor tags. Some endpoints store example
// queries with hyperlinked IRIs; only the link text belongs in the query.
var anchorTagPattern = regexp.MustCompile(`(?i)<a\b[^>]*>(.*?)</a>`)

// stripAnchorTags replaces every anchor tag with its inner text.
func stripAnchorTags(s string) string {
	return anchorTagPattern.ReplaceAllString(s, "$1")
}

// injectPrefixes prepends a PREFIX declaration for every endpoint-declared
// prefix that the query body uses but does not declare itself. Prefixes are
// applied in sorted order so repeated loads produce identical query text.
func injectPrefixes(query string, prefixes map[string]string) string {
	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		decl := fmt.Sprintf("PREFIX %s: <%s>", prefix, prefixes[prefix])
		if strings.Contains(query, decl) {
			continue
		}
		// A prefix counts as used when it follows an opening paren, a
		// space, a no-break space or a slash, mirroring how endpoints
		// format stored queries.
		used := regexp.MustCompile(`[(|\s\x{00A0}/]` + regexp.QuoteMeta(prefix) + `:`)
		if used.MatchString(query) {
			query = decl + "\n" + query
		}
	}
	return query
}
