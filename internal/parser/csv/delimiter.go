package csv

import "strings"

// DetectDelimiter inspects the first line of a document and picks the field
// separator by occurrence count: tab wins only when it strictly outnumbers
// commas, everything else (ties, zero of both, a lone header word) selects
// comma. One detection applies to the whole document; there is no per-line
// re-detection.
func DetectDelimiter(firstLine string) rune {
	tabs := strings.Count(firstLine, "\t")
	commas := strings.Count(firstLine, ",")
	if tabs > commas {
		return '\t'
	}
	return ','
}
