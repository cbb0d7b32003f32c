// Package cellref converts between A1-style cell labels and zero-based
// (row, column) coordinates, and locates cell references embedded in text.
package cellref

import (
	"regexp"
	"strconv"
	"strings"
)

// Ref is a zero-based cell coordinate.
type Ref struct {
	Row int
	Col int
}

// labelPattern matches a candidate label: column letters followed by row digits.
var labelPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// refPattern matches references embedded in free text: uppercase column
// letters and a row number with no leading zero.
var refPattern = regexp.MustCompile(`[A-Z]+[1-9][0-9]*`)

// Decode parses an A1-style label into a Ref. Columns use bijective base-26
// (A=1 .. Z=26, so "A" is column 0 and "AA" is column 26); rows are 1-based
// in the label and 0-based in the result. The second return value is false
// when the label does not match the pattern or decodes to a negative index.
func Decode(label string) (Ref, bool) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return Ref{}, false
	}

	col := 0
	for _, c := range strings.ToUpper(m[1]) {
		col = col*26 + int(c-'A') + 1
	}
	col--

	rowNum, err := strconv.Atoi(m[2])
	if err != nil {
		return Ref{}, false
	}
	row := rowNum - 1

	if row < 0 || col < 0 {
		return Ref{}, false
	}
	return Ref{Row: row, Col: col}, true
}

// Encode renders a Ref as its canonical uppercase A1 label.
func Encode(r Ref) string {
	col := r.Col + 1
	var letters []byte
	for col > 0 {
		col--
		letters = append(letters, byte('A'+col%26))
		col /= 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters) + strconv.Itoa(r.Row+1)
}

// Match is a cell reference found in free text.
type Match struct {
	// Start is the byte offset of the first character of the label.
	Start int
	// End is the byte offset just past the last character of the label.
	End int
	// Label is the matched text.
	Label string
	// Ref is the decoded coordinate.
	Ref Ref
}

// FindReferences scans text for cell references and returns every match in
// order of appearance. Only uppercase labels with no leading zero in the row
// qualify; matches that fail to decode are skipped.
func FindReferences(text string) []Match {
	var matches []Match
	for _, loc := range refPattern.FindAllStringIndex(text, -1) {
		label := text[loc[0]:loc[1]]
		ref, ok := Decode(label)
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Start: loc[0],
			End:   loc[1],
			Label: label,
			Ref:   ref,
		})
	}
	return matches
}
