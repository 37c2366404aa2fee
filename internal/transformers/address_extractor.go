package transformers

import (
	"iter"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// minStreetLineLength is the shortest trimmed line (exclusive, in characters) that may start an address.
const minStreetLineLength = 5

// stateZipRun matches a state code glued to a ZIP code, e.g. "CA90210".
var stateZipRun = regexp.MustCompile(`\b([A-Z]{2})(\d{5})\b`)

type addressExtractor struct{}

func NewAddressExtractor() AddressExtractor {
	return &addressExtractor{}
}

// ExtractCandidates yields "<street line>, <next line>" for every line that
// starts with a digit and is longer than five characters. Lines may take part
// in more than one candidate.
func (e *addressExtractor) ExtractCandidates(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i+1 < len(lines); i++ {
			line := strings.TrimSpace(lines[i])
			if !looksLikeStreetLine(line) {
				continue
			}
			next := RepairStateZip(strings.TrimSpace(lines[i+1]))
			if !yield(line + ", " + next) {
				return
			}
		}
	}
}

func (e *addressExtractor) Candidates(lines []string) []string {
	return slices.Collect(e.ExtractCandidates(lines))
}

// BestCandidate returns the first candidate in scan order.
func (e *addressExtractor) BestCandidate(lines []string) (string, bool) {
	for candidate := range e.ExtractCandidates(lines) {
		return candidate, true
	}
	return "", false
}

func looksLikeStreetLine(line string) bool {
	if utf8.RuneCountInString(line) <= minStreetLineLength {
		return false
	}
	return line[0] >= '0' && line[0] <= '9'
}

// RepairStateZip inserts the space OCR tends to drop between a state code and a ZIP code.
func RepairStateZip(line string) string {
	return stateZipRun.ReplaceAllString(line, "$1 $2")
}

// SplitLines splits recognized text into lines, tolerating CRLF endings.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
