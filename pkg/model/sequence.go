// Cleaning of caller supplied nucleotide sequences

package model

import (
	"strings"
)

// CleanSequence trims and upper-cases raw. It returns false when the result
// is empty or holds anything but A, T, G, C. There is no partial acceptance:
// one bad character rejects the whole sequence.
func CleanSequence(raw string) (string, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", false
	}

	for i := 0; i < len(cleaned); i++ {
		if strings.IndexByte(NUCLEOTIDES, cleaned[i]) < 0 {
			return "", false
		}
	}

	return cleaned, true
}

// ValidateAndClean keeps the sequences CleanSequence accepts, in input order,
// duplicates included. Non-string inputs reach here as "" and are dropped.
//
// An empty raw slice is ErrorCodeNoInput; a non-empty slice with nothing
// valid in it is ErrorCodeNoValidInput.
func ValidateAndClean(raw []string) ([]string, error) {

	if len(raw) == 0 {
		return nil, NewPredictError(ErrorCodeNoInput, nil)
	}

	valid := make([]string, 0, len(raw))
	for _, seq := range raw {
		if cleaned, ok := CleanSequence(seq); ok {
			valid = append(valid, cleaned)
		}
	}

	if len(valid) == 0 {
		return nil, NewPredictError(ErrorCodeNoValidInput, nil)
	}

	return valid, nil
}

// sequencePreview keeps the first PREVIEW_LENGTH characters and marks
// truncation. Validated sequences are ASCII, so bytes are characters.
func sequencePreview(seq string) string {
	if len(seq) > PREVIEW_LENGTH {
		return seq[:PREVIEW_LENGTH] + PREVIEW_ELLIPSIS
	}
	return seq
}
