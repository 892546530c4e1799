package services

import (
	"encoding/json"
	"strings"
)

// RemarkDetails is the decoded review feedback carried by a changelog
// record. ChangeDetails is empty when the record carries none.
type RemarkDetails struct {
	Notes         string
	ChangeDetails string
}

// legacySeparators are the delimiter phrases used by records written
// before the structured remark format existed. The list is fixed; an
// unknown separator variant falls through to the whole-text-is-notes
// case instead of being guessed.
var legacySeparators = []string{
	" - Changes needed:",
	"Changes Required:",
	" - Requested changes:",
}

type structuredRemark struct {
	Notes   *string `json:"notes"`
	Changes string  `json:"changes"`
}

// ParseRemark decodes the free-text feedback of a changelog record.
// The remark field is preferred, falling back to the description when
// the remark is blank. Decoding attempts run in order and the first
// success wins:
//
//  1. a JSON object with "notes" and optional "changes",
//  2. a legacy separator phrase, earliest match by string index,
//  3. the whole text as notes.
//
// The function is total: it never fails, whatever the historical data
// looks like.
func ParseRemark(remark, description string) RemarkDetails {
	text := remark
	if strings.TrimSpace(text) == "" {
		text = description
	}

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		var structured structuredRemark
		if err := json.Unmarshal([]byte(trimmed), &structured); err == nil {
			details := RemarkDetails{ChangeDetails: strings.TrimSpace(structured.Changes)}
			if structured.Notes != nil {
				details.Notes = *structured.Notes
			}
			return details
		}
	}

	sepIndex := -1
	sepLen := 0
	for _, sep := range legacySeparators {
		idx := strings.Index(text, sep)
		if idx >= 0 && (sepIndex < 0 || idx < sepIndex) {
			sepIndex = idx
			sepLen = len(sep)
		}
	}
	if sepIndex >= 0 {
		return RemarkDetails{
			Notes:         strings.TrimSpace(text[:sepIndex]),
			ChangeDetails: strings.TrimSpace(text[sepIndex+sepLen:]),
		}
	}

	return RemarkDetails{Notes: strings.TrimSpace(text)}
}

// EncodeRemark produces the structured remark payload written by new
// review feedback records. ParseRemark round-trips it exactly.
func EncodeRemark(notes, changeDetails string) string {
	payload := struct {
		Notes   string `json:"notes"`
		Changes string `json:"changes,omitempty"`
	}{Notes: notes, Changes: changeDetails}
	encoded, err := json.Marshal(payload)
	if err != nil {
		// Marshalling a flat string struct cannot fail.
		return notes
	}
	return string(encoded)
}
