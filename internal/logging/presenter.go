package logging

import "strings"

// PresentError renders err on a single line with secrets masked.
// Server bodies embedded in errors often span several lines; runs of
// whitespace are collapsed so the output stays one line.
func PresentError(label string, err error) string {
	if err == nil {
		return ""
	}
	msg := strings.Join(strings.Fields(Mask(err.Error())), " ")
	if label == "" {
		return msg
	}
	return label + ": " + msg
}
