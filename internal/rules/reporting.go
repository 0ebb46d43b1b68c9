package rules

import (
	"fmt"
	"io"
)

const (
	validVerdictTemplateConstant   = "VALID: %s\n"
	invalidVerdictTemplateConstant = "INVALID: %s\n"
	errorLineTemplateConstant      = "  error: %s\n"
	warningLineTemplateConstant    = "  warning: %s\n"
	suggestionLineTemplateConstant = "  suggestion: %s\n"
)

// Render writes a human-readable report for the result to the writer,
// labelling the verdict with the validated subject.
func Render(writer io.Writer, subject string, result ValidationResult) {
	if writer == nil {
		return
	}

	if result.Valid {
		fmt.Fprintf(writer, validVerdictTemplateConstant, subject)
	} else {
		fmt.Fprintf(writer, invalidVerdictTemplateConstant, subject)
		fmt.Fprintf(writer, errorLineTemplateConstant, result.Error)
	}

	for _, warningMessage := range result.Warnings {
		fmt.Fprintf(writer, warningLineTemplateConstant, warningMessage)
	}
	for _, suggestionMessage := range result.Suggestions {
		fmt.Fprintf(writer, suggestionLineTemplateConstant, suggestionMessage)
	}
}
