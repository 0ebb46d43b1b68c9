package refname

import (
	"fmt"
	"strings"

	"github.com/sitharaj88/git-nova/internal/rules"
)

const (
	stashMessageMaximumLengthConstant   = 500
	stashMessageTooLongMessageTemplate  = "stash message exceeds the maximum length of %d characters"
	stashMessageEmptySuggestionConstant = "a descriptive message makes the stash easier to identify later"
)

// ValidateStashMessage checks a stash message. Stash messages are optional
// in Git, so emptiness only produces a suggestion, never an error.
func ValidateStashMessage(message string) rules.ValidationResult {
	trimmedMessage := strings.TrimSpace(message)
	if len(trimmedMessage) > stashMessageMaximumLengthConstant {
		return rules.Failure(fmt.Sprintf(stashMessageTooLongMessageTemplate, stashMessageMaximumLengthConstant))
	}

	result := rules.Success()
	if len(trimmedMessage) == 0 {
		result.AddSuggestion(stashMessageEmptySuggestionConstant)
	}
	return result
}
