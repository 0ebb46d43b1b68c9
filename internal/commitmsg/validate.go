package commitmsg

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sitharaj88/git-nova/internal/rules"
)

const (
	defaultMaxSubjectLengthConstant        = 72
	defaultMaxBodyLineLengthConstant       = 100
	messageEmptyMessageConstant            = "commit message cannot be empty"
	subjectEmptyMessageConstant            = "commit subject cannot be empty"
	subjectTooLongMessageTemplateConstant  = "commit subject exceeds the maximum length of %d characters"
	missingTypeMessageConstant             = "commit subject must follow the type(scope): description format"
	unknownTypeMessageTemplateConstant     = "commit type %q is not allowed; allowed types: %s"
	missingScopeMessageConstant            = "commit subject must include a (scope)"
	unknownScopeMessageTemplateConstant    = "commit scope %q is not allowed; allowed scopes: %s"
	conventionalExampleFeatureConstant     = "feat(parser): add footer detection"
	conventionalExampleFixConstant         = "fix: handle empty subject"
	truncationSuffixConstant               = "..."
	truncationSuffixLengthConstant         = 3
	blankSeparatorWarningConstant          = "subject and body should be separated by a blank line"
	bodyLineTooLongWarningTemplateConstant = "line %d exceeds %d characters"
	subjectPeriodWarningConstant           = "commit subject should not end with a period"
	subjectCapitalizationWarningConstant   = "commit subject should start with a capital letter"
	conventionalFormatSuggestionConstant   = "consider the Conventional Commits format: type(scope): description"
	allowedValuesSeparatorConstant         = ", "
)

// MessageOptions configure a single commit message validation call.
type MessageOptions struct {
	MaxSubjectLength  int
	MaxBodyLineLength int
	RequireType       bool
	RequireScope      bool
	AllowedTypes      []string
	AllowedScopes     []string
}

// DefaultMessageOptions returns the options applied when callers have no
// configuration of their own.
func DefaultMessageOptions() MessageOptions {
	return MessageOptions{
		MaxSubjectLength:  defaultMaxSubjectLengthConstant,
		MaxBodyLineLength: defaultMaxBodyLineLengthConstant,
		AllowedTypes:      DefaultCommitTypes(),
	}
}

// ValidateMessage checks a commit message's structure. The subject-length
// check deliberately runs before the grammar check; the resulting error
// priority is an observable contract and must not be reordered.
func ValidateMessage(message string, options MessageOptions) rules.ValidationResult {
	if len(strings.TrimSpace(message)) == 0 {
		return rules.Failure(messageEmptyMessageConstant)
	}

	messageLines := strings.Split(message, lineSeparatorConstant)
	subjectLine := strings.TrimSpace(messageLines[0])
	if len(subjectLine) == 0 {
		return rules.Failure(subjectEmptyMessageConstant)
	}

	maximumSubjectLength := options.MaxSubjectLength
	if maximumSubjectLength <= 0 {
		maximumSubjectLength = defaultMaxSubjectLengthConstant
	}
	if len(subjectLine) > maximumSubjectLength {
		failureMessage := fmt.Sprintf(subjectTooLongMessageTemplateConstant, maximumSubjectLength)
		if maximumSubjectLength <= truncationSuffixLengthConstant {
			return rules.Failure(failureMessage)
		}
		truncatedSubject := truncateSubjectLine(subjectLine, maximumSubjectLength-truncationSuffixLengthConstant) + truncationSuffixConstant
		return rules.Failure(failureMessage, truncatedSubject)
	}

	subjectMatch := subjectGrammarPattern.FindStringSubmatch(subjectLine)

	if options.RequireType {
		if subjectMatch == nil {
			return rules.Failure(missingTypeMessageConstant, conventionalExampleFeatureConstant, conventionalExampleFixConstant)
		}

		allowedTypes := options.AllowedTypes
		if len(allowedTypes) == 0 {
			allowedTypes = DefaultCommitTypes()
		}
		matchedType := subjectMatch[1]
		if !containsValue(allowedTypes, matchedType) {
			return rules.Failure(fmt.Sprintf(unknownTypeMessageTemplateConstant, matchedType, strings.Join(allowedTypes, allowedValuesSeparatorConstant)))
		}

		matchedScope := subjectMatch[2]
		if options.RequireScope && len(matchedScope) == 0 {
			return rules.Failure(missingScopeMessageConstant)
		}
		if len(matchedScope) > 0 && len(options.AllowedScopes) > 0 && !containsValue(options.AllowedScopes, matchedScope) {
			return rules.Failure(fmt.Sprintf(unknownScopeMessageTemplateConstant, matchedScope, strings.Join(options.AllowedScopes, allowedValuesSeparatorConstant)))
		}
	}

	result := rules.Success()

	maximumBodyLineLength := options.MaxBodyLineLength
	if maximumBodyLineLength <= 0 {
		maximumBodyLineLength = defaultMaxBodyLineLengthConstant
	}
	if len(messageLines) > 1 {
		if len(strings.TrimSpace(messageLines[1])) > 0 {
			result.AddWarning(blankSeparatorWarningConstant)
		}
		for lineIndex := firstBodyLineIndexConstant; lineIndex < len(messageLines); lineIndex++ {
			if len(messageLines[lineIndex]) > maximumBodyLineLength {
				result.AddWarning(fmt.Sprintf(bodyLineTooLongWarningTemplateConstant, lineIndex+1, maximumBodyLineLength))
			}
		}
	}

	if strings.HasSuffix(subjectLine, ".") {
		result.AddWarning(subjectPeriodWarningConstant)
	}
	if subjectMatch == nil {
		firstRune := []rune(subjectLine)[0]
		if unicode.IsLetter(firstRune) && !unicode.IsUpper(firstRune) {
			result.AddWarning(subjectCapitalizationWarningConstant)
		}
		result.AddSuggestion(conventionalFormatSuggestionConstant)
	}

	return result
}

// truncateSubjectLine shortens the subject to at most byteLimit bytes,
// backing up so the cut never splits a multi-byte rune.
func truncateSubjectLine(subjectLine string, byteLimit int) string {
	for byteLimit > 0 && !utf8.RuneStart(subjectLine[byteLimit]) {
		byteLimit--
	}
	return subjectLine[:byteLimit]
}

func containsValue(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
