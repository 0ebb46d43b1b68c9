package refname

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sitharaj88/git-nova/internal/rules"
)

const (
	tagNameEmptyMessageConstant             = "tag name cannot be empty"
	tagNameWhitespaceMessageConstant        = "tag name cannot contain whitespace"
	tagNameForbiddenCharsMessageTemplate    = "tag name cannot contain any of: %s"
	tagNameLeadingHyphenMessageConstant     = "tag name cannot start with a hyphen"
	tagNameSemverSuggestionTemplateConstant = "consider semantic versioning, e.g. v%s or 1.0.0"
	tagNameSemverSuggestionExampleConstant  = "1.2.3"
)

// semanticVersionPattern recognizes optionally v-prefixed semantic versions
// with pre-release and build metadata suffixes.
var semanticVersionPattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[\w.]+)?(\+[\w.]+)?$`)

// ValidateTagName checks a candidate tag name. Non-semver names remain
// valid; the semantic versioning hint is advisory only because many
// legitimate tagging schemes are not semver.
func ValidateTagName(name string) rules.ValidationResult {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return rules.Failure(tagNameEmptyMessageConstant)
	}
	if containsWhitespaceCharacter(trimmedName) {
		return rules.Failure(tagNameWhitespaceMessageConstant)
	}
	if containsForbiddenCharacter(trimmedName) {
		return rules.Failure(fmt.Sprintf(tagNameForbiddenCharsMessageTemplate, forbiddenCharactersDisplayConstant))
	}
	if strings.HasPrefix(trimmedName, hyphenLiteralConstant) {
		return rules.Failure(tagNameLeadingHyphenMessageConstant)
	}

	result := rules.Success()
	if !semanticVersionPattern.MatchString(trimmedName) {
		result.AddSuggestion(fmt.Sprintf(tagNameSemverSuggestionTemplateConstant, tagNameSemverSuggestionExampleConstant))
	}
	return result
}
