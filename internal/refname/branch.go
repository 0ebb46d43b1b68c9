package refname

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sitharaj88/git-nova/internal/rules"
)

const (
	defaultBranchNameMaxLengthConstant             = 250
	branchNameEmptyMessageConstant                 = "branch name cannot be empty"
	branchNameTooLongMessageTemplateConstant       = "branch name exceeds the maximum length of %d characters"
	branchNameReservedMessageTemplateConstant      = "%s is a reserved Git name"
	branchNameLeadingDotMessageConstant            = "branch name cannot start with a dot"
	branchNameTrailingDotMessageConstant           = "branch name cannot end with a dot"
	branchNameLockSuffixMessageConstant            = "branch name cannot end with .lock"
	branchNameConsecutiveDotsMessageConstant       = "branch name cannot contain consecutive dots"
	branchNameLeadingHyphenMessageConstant         = "branch name cannot start with a hyphen"
	branchNameTrailingSlashMessageConstant         = "branch name cannot end with a slash"
	branchNameConsecutiveSlashesMessageConstant    = "branch name cannot contain consecutive slashes"
	branchNameWhitespaceMessageConstant            = "branch name cannot contain whitespace"
	branchNameControlCharacterMessageConstant      = "branch name cannot contain control characters"
	branchNameForbiddenCharsMessageTemplate        = "branch name cannot contain any of: %s"
	branchNameSlashDisallowedMessageConstant       = "branch name cannot contain slashes"
	branchNameMissingPrefixMessageTemplateConstant = "branch name must start with one of the configured prefixes: %s"
	branchNamePatternMessageTemplateConstant       = "branch name does not match the required pattern %s"
	branchNameNoPrefixWarningConstant              = "branch name has no grouping prefix such as feature/ or bugfix/"
	branchNameShortWarningConstant                 = "branch name is shorter than 3 characters"
	branchNameUppercaseWarningConstant             = "branch name contains uppercase letters; lowercase names are conventional"
	branchNameUnderscoreWarningConstant            = "branch name contains underscores; hyphens are conventional"
	branchNamePrefixSuggestionTemplateConstant     = "feature/%s"
	prefixListSeparatorConstant                    = ", "
	dotLiteralConstant                             = "."
	hyphenLiteralConstant                          = "-"
	slashLiteralConstant                           = "/"
	underscoreLiteralConstant                      = "_"
	doubleDotLiteralConstant                       = ".."
	doubleSlashLiteralConstant                     = "//"
	lockSuffixLiteralConstant                      = ".lock"
	shortBranchNameThresholdConstant               = 3
)

// defaultReservedBranchNames lists symbolic ref names Git claims for itself.
var defaultReservedBranchNames = []string{"HEAD", "FETCH_HEAD", "ORIG_HEAD", "MERGE_HEAD", "CHERRY_PICK_HEAD"}

var uppercaseLetterPattern = regexp.MustCompile(`[A-Z]`)

// BranchNameOptions configure a single branch name validation call.
type BranchNameOptions struct {
	AllowSlash    bool
	MaxLength     int
	ReservedNames []string
	Pattern       *regexp.Regexp
	EnforcePrefix []string
}

// DefaultBranchNameOptions returns the options applied when callers have no
// configuration of their own.
func DefaultBranchNameOptions() BranchNameOptions {
	return BranchNameOptions{
		AllowSlash:    true,
		MaxLength:     defaultBranchNameMaxLengthConstant,
		ReservedNames: append([]string{}, defaultReservedBranchNames...),
	}
}

// ValidateBranchName checks a candidate branch name against Git's ref-name
// grammar. Checks run in a fixed priority order and stop at the first
// failure, so a multiply-invalid name always reports the same error.
func ValidateBranchName(name string, options BranchNameOptions) rules.ValidationResult {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return rules.Failure(branchNameEmptyMessageConstant)
	}

	maximumLength := options.MaxLength
	if maximumLength <= 0 {
		maximumLength = defaultBranchNameMaxLengthConstant
	}
	if len(trimmedName) > maximumLength {
		return rules.Failure(fmt.Sprintf(branchNameTooLongMessageTemplateConstant, maximumLength))
	}

	reservedNames := options.ReservedNames
	if reservedNames == nil {
		reservedNames = defaultReservedBranchNames
	}
	upperCasedName := strings.ToUpper(trimmedName)
	for _, reservedName := range reservedNames {
		if upperCasedName == strings.ToUpper(reservedName) {
			return rules.Failure(fmt.Sprintf(branchNameReservedMessageTemplateConstant, trimmedName))
		}
	}

	if strings.HasPrefix(trimmedName, dotLiteralConstant) {
		return rules.Failure(branchNameLeadingDotMessageConstant)
	}
	if strings.HasSuffix(trimmedName, dotLiteralConstant) {
		return rules.Failure(branchNameTrailingDotMessageConstant)
	}
	if strings.HasSuffix(trimmedName, lockSuffixLiteralConstant) {
		return rules.Failure(branchNameLockSuffixMessageConstant)
	}
	if strings.Contains(trimmedName, doubleDotLiteralConstant) {
		return rules.Failure(branchNameConsecutiveDotsMessageConstant)
	}
	if strings.HasPrefix(trimmedName, hyphenLiteralConstant) {
		return rules.Failure(branchNameLeadingHyphenMessageConstant)
	}
	if strings.HasSuffix(trimmedName, slashLiteralConstant) {
		return rules.Failure(branchNameTrailingSlashMessageConstant)
	}
	if strings.Contains(trimmedName, doubleSlashLiteralConstant) {
		return rules.Failure(branchNameConsecutiveSlashesMessageConstant)
	}
	if containsWhitespaceCharacter(trimmedName) {
		return rules.Failure(branchNameWhitespaceMessageConstant)
	}
	if containsControlCharacter(trimmedName) {
		return rules.Failure(branchNameControlCharacterMessageConstant)
	}
	if containsForbiddenCharacter(trimmedName) {
		return rules.Failure(fmt.Sprintf(branchNameForbiddenCharsMessageTemplate, forbiddenCharactersDisplayConstant))
	}
	if !options.AllowSlash && strings.Contains(trimmedName, slashLiteralConstant) {
		return rules.Failure(branchNameSlashDisallowedMessageConstant)
	}

	if len(options.EnforcePrefix) > 0 {
		prefixMatched := false
		for _, requiredPrefix := range options.EnforcePrefix {
			normalizedPrefix := strings.TrimSuffix(requiredPrefix, slashLiteralConstant)
			if strings.HasPrefix(trimmedName, normalizedPrefix+slashLiteralConstant) {
				prefixMatched = true
				break
			}
		}
		if !prefixMatched {
			failure := rules.Failure(fmt.Sprintf(branchNameMissingPrefixMessageTemplateConstant, strings.Join(options.EnforcePrefix, prefixListSeparatorConstant)))
			for _, requiredPrefix := range options.EnforcePrefix {
				failure.AddSuggestion(strings.TrimSuffix(requiredPrefix, slashLiteralConstant) + slashLiteralConstant + trimmedName)
			}
			return failure
		}
	}

	if options.Pattern != nil && !options.Pattern.MatchString(trimmedName) {
		return rules.Failure(fmt.Sprintf(branchNamePatternMessageTemplateConstant, options.Pattern.String()))
	}

	result := rules.Success()
	if !strings.Contains(trimmedName, slashLiteralConstant) {
		result.AddWarning(branchNameNoPrefixWarningConstant)
		result.AddSuggestion(fmt.Sprintf(branchNamePrefixSuggestionTemplateConstant, trimmedName))
	}
	if len(trimmedName) < shortBranchNameThresholdConstant {
		result.AddWarning(branchNameShortWarningConstant)
	}
	if uppercaseLetterPattern.MatchString(trimmedName) {
		result.AddWarning(branchNameUppercaseWarningConstant)
	}
	if strings.Contains(trimmedName, underscoreLiteralConstant) {
		result.AddWarning(branchNameUnderscoreWarningConstant)
	}

	return result
}
