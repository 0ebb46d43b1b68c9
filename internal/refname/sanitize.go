package refname

import (
	"regexp"
	"strings"
)

const (
	sanitizeTrimCutsetConstant     = "-./"
	sanitizeReplacementConstant    = "-"
	sanitizeDotReplacementConstant = "."
	sanitizeSlashReplacement       = "/"
)

var (
	whitespaceRunPattern  = regexp.MustCompile(`\s+`)
	underscoreRunPattern  = regexp.MustCompile(`_+`)
	dotRunPattern         = regexp.MustCompile(`\.{2,}`)
	slashRunPattern       = regexp.MustCompile(`/{2,}`)
	disallowedRunePattern = regexp.MustCompile(`[^a-z0-9./-]+`)
	forbiddenSetReplacer  = strings.NewReplacer(buildForbiddenReplacerPairs()...)
	sanitizeMaximumLength = defaultBranchNameMaxLengthConstant
)

func buildForbiddenReplacerPairs() []string {
	pairs := make([]string, 0, 2*len(forbiddenCharactersConstant))
	for _, forbiddenCharacter := range forbiddenCharactersConstant {
		pairs = append(pairs, string(forbiddenCharacter), "")
	}
	return pairs
}

// SanitizeBranchName normalizes arbitrary text into a branch name that
// passes ValidateBranchName with default options. The transform is
// deterministic and idempotent; the step order is load-bearing because
// later steps assume the earlier ones have already run.
func SanitizeBranchName(name string) string {
	sanitized := strings.TrimSpace(name)
	sanitized = strings.ToLower(sanitized)
	sanitized = whitespaceRunPattern.ReplaceAllString(sanitized, sanitizeReplacementConstant)
	sanitized = underscoreRunPattern.ReplaceAllString(sanitized, sanitizeReplacementConstant)
	sanitized = forbiddenSetReplacer.Replace(sanitized)
	sanitized = disallowedRunePattern.ReplaceAllString(sanitized, "")
	sanitized = dotRunPattern.ReplaceAllString(sanitized, sanitizeDotReplacementConstant)
	sanitized = slashRunPattern.ReplaceAllString(sanitized, sanitizeSlashReplacement)
	sanitized = strings.Trim(sanitized, sanitizeTrimCutsetConstant)
	if len(sanitized) > sanitizeMaximumLength {
		sanitized = sanitized[:sanitizeMaximumLength]
		sanitized = strings.TrimRight(sanitized, sanitizeTrimCutsetConstant)
	}
	return sanitized
}
