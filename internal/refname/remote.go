package refname

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sitharaj88/git-nova/internal/rules"
)

const (
	remoteNameEmptyMessageConstant          = "remote name cannot be empty"
	remoteNameWhitespaceMessageConstant     = "remote name cannot contain whitespace"
	remoteNameForbiddenCharsMessageTemplate = "remote name cannot contain any of: %s"
	remoteNameSlashMessageConstant          = "remote name cannot contain slashes"
	remoteNameNonStandardWarningTemplate    = "%s is not a conventional remote name"
	remoteNameStandardSuggestionConstant    = "conventional remote names are origin, upstream, and fork"
	remoteURLEmptyMessageConstant           = "remote URL cannot be empty"
	remoteURLInvalidMessageConstant         = "remote URL is not a recognized Git URL"
	remoteURLHTTPSExampleConstant           = "https://github.com/user/repo.git"
	remoteURLSSHExampleConstant             = "git@github.com:user/repo.git"
	remoteURLGitProtocolWarningConstant     = "the git:// protocol is unencrypted; prefer HTTPS or SSH"
)

// standardRemoteNames lists the remote names left unwarned.
var standardRemoteNames = []string{"origin", "upstream", "fork"}

var (
	httpRemoteURLPattern         = regexp.MustCompile(`(?i)^https?://.+\.git$`)
	sshSchemeRemoteURLPattern    = regexp.MustCompile(`(?i)^ssh://.+\.git$`)
	gitSchemeRemoteURLPattern    = regexp.MustCompile(`(?i)^git://.+\.git$`)
	scpShorthandRemoteURLPattern = regexp.MustCompile(`(?i)^[\w.-]+@[\w.-]+:.+\.git$`)
	localRemoteURLPattern        = regexp.MustCompile(`(?i)^(file://)?/.+$`)
)

// ValidateRemoteName checks a candidate remote name. Remote names are
// single path segments, so slashes are rejected outright.
func ValidateRemoteName(name string) rules.ValidationResult {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return rules.Failure(remoteNameEmptyMessageConstant)
	}
	if containsWhitespaceCharacter(trimmedName) {
		return rules.Failure(remoteNameWhitespaceMessageConstant)
	}
	if containsForbiddenCharacter(trimmedName) {
		return rules.Failure(fmt.Sprintf(remoteNameForbiddenCharsMessageTemplate, forbiddenCharactersDisplayConstant))
	}
	if strings.Contains(trimmedName, slashLiteralConstant) {
		return rules.Failure(remoteNameSlashMessageConstant)
	}

	result := rules.Success()
	if !isStandardRemoteName(trimmedName) {
		result.AddWarning(fmt.Sprintf(remoteNameNonStandardWarningTemplate, trimmedName))
		result.AddSuggestion(remoteNameStandardSuggestionConstant)
	}
	return result
}

func isStandardRemoteName(name string) bool {
	for _, standardName := range standardRemoteNames {
		if strings.EqualFold(name, standardName) {
			return true
		}
	}
	return false
}

// ValidateRemoteURL checks a candidate remote URL against the transport
// forms Git accepts: http(s), ssh (scheme or scp shorthand), git, and
// absolute local paths with an optional file:// prefix. The git://
// protocol passes with a warning rather than failing, since blocking it
// would break legitimate internal-network remotes.
func ValidateRemoteURL(url string) rules.ValidationResult {
	trimmedURL := strings.TrimSpace(url)
	if len(trimmedURL) == 0 {
		return rules.Failure(remoteURLEmptyMessageConstant)
	}

	if gitSchemeRemoteURLPattern.MatchString(trimmedURL) {
		result := rules.Success()
		result.AddWarning(remoteURLGitProtocolWarningConstant)
		return result
	}

	if httpRemoteURLPattern.MatchString(trimmedURL) ||
		sshSchemeRemoteURLPattern.MatchString(trimmedURL) ||
		scpShorthandRemoteURLPattern.MatchString(trimmedURL) ||
		localRemoteURLPattern.MatchString(trimmedURL) {
		return rules.Success()
	}

	return rules.Failure(remoteURLInvalidMessageConstant, remoteURLHTTPSExampleConstant, remoteURLSSHExampleConstant)
}
