package check

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/refname"
	"github.com/sitharaj88/git-nova/internal/rules"
)

const (
	checkRemoteUseConstant              = "check-remote <name-or-url>"
	checkRemoteShortDescriptionConstant = "Validate a remote name or remote URL"
	checkRemoteLongDescriptionConstant  = "check-remote validates a remote URL when the argument looks like one, and a remote name otherwise. Valid forge URLs are echoed back in structured form."
	remoteStructureTemplateConstant     = "  remote: protocol=%s host=%s owner=%s repository=%s\n"
	checkRemoteLogMessageConstant       = "remote checked"
	logFieldTreatedAsURLConstant        = "treated_as_url"
	schemeDelimiterLiteralConstant      = "://"
	atSignLiteralConstant               = "@"
	slashLiteralConstant                = "/"
)

// RemoteCommandBuilder assembles the check-remote command.
type RemoteCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the check-remote command.
func (builder *RemoteCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkRemoteUseConstant,
		Short: checkRemoteShortDescriptionConstant,
		Long:  checkRemoteLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *RemoteCommandBuilder) run(command *cobra.Command, arguments []string) error {
	candidate := arguments[0]
	treatAsURL := looksLikeRemoteURL(candidate)

	var result rules.ValidationResult
	if treatAsURL {
		result = refname.ValidateRemoteURL(candidate)
	} else {
		result = refname.ValidateRemoteName(candidate)
	}

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(checkRemoteLogMessageConstant,
		zap.String(logFieldCandidateConstant, candidate),
		zap.Bool(logFieldTreatedAsURLConstant, treatAsURL),
		zap.Bool(logFieldValidConstant, result.Valid),
	)

	renderError := renderResult(command, candidate, result)
	if renderError == nil && treatAsURL {
		if remoteParts, parseError := refname.ParseRemoteURL(candidate); parseError == nil {
			fmt.Fprintf(resolveOutputWriter(command), remoteStructureTemplateConstant,
				remoteParts.Protocol, remoteParts.Host, remoteParts.Owner, remoteParts.Repository)
		}
	}
	return renderError
}

func looksLikeRemoteURL(candidate string) bool {
	trimmedCandidate := strings.TrimSpace(candidate)
	return strings.Contains(trimmedCandidate, schemeDelimiterLiteralConstant) ||
		strings.Contains(trimmedCandidate, atSignLiteralConstant) ||
		strings.Contains(trimmedCandidate, slashLiteralConstant)
}
