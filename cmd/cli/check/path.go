package check

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/refname"
)

const (
	checkPathUseConstant               = "check-path <path>"
	checkPathShortDescriptionConstant  = "Validate a repository-relative file path"
	checkPathLongDescriptionConstant   = "check-path rejects paths containing null bytes or whole .. traversal segments."
	checkStashUseConstant              = "check-stash [message]"
	checkStashShortDescriptionConstant = "Validate a stash message"
	checkStashLongDescriptionConstant  = "check-stash validates a stash message; stash messages are optional, so an empty message merely earns a suggestion."
	checkPathLogMessageConstant        = "file path checked"
	checkStashLogMessageConstant       = "stash message checked"
	stashSubjectLabelConstant          = "stash message"
)

// PathCommandBuilder assembles the check-path command.
type PathCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the check-path command.
func (builder *PathCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkPathUseConstant,
		Short: checkPathShortDescriptionConstant,
		Long:  checkPathLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *PathCommandBuilder) run(command *cobra.Command, arguments []string) error {
	result := refname.ValidateFilePath(arguments[0])

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(checkPathLogMessageConstant,
		zap.String(logFieldCandidateConstant, arguments[0]),
		zap.Bool(logFieldValidConstant, result.Valid),
	)

	return renderResult(command, arguments[0], result)
}

// StashCommandBuilder assembles the check-stash command.
type StashCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the check-stash command.
func (builder *StashCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkStashUseConstant,
		Short: checkStashShortDescriptionConstant,
		Long:  checkStashLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *StashCommandBuilder) run(command *cobra.Command, arguments []string) error {
	stashMessage := ""
	if len(arguments) > 0 {
		stashMessage = arguments[0]
	}

	result := refname.ValidateStashMessage(stashMessage)

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(checkStashLogMessageConstant, zap.Bool(logFieldValidConstant, result.Valid))

	return renderResult(command, stashSubjectLabelConstant, result)
}
