package commit

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/commitmsg"
)

const (
	checkCommitUseConstant              = "check-commit [message]"
	checkCommitShortDescriptionConstant = "Validate a commit message against Conventional Commits rules"
	checkCommitLongDescriptionConstant  = "check-commit validates a commit message, reporting the first violated rule along with style warnings and corrected suggestions. The message is read from the argument, from --file, or from stdin."
	requireTypeFlagNameConstant         = "require-type"
	requireTypeFlagUsageConstant        = "Require a conventional type prefix on the subject line."
	requireScopeFlagNameConstant        = "require-scope"
	requireScopeFlagUsageConstant       = "Require a scope alongside the conventional type."
	allowedTypeFlagNameConstant         = "type"
	allowedTypeFlagUsageConstant        = "Accepted commit type; repeat the flag to allow several."
	allowedScopeFlagNameConstant        = "scope"
	allowedScopeFlagUsageConstant       = "Accepted commit scope; repeat the flag to allow several."
	maxSubjectFlagNameConstant          = "max-subject"
	maxSubjectFlagUsageConstant         = "Maximum accepted subject line length."
	maxBodyLineFlagNameConstant         = "max-body-line"
	maxBodyLineFlagUsageConstant        = "Body line length above which a warning is reported."
	checkCommitLogMessageConstant       = "commit message checked"
	logFieldValidConstant               = "valid"
	logFieldSubjectLengthConstant       = "subject_length"
)

// CheckCommandBuilder assembles the check-commit command.
type CheckCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() commitmsg.CommandConfiguration
}

// Build constructs the check-commit command.
func (builder *CheckCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkCommitUseConstant,
		Short: checkCommitShortDescriptionConstant,
		Long:  checkCommitLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(messageFileFlagNameConstant, "", messageFileFlagUsageConstant)
	command.Flags().Bool(requireTypeFlagNameConstant, false, requireTypeFlagUsageConstant)
	command.Flags().Bool(requireScopeFlagNameConstant, false, requireScopeFlagUsageConstant)
	command.Flags().StringSlice(allowedTypeFlagNameConstant, nil, allowedTypeFlagUsageConstant)
	command.Flags().StringSlice(allowedScopeFlagNameConstant, nil, allowedScopeFlagUsageConstant)
	command.Flags().Int(maxSubjectFlagNameConstant, 0, maxSubjectFlagUsageConstant)
	command.Flags().Int(maxBodyLineFlagNameConstant, 0, maxBodyLineFlagUsageConstant)
	command.Flags().String(policyFlagNameConstant, "", policyFlagUsageConstant)

	return command, nil
}

func (builder *CheckCommandBuilder) run(command *cobra.Command, arguments []string) error {
	message, messageError := resolveMessage(command, arguments)
	if messageError != nil {
		return messageError
	}

	options, optionsError := builder.resolveOptions(command)
	if optionsError != nil {
		return optionsError
	}

	result := commitmsg.ValidateMessage(message, options)

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(checkCommitLogMessageConstant,
		zap.Bool(logFieldValidConstant, result.Valid),
		zap.Int(logFieldSubjectLengthConstant, len(message)),
	)

	return renderResult(command, result)
}

func (builder *CheckCommandBuilder) resolveOptions(command *cobra.Command) (commitmsg.MessageOptions, error) {
	options, optionsError := resolveMessageOptions(command, builder.ConfigurationProvider)
	if optionsError != nil {
		return commitmsg.MessageOptions{}, optionsError
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(requireTypeFlagNameConstant) {
		requireType, flagError := commandFlags.GetBool(requireTypeFlagNameConstant)
		if flagError != nil {
			return commitmsg.MessageOptions{}, flagError
		}
		options.RequireType = requireType
	}
	if commandFlags.Changed(requireScopeFlagNameConstant) {
		requireScope, flagError := commandFlags.GetBool(requireScopeFlagNameConstant)
		if flagError != nil {
			return commitmsg.MessageOptions{}, flagError
		}
		options.RequireScope = requireScope
	}
	if commandFlags.Changed(allowedTypeFlagNameConstant) {
		allowedTypes, flagError := commandFlags.GetStringSlice(allowedTypeFlagNameConstant)
		if flagError != nil {
			return commitmsg.MessageOptions{}, flagError
		}
		options.AllowedTypes = allowedTypes
	}
	if commandFlags.Changed(allowedScopeFlagNameConstant) {
		allowedScopes, flagError := commandFlags.GetStringSlice(allowedScopeFlagNameConstant)
		if flagError != nil {
			return commitmsg.MessageOptions{}, flagError
		}
		options.AllowedScopes = allowedScopes
	}
	if commandFlags.Changed(maxSubjectFlagNameConstant) {
		maximumSubjectLength, flagError := commandFlags.GetInt(maxSubjectFlagNameConstant)
		if flagError != nil {
			return commitmsg.MessageOptions{}, flagError
		}
		options.MaxSubjectLength = maximumSubjectLength
	}
	if commandFlags.Changed(maxBodyLineFlagNameConstant) {
		maximumBodyLineLength, flagError := commandFlags.GetInt(maxBodyLineFlagNameConstant)
		if flagError != nil {
			return commitmsg.MessageOptions{}, flagError
		}
		options.MaxBodyLineLength = maximumBodyLineLength
	}

	return options, nil
}
