package commit

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/commitmsg"
)

const (
	formatCommitUseConstant              = "format-commit"
	formatCommitShortDescriptionConstant = "Build a Conventional Commits message from structured fields"
	formatCommitLongDescriptionConstant  = "format-commit assembles a commit message from the type, scope, description, body, and footer flags, validates it with the configured rules, and prints it."
	typeFlagNameConstant                 = "type"
	typeFlagUsageConstant                = "Commit type for the subject line."
	scopeFlagNameConstant                = "scope"
	scopeFlagUsageConstant               = "Optional scope rendered in parentheses after the type."
	descriptionFlagNameConstant          = "description"
	descriptionFlagUsageConstant         = "Short description for the subject line."
	bodyFlagNameConstant                 = "body"
	bodyFlagUsageConstant                = "Optional body appended after a blank line."
	breakingFlagNameConstant             = "breaking"
	breakingFlagUsageConstant            = "Mark the commit as a breaking change."
	footerFlagNameConstant               = "footer"
	footerFlagUsageConstant              = "Optional footer appended after the body."
	formatCommitLogMessageConstant       = "commit message formatted"
	logFieldMessageLengthConstant        = "message_length"
)

// FormatCommandBuilder assembles the format-commit command.
type FormatCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() commitmsg.CommandConfiguration
}

// Build constructs the format-commit command.
func (builder *FormatCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   formatCommitUseConstant,
		Short: formatCommitShortDescriptionConstant,
		Long:  formatCommitLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(typeFlagNameConstant, "", typeFlagUsageConstant)
	command.Flags().String(scopeFlagNameConstant, "", scopeFlagUsageConstant)
	command.Flags().String(descriptionFlagNameConstant, "", descriptionFlagUsageConstant)
	command.Flags().String(bodyFlagNameConstant, "", bodyFlagUsageConstant)
	command.Flags().Bool(breakingFlagNameConstant, false, breakingFlagUsageConstant)
	command.Flags().String(footerFlagNameConstant, "", footerFlagUsageConstant)
	command.Flags().String(policyFlagNameConstant, "", policyFlagUsageConstant)

	if markError := command.MarkFlagRequired(typeFlagNameConstant); markError != nil {
		return nil, markError
	}
	if markError := command.MarkFlagRequired(descriptionFlagNameConstant); markError != nil {
		return nil, markError
	}

	return command, nil
}

func (builder *FormatCommandBuilder) run(command *cobra.Command, arguments []string) error {
	specification, specificationError := resolveCommitSpec(command)
	if specificationError != nil {
		return specificationError
	}

	message := commitmsg.Generate(specification)

	options, optionsError := resolveMessageOptions(command, builder.ConfigurationProvider)
	if optionsError != nil {
		return optionsError
	}

	result := commitmsg.ValidateMessage(message, options)
	if !result.Valid {
		return renderResult(command, result)
	}

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(formatCommitLogMessageConstant,
		zap.Int(logFieldMessageLengthConstant, len(message)),
	)

	fmt.Fprintln(resolveOutputWriter(command), message)
	return nil
}

func resolveCommitSpec(command *cobra.Command) (commitmsg.CommitSpec, error) {
	commandFlags := command.Flags()

	commitType, flagError := commandFlags.GetString(typeFlagNameConstant)
	if flagError != nil {
		return commitmsg.CommitSpec{}, flagError
	}
	commitScope, flagError := commandFlags.GetString(scopeFlagNameConstant)
	if flagError != nil {
		return commitmsg.CommitSpec{}, flagError
	}
	commitDescription, flagError := commandFlags.GetString(descriptionFlagNameConstant)
	if flagError != nil {
		return commitmsg.CommitSpec{}, flagError
	}
	commitBody, flagError := commandFlags.GetString(bodyFlagNameConstant)
	if flagError != nil {
		return commitmsg.CommitSpec{}, flagError
	}
	breakingChange, flagError := commandFlags.GetBool(breakingFlagNameConstant)
	if flagError != nil {
		return commitmsg.CommitSpec{}, flagError
	}
	commitFooter, flagError := commandFlags.GetString(footerFlagNameConstant)
	if flagError != nil {
		return commitmsg.CommitSpec{}, flagError
	}

	return commitmsg.CommitSpec{
		Type:        commitType,
		Scope:       commitScope,
		Description: commitDescription,
		Body:        commitBody,
		Breaking:    breakingChange,
		Footer:      commitFooter,
	}, nil
}
