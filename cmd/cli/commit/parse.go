package commit

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sitharaj88/git-nova/internal/commitmsg"
	"github.com/sitharaj88/git-nova/internal/utils/flags"
)

const (
	parseCommitUseConstant              = "parse-commit [message]"
	parseCommitShortDescriptionConstant = "Parse a Conventional Commits message into its structured fields"
	parseCommitLongDescriptionConstant  = "parse-commit extracts the type, scope, breaking marker, description, body, and footer from a commit message and prints them as text or YAML. The message is read from the argument, from --file, or from stdin."
	outputFormatFlagNameConstant        = "format"
	outputFormatFlagDescription         = "Output format for the parsed fields."
	textFormatConstant                  = "text"
	yamlFormatConstant                  = "yaml"
	notConventionalErrorConstant        = "message does not follow the conventional commit format"
	parseCommitLogMessageConstant       = "commit message parsed"
	logFieldTypeConstant                = "type"
	logFieldBreakingConstant            = "breaking"
	parsedTypeLineTemplateConstant      = "type: %s\n"
	parsedScopeLineTemplateConstant     = "scope: %s\n"
	parsedBreakingLineTemplateConstant  = "breaking: %t\n"
	parsedDescriptionTemplateConstant   = "description: %s\n"
	parsedBodyTemplateConstant          = "body: %s\n"
	parsedFooterTemplateConstant        = "footer: %s\n"
)

// ParseCommandBuilder assembles the parse-commit command.
type ParseCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the parse-commit command.
func (builder *ParseCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   parseCommitUseConstant,
		Short: parseCommitShortDescriptionConstant,
		Long:  parseCommitLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(messageFileFlagNameConstant, "", messageFileFlagUsageConstant)
	command.Flags().String(outputFormatFlagNameConstant, textFormatConstant,
		flags.FormatChoiceUsage(textFormatConstant, []string{textFormatConstant, yamlFormatConstant}, outputFormatFlagDescription))

	return command, nil
}

func (builder *ParseCommandBuilder) run(command *cobra.Command, arguments []string) error {
	message, messageError := resolveMessage(command, arguments)
	if messageError != nil {
		return messageError
	}

	requestedFormat, flagError := command.Flags().GetString(outputFormatFlagNameConstant)
	if flagError != nil {
		return flagError
	}
	outputFormat, choiceError := flags.ResolveChoice(requestedFormat, []string{textFormatConstant, yamlFormatConstant}, textFormatConstant)
	if choiceError != nil {
		return choiceError
	}

	parsedCommit := commitmsg.Parse(message)
	if parsedCommit == nil {
		return errors.New(notConventionalErrorConstant)
	}

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(parseCommitLogMessageConstant,
		zap.String(logFieldTypeConstant, parsedCommit.Type),
		zap.Bool(logFieldBreakingConstant, parsedCommit.Breaking),
	)

	outputWriter := resolveOutputWriter(command)
	if outputFormat == yamlFormatConstant {
		yamlBytes, marshalError := yaml.Marshal(parsedCommit)
		if marshalError != nil {
			return marshalError
		}
		fmt.Fprint(outputWriter, string(yamlBytes))
		return nil
	}

	fmt.Fprintf(outputWriter, parsedTypeLineTemplateConstant, parsedCommit.Type)
	if len(parsedCommit.Scope) > 0 {
		fmt.Fprintf(outputWriter, parsedScopeLineTemplateConstant, parsedCommit.Scope)
	}
	fmt.Fprintf(outputWriter, parsedBreakingLineTemplateConstant, parsedCommit.Breaking)
	fmt.Fprintf(outputWriter, parsedDescriptionTemplateConstant, parsedCommit.Description)
	if len(parsedCommit.Body) > 0 {
		fmt.Fprintf(outputWriter, parsedBodyTemplateConstant, parsedCommit.Body)
	}
	if len(parsedCommit.Footer) > 0 {
		fmt.Fprintf(outputWriter, parsedFooterTemplateConstant, parsedCommit.Footer)
	}
	return nil
}
