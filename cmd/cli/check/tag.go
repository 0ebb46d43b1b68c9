package check

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/refname"
)

const (
	checkTagUseConstant              = "check-tag <name>"
	checkTagShortDescriptionConstant = "Validate a tag name"
	checkTagLongDescriptionConstant  = "check-tag validates a candidate tag name and suggests semantic versioning for names that do not follow it."
	checkTagLogMessageConstant       = "tag name checked"
)

// TagCommandBuilder assembles the check-tag command.
type TagCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the check-tag command.
func (builder *TagCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkTagUseConstant,
		Short: checkTagShortDescriptionConstant,
		Long:  checkTagLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *TagCommandBuilder) run(command *cobra.Command, arguments []string) error {
	result := refname.ValidateTagName(arguments[0])

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(checkTagLogMessageConstant,
		zap.String(logFieldCandidateConstant, arguments[0]),
		zap.Bool(logFieldValidConstant, result.Valid),
	)

	return renderResult(command, arguments[0], result)
}
