package check

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/policy"
	"github.com/sitharaj88/git-nova/internal/rules"
	"github.com/sitharaj88/git-nova/internal/utils"
)

const (
	policyFlagNameConstant          = "policy"
	policyFlagUsageConstant         = "Path to a repository policy file overriding configured rules."
	validationFailedMessageConstant = "validation failed"
)

// ErrValidationFailed indicates the candidate did not pass validation;
// the detailed report has already been rendered.
var ErrValidationFailed = errors.New(validationFailedMessageConstant)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveOutputWriter(command *cobra.Command) io.Writer {
	return utils.NewFlushingWriter(command.OutOrStdout())
}

func loadPolicyDocument(command *cobra.Command) (policy.Document, bool, error) {
	policyFilePath, flagError := command.Flags().GetString(policyFlagNameConstant)
	if flagError != nil {
		return policy.Document{}, false, flagError
	}
	trimmedPath := strings.TrimSpace(policyFilePath)
	if len(trimmedPath) == 0 {
		return policy.Document{}, false, nil
	}

	document, loadError := policy.Load(trimmedPath)
	if loadError != nil {
		return policy.Document{}, false, loadError
	}

	contextAccessor := utils.NewCommandContextAccessor()
	command.SetContext(contextAccessor.WithPolicyFilePath(command.Context(), trimmedPath))

	return document, true, nil
}

func renderResult(command *cobra.Command, subject string, result rules.ValidationResult) error {
	rules.Render(resolveOutputWriter(command), subject, result)
	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}
