package commit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/commitmsg"
	"github.com/sitharaj88/git-nova/internal/policy"
	"github.com/sitharaj88/git-nova/internal/rules"
	"github.com/sitharaj88/git-nova/internal/utils"
)

const (
	messageFileFlagNameConstant     = "file"
	messageFileFlagUsageConstant    = "Read the commit message from a file instead of the argument."
	policyFlagNameConstant          = "policy"
	policyFlagUsageConstant         = "Path to a repository policy file overriding configured rules."
	missingMessageErrorConstant     = "no commit message provided; pass it as an argument, via --file, or on stdin"
	messageFileReadErrorTemplate    = "unable to read commit message file %s: %w"
	validationFailedMessageConstant = "commit message validation failed"
	commitSubjectLabelConstant      = "commit message"
)

// ErrValidationFailed indicates the message did not pass validation; the
// detailed report has already been rendered.
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

// resolveMessage returns the commit message from the first argument, the
// --file flag, or stdin, in that priority order.
func resolveMessage(command *cobra.Command, arguments []string) (string, error) {
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		return arguments[0], nil
	}

	messageFilePath, flagError := command.Flags().GetString(messageFileFlagNameConstant)
	if flagError != nil {
		return "", flagError
	}
	if trimmedPath := strings.TrimSpace(messageFilePath); len(trimmedPath) > 0 {
		contentBytes, readError := os.ReadFile(trimmedPath)
		if readError != nil {
			return "", fmt.Errorf(messageFileReadErrorTemplate, trimmedPath, readError)
		}
		return string(contentBytes), nil
	}

	if inputReader := command.InOrStdin(); inputReader != nil && readerHasPipedData(inputReader) {
		contentBytes, readError := io.ReadAll(inputReader)
		if readError == nil && len(strings.TrimSpace(string(contentBytes))) > 0 {
			return string(contentBytes), nil
		}
	}

	return "", errors.New(missingMessageErrorConstant)
}

// readerHasPipedData reports whether the reader carries piped input. An
// interactive terminal is never read; waiting on it would hang the command.
func readerHasPipedData(inputReader io.Reader) bool {
	fileReader, isFile := inputReader.(*os.File)
	if !isFile {
		return true
	}
	fileInformation, statError := fileReader.Stat()
	if statError != nil {
		return false
	}
	return fileInformation.Mode()&os.ModeCharDevice == 0
}

func resolveMessageOptions(command *cobra.Command, configurationProvider func() commitmsg.CommandConfiguration) (commitmsg.MessageOptions, error) {
	configuration := commitmsg.DefaultCommandConfiguration()
	if configurationProvider != nil {
		configuration = configurationProvider().Sanitize()
	}
	options := configuration.MessageOptions()

	policyFilePath, flagError := command.Flags().GetString(policyFlagNameConstant)
	if flagError != nil {
		return commitmsg.MessageOptions{}, flagError
	}
	if trimmedPath := strings.TrimSpace(policyFilePath); len(trimmedPath) > 0 {
		document, loadError := policy.Load(trimmedPath)
		if loadError != nil {
			return commitmsg.MessageOptions{}, loadError
		}
		options = document.CommitOptions(options)

		contextAccessor := utils.NewCommandContextAccessor()
		command.SetContext(contextAccessor.WithPolicyFilePath(command.Context(), trimmedPath))
	}

	return options, nil
}

func renderResult(command *cobra.Command, result rules.ValidationResult) error {
	rules.Render(resolveOutputWriter(command), commitSubjectLabelConstant, result)
	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}
