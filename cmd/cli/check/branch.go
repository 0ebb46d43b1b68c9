package check

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sitharaj88/git-nova/internal/refname"
)

const (
	checkBranchUseConstant              = "check-branch <name>"
	checkBranchShortDescriptionConstant = "Validate a branch name against Git's ref-name rules"
	checkBranchLongDescriptionConstant  = "check-branch validates a candidate branch name locally, reporting the first violated rule along with warnings and corrected suggestions, before any git process is involved."
	sanitizeBranchUseConstant           = "sanitize-branch <name>"
	sanitizeBranchShortDescription      = "Normalize arbitrary text into a valid branch name"
	sanitizeBranchLongDescription       = "sanitize-branch applies a deterministic normalization pipeline to arbitrary text and prints a branch name that passes check-branch with default options."
	noSlashFlagNameConstant             = "no-slash"
	noSlashFlagUsageConstant            = "Reject branch names containing slashes."
	maxLengthFlagNameConstant           = "max-length"
	maxLengthFlagUsageConstant          = "Maximum accepted branch name length."
	prefixFlagNameConstant              = "prefix"
	prefixFlagUsageConstant             = "Required branch prefix; repeat the flag to allow several."
	patternFlagNameConstant             = "pattern"
	patternFlagUsageConstant            = "Regular expression the whole branch name must match."
	invalidPatternFlagTemplateConstant  = "invalid --pattern value %q: %w"
	sanitizedHintTemplateConstant       = "  sanitized: %s\n"
	checkBranchLogMessageConstant       = "branch name checked"
	sanitizeLogMessageConstant          = "branch name sanitized"
	logFieldCandidateConstant           = "candidate"
	logFieldValidConstant               = "valid"
	logFieldSanitizedConstant           = "sanitized"
)

// BranchCommandBuilder assembles the check-branch command.
type BranchCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() refname.CommandConfiguration
}

// Build constructs the check-branch command.
func (builder *BranchCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   checkBranchUseConstant,
		Short: checkBranchShortDescriptionConstant,
		Long:  checkBranchLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Bool(noSlashFlagNameConstant, false, noSlashFlagUsageConstant)
	command.Flags().Int(maxLengthFlagNameConstant, 0, maxLengthFlagUsageConstant)
	command.Flags().StringSlice(prefixFlagNameConstant, nil, prefixFlagUsageConstant)
	command.Flags().String(patternFlagNameConstant, "", patternFlagUsageConstant)
	command.Flags().String(policyFlagNameConstant, "", policyFlagUsageConstant)

	return command, nil
}

func (builder *BranchCommandBuilder) run(command *cobra.Command, arguments []string) error {
	candidateName := arguments[0]

	options, optionsError := builder.resolveOptions(command)
	if optionsError != nil {
		return optionsError
	}

	result := refname.ValidateBranchName(candidateName, options)

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(checkBranchLogMessageConstant,
		zap.String(logFieldCandidateConstant, candidateName),
		zap.Bool(logFieldValidConstant, result.Valid),
	)

	renderError := renderResult(command, candidateName, result)
	if renderError != nil {
		if sanitizedName := refname.SanitizeBranchName(candidateName); len(sanitizedName) > 0 && sanitizedName != candidateName {
			fmt.Fprintf(resolveOutputWriter(command), sanitizedHintTemplateConstant, sanitizedName)
		}
	}
	return renderError
}

func (builder *BranchCommandBuilder) resolveOptions(command *cobra.Command) (refname.BranchNameOptions, error) {
	configuration := refname.DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider().Sanitize()
	}

	options, optionsError := configuration.BranchOptions()
	if optionsError != nil {
		return refname.BranchNameOptions{}, optionsError
	}

	if policyDocument, policyPresent, policyError := loadPolicyDocument(command); policyError != nil {
		return refname.BranchNameOptions{}, policyError
	} else if policyPresent {
		options, optionsError = policyDocument.BranchOptions(options)
		if optionsError != nil {
			return refname.BranchNameOptions{}, optionsError
		}
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(noSlashFlagNameConstant) {
		noSlashRequested, flagError := commandFlags.GetBool(noSlashFlagNameConstant)
		if flagError != nil {
			return refname.BranchNameOptions{}, flagError
		}
		options.AllowSlash = !noSlashRequested
	}
	if commandFlags.Changed(maxLengthFlagNameConstant) {
		maximumLength, flagError := commandFlags.GetInt(maxLengthFlagNameConstant)
		if flagError != nil {
			return refname.BranchNameOptions{}, flagError
		}
		options.MaxLength = maximumLength
	}
	if commandFlags.Changed(prefixFlagNameConstant) {
		requiredPrefixes, flagError := commandFlags.GetStringSlice(prefixFlagNameConstant)
		if flagError != nil {
			return refname.BranchNameOptions{}, flagError
		}
		options.EnforcePrefix = requiredPrefixes
	}
	if commandFlags.Changed(patternFlagNameConstant) {
		patternExpression, flagError := commandFlags.GetString(patternFlagNameConstant)
		if flagError != nil {
			return refname.BranchNameOptions{}, flagError
		}
		compiledPattern, compileError := regexp.Compile(patternExpression)
		if compileError != nil {
			return refname.BranchNameOptions{}, fmt.Errorf(invalidPatternFlagTemplateConstant, patternExpression, compileError)
		}
		options.Pattern = compiledPattern
	}

	return options, nil
}

// SanitizeCommandBuilder assembles the sanitize-branch command.
type SanitizeCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the sanitize-branch command.
func (builder *SanitizeCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   sanitizeBranchUseConstant,
		Short: sanitizeBranchShortDescription,
		Long:  sanitizeBranchLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *SanitizeCommandBuilder) run(command *cobra.Command, arguments []string) error {
	sanitizedName := refname.SanitizeBranchName(arguments[0])

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(sanitizeLogMessageConstant,
		zap.String(logFieldCandidateConstant, arguments[0]),
		zap.String(logFieldSanitizedConstant, sanitizedName),
	)

	fmt.Fprintln(resolveOutputWriter(command), sanitizedName)
	return nil
}
