package refname

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	configurationAllowSlashKeyConstant    = "allow_slash"
	configurationMaxLengthKeyConstant     = "max_length"
	configurationReservedNamesKeyConstant = "reserved_names"
	configurationPatternKeyConstant       = "pattern"
	configurationPrefixesKeyConstant      = "prefixes"
	configurationKeySeparatorConstant     = "."
	invalidPatternErrorTemplateConstant   = "invalid branch name pattern %q: %w"
)

// CommandConfiguration captures configuration values for the ref-name
// commands.
type CommandConfiguration struct {
	AllowSlash    bool     `mapstructure:"allow_slash"`
	MaxLength     int      `mapstructure:"max_length"`
	ReservedNames []string `mapstructure:"reserved_names"`
	Pattern       string   `mapstructure:"pattern"`
	Prefixes      []string `mapstructure:"prefixes"`
}

// DefaultCommandConfiguration provides baseline configuration values for
// the ref-name commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		AllowSlash:    true,
		MaxLength:     defaultBranchNameMaxLengthConstant,
		ReservedNames: nil,
		Pattern:       "",
		Prefixes:      nil,
	}
}

// DefaultConfigurationValues produces Viper defaults for the ref-name
// commands under the provided configuration key.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationAllowSlashKeyConstant:    defaults.AllowSlash,
		rootKey + configurationKeySeparatorConstant + configurationMaxLengthKeyConstant:     defaults.MaxLength,
		rootKey + configurationKeySeparatorConstant + configurationReservedNamesKeyConstant: defaults.ReservedNames,
		rootKey + configurationKeySeparatorConstant + configurationPatternKeyConstant:       defaults.Pattern,
		rootKey + configurationKeySeparatorConstant + configurationPrefixesKeyConstant:      defaults.Prefixes,
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Pattern = strings.TrimSpace(configuration.Pattern)
	sanitized.ReservedNames = trimValues(configuration.ReservedNames)
	sanitized.Prefixes = trimValues(configuration.Prefixes)
	return sanitized
}

// BranchOptions converts the configuration into validation options,
// compiling the custom pattern. Malformed patterns surface here, at
// configuration time, never during a validation call.
func (configuration CommandConfiguration) BranchOptions() (BranchNameOptions, error) {
	sanitized := configuration.Sanitize()

	options := DefaultBranchNameOptions()
	options.AllowSlash = sanitized.AllowSlash
	if sanitized.MaxLength > 0 {
		options.MaxLength = sanitized.MaxLength
	}
	if len(sanitized.ReservedNames) > 0 {
		options.ReservedNames = sanitized.ReservedNames
	}
	options.EnforcePrefix = sanitized.Prefixes

	if len(sanitized.Pattern) > 0 {
		compiledPattern, compileError := regexp.Compile(sanitized.Pattern)
		if compileError != nil {
			return BranchNameOptions{}, fmt.Errorf(invalidPatternErrorTemplateConstant, sanitized.Pattern, compileError)
		}
		options.Pattern = compiledPattern
	}

	return options, nil
}

func trimValues(raw []string) []string {
	if raw == nil {
		return nil
	}
	trimmed := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmedCandidate := strings.TrimSpace(candidate)
		if len(trimmedCandidate) == 0 {
			continue
		}
		trimmed = append(trimmed, trimmedCandidate)
	}
	return trimmed
}
