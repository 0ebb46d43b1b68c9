package commitmsg

import "strings"

const (
	configurationMaxSubjectKeyConstant    = "max_subject_length"
	configurationMaxBodyLineKeyConstant   = "max_body_line_length"
	configurationRequireTypeKeyConstant   = "require_type"
	configurationRequireScopeKeyConstant  = "require_scope"
	configurationAllowedTypesKeyConstant  = "allowed_types"
	configurationAllowedScopesKeyConstant = "allowed_scopes"
	configurationKeySeparatorConstant     = "."
)

// CommandConfiguration captures configuration values for the commit
// message commands.
type CommandConfiguration struct {
	MaxSubjectLength  int      `mapstructure:"max_subject_length"`
	MaxBodyLineLength int      `mapstructure:"max_body_line_length"`
	RequireType       bool     `mapstructure:"require_type"`
	RequireScope      bool     `mapstructure:"require_scope"`
	AllowedTypes      []string `mapstructure:"allowed_types"`
	AllowedScopes     []string `mapstructure:"allowed_scopes"`
}

// DefaultCommandConfiguration provides baseline configuration values for
// the commit message commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		MaxSubjectLength:  defaultMaxSubjectLengthConstant,
		MaxBodyLineLength: defaultMaxBodyLineLengthConstant,
		RequireType:       false,
		RequireScope:      false,
		AllowedTypes:      DefaultCommitTypes(),
		AllowedScopes:     nil,
	}
}

// DefaultConfigurationValues produces Viper defaults for the commit
// message commands under the provided configuration key.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationMaxSubjectKeyConstant:    defaults.MaxSubjectLength,
		rootKey + configurationKeySeparatorConstant + configurationMaxBodyLineKeyConstant:   defaults.MaxBodyLineLength,
		rootKey + configurationKeySeparatorConstant + configurationRequireTypeKeyConstant:   defaults.RequireType,
		rootKey + configurationKeySeparatorConstant + configurationRequireScopeKeyConstant:  defaults.RequireScope,
		rootKey + configurationKeySeparatorConstant + configurationAllowedTypesKeyConstant:  defaults.AllowedTypes,
		rootKey + configurationKeySeparatorConstant + configurationAllowedScopesKeyConstant: defaults.AllowedScopes,
	}
}

// Sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.AllowedTypes = trimConfiguredValues(configuration.AllowedTypes)
	sanitized.AllowedScopes = trimConfiguredValues(configuration.AllowedScopes)
	return sanitized
}

// MessageOptions converts the configuration into validation options.
func (configuration CommandConfiguration) MessageOptions() MessageOptions {
	sanitized := configuration.Sanitize()

	options := DefaultMessageOptions()
	if sanitized.MaxSubjectLength > 0 {
		options.MaxSubjectLength = sanitized.MaxSubjectLength
	}
	if sanitized.MaxBodyLineLength > 0 {
		options.MaxBodyLineLength = sanitized.MaxBodyLineLength
	}
	options.RequireType = sanitized.RequireType
	options.RequireScope = sanitized.RequireScope
	if len(sanitized.AllowedTypes) > 0 {
		options.AllowedTypes = sanitized.AllowedTypes
	}
	options.AllowedScopes = sanitized.AllowedScopes

	return options
}

func trimConfiguredValues(raw []string) []string {
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
