package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	policyFilePathContextKeyConstant        = commandContextKey("policyFilePath")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	return accessor.stringValue(executionContext, configurationFilePathContextKeyConstant)
}

// WithPolicyFilePath attaches the resolved policy file path to the provided context.
func (accessor CommandContextAccessor) WithPolicyFilePath(parentContext context.Context, policyFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, policyFilePathContextKeyConstant, policyFilePath)
}

// PolicyFilePath extracts the resolved policy file path from the provided context.
func (accessor CommandContextAccessor) PolicyFilePath(executionContext context.Context) (string, bool) {
	return accessor.stringValue(executionContext, policyFilePathContextKeyConstant)
}

func (accessor CommandContextAccessor) stringValue(executionContext context.Context, contextKey commandContextKey) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	storedValue, valueAvailable := executionContext.Value(contextKey).(string)
	if !valueAvailable {
		return "", false
	}
	return storedValue, true
}
