package check

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/sitharaj88/git-nova/internal/utils"
)

const (
	policyFileNameConstant      = "policy.yaml"
	restrictivePolicyConstant   = "branch:\n  allow_slash: false\n  max_length: 20\n"
	prefixPolicyContentConstant = "branch:\n  prefixes:\n    - feature/\n    - bugfix/\n"
)

func executeCommand(testInstance *testing.T, command *cobra.Command, arguments ...string) (string, error) {
	testInstance.Helper()

	var outputBuffer bytes.Buffer
	command.SetOut(&outputBuffer)
	command.SetErr(&outputBuffer)
	command.SetArgs(arguments)

	executionError := command.Execute()
	return outputBuffer.String(), executionError
}

func writePolicyFile(testInstance *testing.T, content string) string {
	testInstance.Helper()

	policyFilePath := filepath.Join(testInstance.TempDir(), policyFileNameConstant)
	require.NoError(testInstance, os.WriteFile(policyFilePath, []byte(content), 0o644))
	return policyFilePath
}

func TestBranchCommandReportsVerdicts(t *testing.T) {
	testCases := []struct {
		name             string
		arguments        []string
		expectValid      bool
		expectedFragment string
	}{
		{
			name:             "accepts well formed name",
			arguments:        []string{"feature/login"},
			expectValid:      true,
			expectedFragment: "VALID: feature/login",
		},
		{
			name:             "rejects forbidden character",
			arguments:        []string{"feat~ure"},
			expectValid:      false,
			expectedFragment: "INVALID: feat~ure",
		},
		{
			name:             "rejects slash when disabled",
			arguments:        []string{"feature/login", "--no-slash"},
			expectValid:      false,
			expectedFragment: "error:",
		},
		{
			name:             "rejects missing prefix",
			arguments:        []string{"login", "--prefix", "feature/"},
			expectValid:      false,
			expectedFragment: "suggestion: feature/login",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			builder := &BranchCommandBuilder{}
			command, buildError := builder.Build()
			require.NoError(t, buildError)

			output, executionError := executeCommand(t, command, testCase.arguments...)
			if testCase.expectValid {
				require.NoError(t, executionError)
			} else {
				require.ErrorIs(t, executionError, ErrValidationFailed)
			}
			require.Contains(t, output, testCase.expectedFragment)
		})
	}
}

func TestBranchCommandPrintsSanitizedHint(t *testing.T) {
	builder := &BranchCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output, executionError := executeCommand(t, command, "Fix Login Bug")
	require.ErrorIs(t, executionError, ErrValidationFailed)
	require.Contains(t, output, "sanitized: fix-login-bug")
}

func TestBranchCommandAppliesPolicyFile(t *testing.T) {
	policyFilePath := writePolicyFile(t, restrictivePolicyConstant)

	builder := &BranchCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output, executionError := executeCommand(t, command, "feature/login", "--policy", policyFilePath)
	require.ErrorIs(t, executionError, ErrValidationFailed)
	require.Contains(t, output, "INVALID: feature/login")

	contextAccessor := utils.NewCommandContextAccessor()
	storedPath, pathStored := contextAccessor.PolicyFilePath(command.Context())
	require.True(t, pathStored)
	require.Equal(t, policyFilePath, storedPath)
}

func TestBranchCommandFlagsOverridePolicyFile(t *testing.T) {
	policyFilePath := writePolicyFile(t, prefixPolicyContentConstant)

	builder := &BranchCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output, executionError := executeCommand(t, command, "hotfix/urgent", "--policy", policyFilePath, "--prefix", "hotfix/")
	require.NoError(t, executionError)
	require.Contains(t, output, "VALID: hotfix/urgent")
}

func TestBranchCommandRejectsInvalidPatternFlag(t *testing.T) {
	builder := &BranchCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	_, executionError := executeCommand(t, command, "feature/login", "--pattern", "([")
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "--pattern")
}

func TestSanitizeCommandPrintsNormalizedName(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedOutput string
	}{
		{name: "lowercases and hyphenates", input: "Fix Login Bug", expectedOutput: "fix-login-bug"},
		{name: "strips forbidden characters", input: "fix: bug #123", expectedOutput: "fix-bug-123"},
		{name: "collapses separators", input: "feat//nested..path", expectedOutput: "feat/nested.path"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			builder := &SanitizeCommandBuilder{}
			command, buildError := builder.Build()
			require.NoError(t, buildError)

			output, executionError := executeCommand(t, command, testCase.input)
			require.NoError(t, executionError)
			require.Equal(t, testCase.expectedOutput, strings.TrimSpace(output))
		})
	}
}

func TestTagCommandReportsVerdicts(t *testing.T) {
	builder := &TagCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output, executionError := executeCommand(t, command, "v1.2.3")
	require.NoError(t, executionError)
	require.Contains(t, output, "VALID: v1.2.3")
}

func TestTagCommandSuggestsSemanticVersion(t *testing.T) {
	builder := &TagCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output, executionError := executeCommand(t, command, "release-candidate")
	require.NoError(t, executionError)
	require.Contains(t, output, "suggestion:")
}

func TestRemoteCommandValidatesNamesAndURLs(t *testing.T) {
	testCases := []struct {
		name             string
		argument         string
		expectValid      bool
		expectedFragment string
	}{
		{
			name:             "accepts origin",
			argument:         "origin",
			expectValid:      true,
			expectedFragment: "VALID: origin",
		},
		{
			name:             "warns about unusual name",
			argument:         "deploy-target",
			expectValid:      true,
			expectedFragment: "warning:",
		},
		{
			name:             "accepts https url with structure",
			argument:         "https://github.com/team/service.git",
			expectValid:      true,
			expectedFragment: "remote: protocol=https host=github.com owner=team repository=service",
		},
		{
			name:             "accepts scp shorthand",
			argument:         "git@github.com:team/service.git",
			expectValid:      true,
			expectedFragment: "protocol=ssh",
		},
		{
			name:             "rejects malformed url",
			argument:         "htp::/broken",
			expectValid:      false,
			expectedFragment: "suggestion: https://github.com/user/repo.git",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			builder := &RemoteCommandBuilder{}
			command, buildError := builder.Build()
			require.NoError(t, buildError)

			output, executionError := executeCommand(t, command, testCase.argument)
			if testCase.expectValid {
				require.NoError(t, executionError)
			} else {
				require.ErrorIs(t, executionError, ErrValidationFailed)
			}
			require.Contains(t, output, testCase.expectedFragment)
		})
	}
}

func TestPathCommandReportsVerdicts(t *testing.T) {
	builder := &PathCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output, executionError := executeCommand(t, command, "src/main.go")
	require.NoError(t, executionError)
	require.Contains(t, output, "VALID: src/main.go")

	command, buildError = builder.Build()
	require.NoError(t, buildError)

	output, executionError = executeCommand(t, command, "../escape/attempt")
	require.ErrorIs(t, executionError, ErrValidationFailed)
	require.Contains(t, output, "error:")
}

func TestStashCommandReportsVerdicts(t *testing.T) {
	builder := &StashCommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(t, buildError)

	output, executionError := executeCommand(t, command, "wip on login form")
	require.NoError(t, executionError)
	require.Contains(t, output, "VALID:")

	command, buildError = builder.Build()
	require.NoError(t, buildError)

	output, executionError = executeCommand(t, command, strings.Repeat("a", 501))
	require.ErrorIs(t, executionError, ErrValidationFailed)
	require.Contains(t, output, "error:")
}
