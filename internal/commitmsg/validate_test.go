package commitmsg

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestValidateMessageRejectsEmptyInput(t *testing.T) {
	for _, message := range []string{"", "   ", "\n\nbody without subject"} {
		result := ValidateMessage(message, DefaultMessageOptions())
		require.False(t, result.Valid, "expected %q to fail", message)
	}
}

func TestValidateMessageSubjectLength(t *testing.T) {
	longSubject := strings.Repeat("A", 100)

	result := ValidateMessage(longSubject, DefaultMessageOptions())
	require.False(t, result.Valid)
	require.Contains(t, result.Error, "72")
	require.Len(t, result.Suggestions, 1)
	require.Len(t, result.Suggestions[0], 72)
	require.True(t, strings.HasSuffix(result.Suggestions[0], "..."))
}

func TestValidateMessageTinySubjectLimits(t *testing.T) {
	testCases := []struct {
		name             string
		maxSubjectLength int
		expectSuggestion bool
	}{
		{name: "limit_one", maxSubjectLength: 1, expectSuggestion: false},
		{name: "limit_two", maxSubjectLength: 2, expectSuggestion: false},
		{name: "limit_three", maxSubjectLength: 3, expectSuggestion: false},
		{name: "limit_four", maxSubjectLength: 4, expectSuggestion: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(subTest *testing.T) {
			options := DefaultMessageOptions()
			options.MaxSubjectLength = testCase.maxSubjectLength

			result := ValidateMessage("abcd efgh", options)
			require.False(subTest, result.Valid)
			require.Contains(subTest, result.Error, "maximum length")
			if testCase.expectSuggestion {
				require.Equal(subTest, []string{"a..."}, result.Suggestions)
			} else {
				require.Empty(subTest, result.Suggestions)
			}
		})
	}
}

func TestValidateMessageTruncationRespectsRuneBoundaries(t *testing.T) {
	// Byte index 3 falls inside the two-byte "ï"; the cut backs up to the
	// previous rune boundary instead of emitting invalid UTF-8.
	options := DefaultMessageOptions()
	options.MaxSubjectLength = 6

	result := ValidateMessage("naïve rename of the parser", options)
	require.False(t, result.Valid)
	require.Len(t, result.Suggestions, 1)
	require.True(t, utf8.ValidString(result.Suggestions[0]))
	require.Equal(t, "na...", result.Suggestions[0])
}

func TestValidateMessageSubjectLengthOutranksGrammar(t *testing.T) {
	// A conventional subject that is also too long reports the length
	// failure; the check order is a documented contract.
	message := "feat(scope): " + strings.Repeat("x", 80)
	options := DefaultMessageOptions()
	options.RequireType = true

	result := ValidateMessage(message, options)
	require.False(t, result.Valid)
	require.Contains(t, result.Error, "maximum length")
}

func TestValidateMessageTypeEnforcement(t *testing.T) {
	requireTypeOptions := DefaultMessageOptions()
	requireTypeOptions.RequireType = true

	testCases := []struct {
		name          string
		message       string
		options       MessageOptions
		errorFragment string
	}{
		{
			name:          "missing_grammar",
			message:       "Add new feature",
			options:       requireTypeOptions,
			errorFragment: "type(scope): description",
		},
		{
			name:          "unknown_type",
			message:       "update: tweak defaults",
			options:       requireTypeOptions,
			errorFragment: `commit type "update" is not allowed`,
		},
		{
			name:          "missing_scope",
			message:       "feat: no scope given",
			options:       withRequiredScope(requireTypeOptions),
			errorFragment: "must include a (scope)",
		},
		{
			name:          "scope_outside_allow_list",
			message:       "feat(ui): change palette",
			options:       withAllowedScopes(requireTypeOptions, "core", "api"),
			errorFragment: `commit scope "ui" is not allowed`,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(subTest *testing.T) {
			result := ValidateMessage(testCase.message, testCase.options)
			require.False(subTest, result.Valid)
			require.Contains(subTest, result.Error, testCase.errorFragment)
		})
	}
}

func TestValidateMessageTypeNotEnforcedByDefault(t *testing.T) {
	result := ValidateMessage("update: tweak defaults", DefaultMessageOptions())
	require.True(t, result.Valid)
}

func TestValidateMessageBodyWarnings(t *testing.T) {
	missingSeparator := "feat: add endpoint\nbody follows immediately"
	separatorResult := ValidateMessage(missingSeparator, DefaultMessageOptions())
	require.True(t, separatorResult.Valid)
	require.Contains(t, separatorResult.Warnings, "subject and body should be separated by a blank line")

	longBodyLine := "feat: add endpoint\n\n" + strings.Repeat("b", 120)
	lengthResult := ValidateMessage(longBodyLine, DefaultMessageOptions())
	require.True(t, lengthResult.Valid)
	require.Contains(t, lengthResult.Warnings, "line 3 exceeds 100 characters")
}

func TestValidateMessageStyleWarnings(t *testing.T) {
	periodResult := ValidateMessage("feat: add endpoint.", DefaultMessageOptions())
	require.True(t, periodResult.Valid)
	require.Contains(t, periodResult.Warnings, "commit subject should not end with a period")

	freeformResult := ValidateMessage("add endpoint", DefaultMessageOptions())
	require.True(t, freeformResult.Valid)
	require.Contains(t, freeformResult.Warnings, "commit subject should start with a capital letter")
	require.Contains(t, freeformResult.Suggestions, "consider the Conventional Commits format: type(scope): description")

	// Capitalization is only expected for freeform subjects; a
	// conventional subject's lowercase type is fine.
	conventionalResult := ValidateMessage("feat: lowercase type", DefaultMessageOptions())
	require.True(t, conventionalResult.Valid)
	require.Empty(t, conventionalResult.Warnings)
}

func withRequiredScope(options MessageOptions) MessageOptions {
	options.RequireScope = true
	return options
}

func withAllowedScopes(options MessageOptions, scopes ...string) MessageOptions {
	options.AllowedScopes = scopes
	return options
}
