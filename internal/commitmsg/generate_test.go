package commitmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateBuildsSubjectForms(t *testing.T) {
	testCases := []struct {
		name     string
		spec     CommitSpec
		expected string
	}{
		{
			name:     "minimal",
			spec:     CommitSpec{Type: "fix", Description: "handle nil input"},
			expected: "fix: handle nil input",
		},
		{
			name:     "with_scope",
			spec:     CommitSpec{Type: "feat", Scope: "parser", Description: "add footer detection"},
			expected: "feat(parser): add footer detection",
		},
		{
			name:     "breaking",
			spec:     CommitSpec{Type: "feat", Scope: "api", Breaking: true, Description: "remove v1 endpoints"},
			expected: "feat(api)!: remove v1 endpoints",
		},
		{
			name:     "with_body_and_footer",
			spec:     CommitSpec{Type: "fix", Description: "retry on timeout", Body: "The client now retries twice.", Footer: "Fixes #99"},
			expected: "fix: retry on timeout\n\nThe client now retries twice.\n\nFixes #99",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expected, Generate(testCase.spec))
		})
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	specs := []CommitSpec{
		{Type: "feat", Scope: "auth", Description: "add token refresh"},
		{Type: "fix", Description: "guard empty subject", Body: "Previously the first line was read unconditionally."},
		{Type: "refactor", Scope: "engine", Breaking: true, Description: "split validator and parser", Footer: "BREAKING-CHANGE: validator API moved"},
		{Type: "chore", Description: "bump deps", Body: "Routine update.", Footer: "Reviewed-by: maintainer"},
		{Type: "update", Description: "non-standard type survives the trip"},
	}

	for _, spec := range specs {
		parsed := Parse(Generate(spec))
		require.NotNil(t, parsed, "generated message for %v did not parse", spec)
		require.Equal(t, spec.Type, parsed.Type)
		require.Equal(t, spec.Scope, parsed.Scope)
		require.Equal(t, spec.Breaking, parsed.Breaking)
		require.Equal(t, spec.Description, parsed.Description)
		require.Equal(t, spec.Body, parsed.Body)
		require.Equal(t, spec.Footer, parsed.Footer)
	}
}
