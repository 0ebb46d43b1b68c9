package commitmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigurationValuesUseRootKey(t *testing.T) {
	values := DefaultConfigurationValues("tools.commit")

	require.Equal(t, 72, values["tools.commit.max_subject_length"])
	require.Equal(t, 100, values["tools.commit.max_body_line_length"])
	require.Equal(t, false, values["tools.commit.require_type"])
	require.Equal(t, DefaultCommitTypes(), values["tools.commit.allowed_types"])
}

func TestMessageOptionsAppliesOverrides(t *testing.T) {
	configuration := CommandConfiguration{
		MaxSubjectLength: 50,
		RequireType:      true,
		AllowedTypes:     []string{" feat ", "fix"},
		AllowedScopes:    []string{"core"},
	}

	options := configuration.MessageOptions()
	require.Equal(t, 50, options.MaxSubjectLength)
	require.Equal(t, defaultMaxBodyLineLengthConstant, options.MaxBodyLineLength)
	require.True(t, options.RequireType)
	require.Equal(t, []string{"feat", "fix"}, options.AllowedTypes)
	require.Equal(t, []string{"core"}, options.AllowedScopes)
}

func TestMessageOptionsFallsBackToDefaultTypes(t *testing.T) {
	options := CommandConfiguration{}.MessageOptions()
	require.Equal(t, DefaultCommitTypes(), options.AllowedTypes)
	require.Equal(t, defaultMaxSubjectLengthConstant, options.MaxSubjectLength)
}
