package refname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFilePath(t *testing.T) {
	testCases := []struct {
		name          string
		candidate     string
		expectedValid bool
		errorFragment string
	}{
		{name: "simple_file", candidate: "cmd/main.go", expectedValid: true},
		{name: "dotted_name", candidate: "notes/foo..bar.txt", expectedValid: true},
		{name: "empty", candidate: "", expectedValid: false, errorFragment: "empty"},
		{name: "null_byte", candidate: "file\x00.txt", expectedValid: false, errorFragment: "null"},
		{name: "traversal_segment", candidate: "../outside", expectedValid: false, errorFragment: "traversal"},
		{name: "embedded_traversal", candidate: "docs/../secret", expectedValid: false, errorFragment: "traversal"},
		{name: "windows_traversal", candidate: "docs\\..\\secret", expectedValid: false, errorFragment: "traversal"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(subTest *testing.T) {
			result := ValidateFilePath(testCase.candidate)
			require.Equal(subTest, testCase.expectedValid, result.Valid)
			if !testCase.expectedValid {
				require.Contains(subTest, result.Error, testCase.errorFragment)
			}
		})
	}
}

func TestValidateStashMessage(t *testing.T) {
	longMessage := strings.Repeat("x", 501)

	overlong := ValidateStashMessage(longMessage)
	require.False(t, overlong.Valid)
	require.Contains(t, overlong.Error, "500")

	empty := ValidateStashMessage("   ")
	require.True(t, empty.Valid)
	require.Len(t, empty.Suggestions, 1)

	ordinary := ValidateStashMessage("wip: refactor parser")
	require.True(t, ordinary.Valid)
	require.Empty(t, ordinary.Suggestions)
}
