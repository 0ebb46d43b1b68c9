package refname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRemoteURLDecomposesTransports(t *testing.T) {
	testCases := []struct {
		name     string
		remote   string
		expected RemoteParts
	}{
		{
			name:     "scp_shorthand",
			remote:   "git@github.com:user/repo.git",
			expected: RemoteParts{Protocol: RemoteProtocolSSH, Host: "github.com", Owner: "user", Repository: "repo"},
		},
		{
			name:     "ssh_scheme",
			remote:   "ssh://git@gitlab.com/group/project.git",
			expected: RemoteParts{Protocol: RemoteProtocolSSH, Host: "gitlab.com", Owner: "group", Repository: "project"},
		},
		{
			name:     "https",
			remote:   "https://github.com/user/repo.git",
			expected: RemoteParts{Protocol: RemoteProtocolHTTPS, Host: "github.com", Owner: "user", Repository: "repo"},
		},
		{
			name:     "https_without_suffix",
			remote:   "https://github.com/user/repo",
			expected: RemoteParts{Protocol: RemoteProtocolHTTPS, Host: "github.com", Owner: "user", Repository: "repo"},
		},
		{
			name:     "git_scheme",
			remote:   "git://example.com/mirror/repo.git",
			expected: RemoteParts{Protocol: RemoteProtocolGit, Host: "example.com", Owner: "mirror", Repository: "repo"},
		},
		{
			name:     "nested_group",
			remote:   "https://gitlab.com/group/subgroup/project.git",
			expected: RemoteParts{Protocol: RemoteProtocolHTTPS, Host: "gitlab.com", Owner: "group/subgroup", Repository: "project"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(subTest *testing.T) {
			parts, parseError := ParseRemoteURL(testCase.remote)
			require.NoError(subTest, parseError)
			require.Equal(subTest, testCase.expected, parts)
		})
	}
}

func TestParseRemoteURLRejectsUnstructuredInput(t *testing.T) {
	for _, remote := range []string{"", "not-a-remote", "https://host-only", "/srv/git/project"} {
		_, parseError := ParseRemoteURL(remote)
		require.Error(t, parseError, "expected %q to fail", remote)
	}
}

func TestFormatRemoteURLRoundTripsParse(t *testing.T) {
	remotes := []string{
		"git@github.com:user/repo.git",
		"https://github.com/user/repo.git",
		"git://example.com/mirror/repo.git",
	}

	for _, remote := range remotes {
		parts, parseError := ParseRemoteURL(remote)
		require.NoError(t, parseError)

		formatted, formatError := FormatRemoteURL(parts)
		require.NoError(t, formatError)
		require.Equal(t, remote, formatted)
	}
}

func TestFormatRemoteURLRejectsIncompleteParts(t *testing.T) {
	_, formatError := FormatRemoteURL(RemoteParts{Protocol: RemoteProtocolHTTPS, Host: "github.com"})
	require.Error(t, formatError)

	_, protocolError := FormatRemoteURL(RemoteParts{Protocol: RemoteProtocol("svn"), Host: "h", Owner: "o", Repository: "r"})
	require.Error(t, protocolError)
}
