package refname

import (
	"fmt"
	"strings"
)

const (
	sshSchemePrefixConstant          = "ssh://"
	gitSchemePrefixConstant          = "git://"
	httpsSchemePrefixConstant        = "https://"
	httpSchemePrefixConstant         = "http://"
	userHostDelimiterConstant        = "@"
	hostPathDelimiterConstant        = ":"
	gitDirectorySuffixConstant       = ".git"
	remoteParseErrorTemplateConstant = "%s: %s"
	unparsableRemoteMessageConstant  = "remote URL cannot be split into host, owner, and repository"
	emptyRemoteMessageConstant       = "remote URL is empty"
	unsupportedSchemeMessageConstant = "unsupported remote protocol"
)

// RemoteProtocol enumerates the transports a structured remote can carry.
type RemoteProtocol string

// Supported remote protocols.
const (
	RemoteProtocolSSH   RemoteProtocol = "ssh"
	RemoteProtocolHTTPS RemoteProtocol = "https"
	RemoteProtocolGit   RemoteProtocol = "git"
)

// RemoteParts is the structured form of a forge-hosted remote URL.
type RemoteParts struct {
	Protocol   RemoteProtocol
	Host       string
	Owner      string
	Repository string
}

// RemoteParseError indicates a remote string could not be decomposed.
type RemoteParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteParseError) Error() string {
	return fmt.Sprintf(remoteParseErrorTemplateConstant, parseError.Input, parseError.Message)
}

// ParseRemoteURL decomposes a remote URL into protocol, host, owner, and
// repository. It understands the same transport forms ValidateRemoteURL
// accepts, except local paths, which have no owner/repository structure.
func ParseRemoteURL(remote string) (RemoteParts, error) {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteParts{}, RemoteParseError{Input: remote, Message: emptyRemoteMessageConstant}
	}

	loweredRemote := strings.ToLower(trimmedRemote)
	switch {
	case strings.HasPrefix(loweredRemote, sshSchemePrefixConstant):
		return parseUserHostRemote(trimmedRemote[len(sshSchemePrefixConstant):], RemoteProtocolSSH)
	case strings.HasPrefix(loweredRemote, gitSchemePrefixConstant):
		return parseSchemeRemote(trimmedRemote[len(gitSchemePrefixConstant):], RemoteProtocolGit)
	case strings.HasPrefix(loweredRemote, httpsSchemePrefixConstant):
		return parseSchemeRemote(trimmedRemote[len(httpsSchemePrefixConstant):], RemoteProtocolHTTPS)
	case strings.HasPrefix(loweredRemote, httpSchemePrefixConstant):
		return parseSchemeRemote(trimmedRemote[len(httpSchemePrefixConstant):], RemoteProtocolHTTPS)
	case strings.Contains(trimmedRemote, userHostDelimiterConstant):
		return parseUserHostRemote(trimmedRemote, RemoteProtocolSSH)
	}

	return RemoteParts{}, RemoteParseError{Input: remote, Message: unparsableRemoteMessageConstant}
}

func parseUserHostRemote(remote string, protocol RemoteProtocol) (RemoteParts, error) {
	userSplitIndex := strings.Index(remote, userHostDelimiterConstant)
	if userSplitIndex == -1 {
		return RemoteParts{}, RemoteParseError{Input: remote, Message: unparsableRemoteMessageConstant}
	}

	hostAndPath := remote[userSplitIndex+1:]
	hostSplitIndex := strings.Index(hostAndPath, hostPathDelimiterConstant)
	if hostSplitIndex == -1 {
		hostSplitIndex = strings.Index(hostAndPath, slashLiteralConstant)
	}
	if hostSplitIndex == -1 {
		return RemoteParts{}, RemoteParseError{Input: remote, Message: unparsableRemoteMessageConstant}
	}

	host := hostAndPath[:hostSplitIndex]
	owner, repository, splitError := splitOwnerRepository(remote, hostAndPath[hostSplitIndex+1:])
	if splitError != nil {
		return RemoteParts{}, splitError
	}
	return RemoteParts{Protocol: protocol, Host: host, Owner: owner, Repository: repository}, nil
}

func parseSchemeRemote(remote string, protocol RemoteProtocol) (RemoteParts, error) {
	pathComponents := strings.Split(remote, slashLiteralConstant)
	if len(pathComponents) < 3 {
		return RemoteParts{}, RemoteParseError{Input: remote, Message: unparsableRemoteMessageConstant}
	}

	host := pathComponents[0]
	owner, repository, splitError := splitOwnerRepository(remote, strings.Join(pathComponents[1:], slashLiteralConstant))
	if splitError != nil {
		return RemoteParts{}, splitError
	}
	return RemoteParts{Protocol: protocol, Host: host, Owner: owner, Repository: repository}, nil
}

func splitOwnerRepository(input string, path string) (string, string, error) {
	segments := strings.Split(strings.Trim(path, slashLiteralConstant), slashLiteralConstant)
	if len(segments) < 2 {
		return "", "", RemoteParseError{Input: input, Message: unparsableRemoteMessageConstant}
	}

	repository := strings.TrimSuffix(segments[len(segments)-1], gitDirectorySuffixConstant)
	if len(repository) == 0 {
		return "", "", RemoteParseError{Input: input, Message: unparsableRemoteMessageConstant}
	}
	owner := strings.Join(segments[:len(segments)-1], slashLiteralConstant)
	return owner, repository, nil
}

// FormatRemoteURL rebuilds a textual remote URL from its structured form.
func FormatRemoteURL(parts RemoteParts) (string, error) {
	if len(strings.TrimSpace(parts.Host)) == 0 || len(strings.TrimSpace(parts.Owner)) == 0 || len(strings.TrimSpace(parts.Repository)) == 0 {
		return "", RemoteParseError{Input: parts.Host, Message: unparsableRemoteMessageConstant}
	}

	switch parts.Protocol {
	case RemoteProtocolSSH:
		return fmt.Sprintf("git@%s:%s/%s%s", parts.Host, parts.Owner, parts.Repository, gitDirectorySuffixConstant), nil
	case RemoteProtocolHTTPS:
		return fmt.Sprintf("%s%s/%s/%s%s", httpsSchemePrefixConstant, parts.Host, parts.Owner, parts.Repository, gitDirectorySuffixConstant), nil
	case RemoteProtocolGit:
		return fmt.Sprintf("%s%s/%s/%s%s", gitSchemePrefixConstant, parts.Host, parts.Owner, parts.Repository, gitDirectorySuffixConstant), nil
	default:
		return "", RemoteParseError{Input: string(parts.Protocol), Message: unsupportedSchemeMessageConstant}
	}
}
