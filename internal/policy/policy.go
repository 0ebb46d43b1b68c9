package policy

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sitharaj88/git-nova/internal/commitmsg"
	"github.com/sitharaj88/git-nova/internal/refname"
)

const (
	// DefaultFileName is the policy file looked up in a repository root.
	DefaultFileName = ".gitnova.yaml"

	policyReadErrorTemplateConstant    = "unable to read policy file %s: %w"
	policyParseErrorTemplateConstant   = "unable to parse policy file %s: %w"
	policyPatternErrorTemplateConstant = "policy file %s declares an invalid pattern %q: %w"
)

// Document is the root of a policy file.
type Document struct {
	Branch BranchPolicy `yaml:"branch"`
	Commit CommitPolicy `yaml:"commit"`
}

// BranchPolicy overrides branch name validation options. Pointer fields
// distinguish "absent" from an explicit false.
type BranchPolicy struct {
	AllowSlash    *bool    `yaml:"allow_slash"`
	MaxLength     int      `yaml:"max_length"`
	ReservedNames []string `yaml:"reserved_names"`
	Pattern       string   `yaml:"pattern"`
	Prefixes      []string `yaml:"prefixes"`
}

// CommitPolicy overrides commit message validation options.
type CommitPolicy struct {
	MaxSubjectLength  int      `yaml:"max_subject_length"`
	MaxBodyLineLength int      `yaml:"max_body_line_length"`
	RequireType       *bool    `yaml:"require_type"`
	RequireScope      *bool    `yaml:"require_scope"`
	AllowedTypes      []string `yaml:"allowed_types"`
	AllowedScopes     []string `yaml:"allowed_scopes"`
}

// Load reads and parses a policy file.
func Load(policyFilePath string) (Document, error) {
	contentBytes, readError := os.ReadFile(policyFilePath)
	if readError != nil {
		return Document{}, fmt.Errorf(policyReadErrorTemplateConstant, policyFilePath, readError)
	}

	var document Document
	if unmarshalError := yaml.Unmarshal(contentBytes, &document); unmarshalError != nil {
		return Document{}, fmt.Errorf(policyParseErrorTemplateConstant, policyFilePath, unmarshalError)
	}

	if pattern := strings.TrimSpace(document.Branch.Pattern); len(pattern) > 0 {
		if _, compileError := regexp.Compile(pattern); compileError != nil {
			return Document{}, fmt.Errorf(policyPatternErrorTemplateConstant, policyFilePath, pattern, compileError)
		}
	}

	return document, nil
}

// BranchOptions layers the policy's branch section over base options.
func (document Document) BranchOptions(baseOptions refname.BranchNameOptions) (refname.BranchNameOptions, error) {
	layered := baseOptions
	branchPolicy := document.Branch

	if branchPolicy.AllowSlash != nil {
		layered.AllowSlash = *branchPolicy.AllowSlash
	}
	if branchPolicy.MaxLength > 0 {
		layered.MaxLength = branchPolicy.MaxLength
	}
	if branchPolicy.ReservedNames != nil {
		layered.ReservedNames = branchPolicy.ReservedNames
	}
	if branchPolicy.Prefixes != nil {
		layered.EnforcePrefix = branchPolicy.Prefixes
	}
	if pattern := strings.TrimSpace(branchPolicy.Pattern); len(pattern) > 0 {
		compiledPattern, compileError := regexp.Compile(pattern)
		if compileError != nil {
			return refname.BranchNameOptions{}, compileError
		}
		layered.Pattern = compiledPattern
	}

	return layered, nil
}

// CommitOptions layers the policy's commit section over base options.
func (document Document) CommitOptions(baseOptions commitmsg.MessageOptions) commitmsg.MessageOptions {
	layered := baseOptions
	commitPolicy := document.Commit

	if commitPolicy.MaxSubjectLength > 0 {
		layered.MaxSubjectLength = commitPolicy.MaxSubjectLength
	}
	if commitPolicy.MaxBodyLineLength > 0 {
		layered.MaxBodyLineLength = commitPolicy.MaxBodyLineLength
	}
	if commitPolicy.RequireType != nil {
		layered.RequireType = *commitPolicy.RequireType
	}
	if commitPolicy.RequireScope != nil {
		layered.RequireScope = *commitPolicy.RequireScope
	}
	if commitPolicy.AllowedTypes != nil {
		layered.AllowedTypes = commitPolicy.AllowedTypes
	}
	if commitPolicy.AllowedScopes != nil {
		layered.AllowedScopes = commitPolicy.AllowedScopes
	}

	return layered
}
