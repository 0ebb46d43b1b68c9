package commitmsg

import (
	"regexp"
	"strings"
)

const (
	lineSeparatorConstant      = "\n"
	firstBodyLineIndexConstant = 2
)

// subjectGrammarPattern matches a conventional commit subject line:
// type, optional (scope), optional breaking marker, colon, description.
var subjectGrammarPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?(!)?:\s*(.+)$`)

// footerTokenPattern marks the start of the footer block. Once a line
// matches, every remaining line belongs to the footer. The heuristic can
// claim a body line that happens to look like "Note: see below"; this is a
// known limitation kept for compatibility with existing messages.
var footerTokenPattern = regexp.MustCompile(`^[\w-]+:\s|^[\w-]+\s#`)

// ParsedCommit is the structured form of a conventional commit message.
type ParsedCommit struct {
	Type        string `yaml:"type"`
	Scope       string `yaml:"scope,omitempty"`
	Breaking    bool   `yaml:"breaking"`
	Description string `yaml:"description"`
	Body        string `yaml:"body,omitempty"`
	Footer      string `yaml:"footer,omitempty"`
}

// Parse extracts the structured fields of a conventional commit message.
// A message whose subject does not match the grammar yields nil; that is
// not an error, callers decide whether non-conventional messages are
// acceptable.
func Parse(message string) *ParsedCommit {
	messageLines := strings.Split(message, lineSeparatorConstant)
	subjectMatch := subjectGrammarPattern.FindStringSubmatch(strings.TrimSpace(messageLines[0]))
	if subjectMatch == nil {
		return nil
	}

	parsed := &ParsedCommit{
		Type:        subjectMatch[1],
		Scope:       subjectMatch[2],
		Breaking:    subjectMatch[3] != "",
		Description: subjectMatch[4],
	}

	// Line 2 is the conventional blank separator, never content.
	var bodyLines []string
	var footerLines []string
	footerStarted := false
	for lineIndex := firstBodyLineIndexConstant; lineIndex < len(messageLines); lineIndex++ {
		currentLine := messageLines[lineIndex]
		if !footerStarted && footerTokenPattern.MatchString(currentLine) {
			footerStarted = true
		}
		if footerStarted {
			footerLines = append(footerLines, currentLine)
		} else {
			bodyLines = append(bodyLines, currentLine)
		}
	}

	parsed.Body = strings.TrimSpace(strings.Join(bodyLines, lineSeparatorConstant))
	parsed.Footer = strings.TrimSpace(strings.Join(footerLines, lineSeparatorConstant))

	return parsed
}
