package commitmsg

import "strings"

const (
	scopeOpenLiteralConstant      = "("
	scopeCloseLiteralConstant     = ")"
	breakingMarkerLiteralConstant = "!"
	subjectDelimiterConstant      = ": "
	blockSeparatorConstant        = "\n\n"
)

// CommitSpec carries the structured fields a generated message is built
// from. It mirrors ParsedCommit so the two functions round-trip.
type CommitSpec struct {
	Type        string
	Scope       string
	Description string
	Body        string
	Breaking    bool
	Footer      string
}

// Generate renders a conventional commit message from structured fields.
// Feeding Parse's output back through Generate reproduces an equivalent
// message.
func Generate(spec CommitSpec) string {
	var builder strings.Builder
	builder.WriteString(spec.Type)
	if len(spec.Scope) > 0 {
		builder.WriteString(scopeOpenLiteralConstant)
		builder.WriteString(spec.Scope)
		builder.WriteString(scopeCloseLiteralConstant)
	}
	if spec.Breaking {
		builder.WriteString(breakingMarkerLiteralConstant)
	}
	builder.WriteString(subjectDelimiterConstant)
	builder.WriteString(spec.Description)

	if len(spec.Body) > 0 {
		builder.WriteString(blockSeparatorConstant)
		builder.WriteString(spec.Body)
	}
	if len(spec.Footer) > 0 {
		builder.WriteString(blockSeparatorConstant)
		builder.WriteString(spec.Footer)
	}

	return builder.String()
}
