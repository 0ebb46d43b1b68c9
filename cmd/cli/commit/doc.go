// Package commit wires the commit-message commands: check-commit,
// parse-commit, and format-commit. Messages arrive as an argument, a
// file, or stdin; results are rendered as text or YAML.
package commit
