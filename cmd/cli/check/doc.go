// Package check wires the ref-name validation commands: check-branch,
// sanitize-branch, check-tag, check-remote, check-path, and check-stash.
// Each command resolves options from the application configuration, an
// optional policy file, and flags, calls the refname engine once, and
// renders the result.
package check
