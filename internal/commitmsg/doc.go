// Package commitmsg validates commit messages, parses Conventional
// Commits into structured fields, and generates compliant messages from
// structured input. Parsing and validation are deliberately separate
// concerns: a message with an unknown type still parses, so callers can
// report "detected type X, not in allow-list" instead of a blunt failure.
package commitmsg
