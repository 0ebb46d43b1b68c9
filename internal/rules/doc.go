// Package rules defines the shared validation result shape returned by the
// ref-name and commit-message engines. A result either carries a single
// blocking error or a valid verdict with accumulated warnings and
// suggestions; the two states never mix.
package rules
