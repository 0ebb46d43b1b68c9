// Package policy loads per-repository naming and commit-message policy
// files. A policy file overrides the application configuration for a
// single invocation; malformed files and patterns fail at load time so
// the per-call validation API never observes bad configuration.
package policy
