package commitmsg

// CommitType identifies the kind of change a conventional commit records.
type CommitType string

// The eleven conventional commit types.
const (
	CommitTypeFeat     CommitType = "feat"
	CommitTypeFix      CommitType = "fix"
	CommitTypeDocs     CommitType = "docs"
	CommitTypeStyle    CommitType = "style"
	CommitTypeRefactor CommitType = "refactor"
	CommitTypePerf     CommitType = "perf"
	CommitTypeTest     CommitType = "test"
	CommitTypeBuild    CommitType = "build"
	CommitTypeCI       CommitType = "ci"
	CommitTypeChore    CommitType = "chore"
	CommitTypeRevert   CommitType = "revert"
)

// DefaultCommitTypes returns the conventional types in canonical order.
func DefaultCommitTypes() []string {
	return []string{
		string(CommitTypeFeat),
		string(CommitTypeFix),
		string(CommitTypeDocs),
		string(CommitTypeStyle),
		string(CommitTypeRefactor),
		string(CommitTypePerf),
		string(CommitTypeTest),
		string(CommitTypeBuild),
		string(CommitTypeCI),
		string(CommitTypeChore),
		string(CommitTypeRevert),
	}
}
