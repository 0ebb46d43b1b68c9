package refname

import (
	"strings"

	"github.com/sitharaj88/git-nova/internal/rules"
)

const (
	filePathEmptyMessageConstant     = "file path cannot be empty"
	filePathNullByteMessageConstant  = "file path cannot contain null bytes"
	filePathTraversalMessageConstant = "file path cannot contain .. traversal segments"
	nullByteLiteralConstant          = "\x00"
	parentSegmentLiteralConstant     = ".."
	backslashLiteralConstant         = "\\"
)

// ValidateFilePath checks a repository-relative file path. Traversal is
// matched by whole segment so names like foo..bar stay valid.
func ValidateFilePath(path string) rules.ValidationResult {
	trimmedPath := strings.TrimSpace(path)
	if len(trimmedPath) == 0 {
		return rules.Failure(filePathEmptyMessageConstant)
	}
	if strings.Contains(trimmedPath, nullByteLiteralConstant) {
		return rules.Failure(filePathNullByteMessageConstant)
	}

	normalizedPath := strings.ReplaceAll(trimmedPath, backslashLiteralConstant, slashLiteralConstant)
	for _, pathSegment := range strings.Split(normalizedPath, slashLiteralConstant) {
		if pathSegment == parentSegmentLiteralConstant {
			return rules.Failure(filePathTraversalMessageConstant)
		}
	}

	return rules.Success()
}
