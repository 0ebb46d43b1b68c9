package refname

import "strings"

const (
	forbiddenCharactersConstant        = "~^:?*[]@{\\"
	forbiddenCharactersDisplayConstant = `~ ^ : ? * [ ] @ { \`
)

func containsForbiddenCharacter(candidate string) bool {
	return strings.ContainsAny(candidate, forbiddenCharactersConstant)
}

func containsWhitespaceCharacter(candidate string) bool {
	for _, character := range candidate {
		switch character {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		}
	}
	return false
}

func containsControlCharacter(candidate string) bool {
	for _, character := range candidate {
		if character < 0x20 || character == 0x7f {
			return true
		}
	}
	return false
}
