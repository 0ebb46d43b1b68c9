package rules

// ValidationResult reports the outcome of a single validation call.
//
// Error is populated only when Valid is false; Warnings and Suggestions
// accumulate only after every blocking check has passed, except that a
// failure may carry Suggestions offering corrected alternatives.
type ValidationResult struct {
	Valid       bool
	Error       string
	Warnings    []string
	Suggestions []string
}

// Failure builds an invalid result with the supplied error message and
// optional corrective suggestions.
func Failure(message string, suggestions ...string) ValidationResult {
	result := ValidationResult{Valid: false, Error: message}
	if len(suggestions) > 0 {
		result.Suggestions = append(result.Suggestions, suggestions...)
	}
	return result
}

// Success builds a valid result with empty warning and suggestion sequences.
func Success() ValidationResult {
	return ValidationResult{Valid: true, Warnings: []string{}, Suggestions: []string{}}
}

// AddWarning records a non-fatal observation on a valid result.
func (result *ValidationResult) AddWarning(message string) {
	result.Warnings = append(result.Warnings, message)
}

// AddSuggestion records an actionable alternative on the result.
func (result *ValidationResult) AddSuggestion(message string) {
	result.Suggestions = append(result.Suggestions, message)
}
