package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult contains the result of an injection check on a
// user prompt.
type InjectionCheckResult struct {
	Fingerprint string // libinjection fingerprint of the detected pattern
	Input       string // The text that was checked
}

// CheckPromptForInjection uses libinjection to detect SQL injection
// patterns embedded in a natural-language prompt. Detection is advisory:
// the pipeline logs it and continues, since the generated statement is
// executed verbatim either way.
//
// Returns nil if no injection pattern is detected.
func CheckPromptForInjection(prompt string) *InjectionCheckResult {
	isSQLi, fingerprint := libinjection.IsSQLi(prompt)
	if !isSQLi {
		return nil
	}

	return &InjectionCheckResult{
		Fingerprint: string(fingerprint),
		Input:       prompt,
	}
}
