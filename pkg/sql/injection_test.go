package sql

import (
	"testing"
)

func TestCheckPromptForInjection(t *testing.T) {
	tests := []struct {
		name       string
		prompt     string
		wantDetect bool
	}{
		{
			name:       "plain question",
			prompt:     "List all flights departing from JFK after 6pm",
			wantDetect: false,
		},
		{
			name:       "classic injection payload",
			prompt:     "'; DROP TABLE bookings--",
			wantDetect: true,
		},
		{
			name:       "tautology payload",
			prompt:     "' OR 1=1 --",
			wantDetect: true,
		},
		{
			name:       "empty prompt",
			prompt:     "",
			wantDetect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckPromptForInjection(tt.prompt)
			if (result != nil) != tt.wantDetect {
				t.Errorf("CheckPromptForInjection(%q) = %v, want detection %v", tt.prompt, result, tt.wantDetect)
			}
			if result != nil && result.Fingerprint == "" {
				t.Error("detection must carry a fingerprint")
			}
		})
	}
}
