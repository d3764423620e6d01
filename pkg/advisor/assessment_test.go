package advisor

import (
	"testing"
)

func TestAssess(t *testing.T) {
	tests := []struct {
		name         string
		symptoms     []string
		language     string
		wantSeverity Severity
		wantSeek     bool
		wantRecs     int
	}{
		{
			name:         "no known symptoms",
			symptoms:     []string{"tired"},
			language:     "en",
			wantSeverity: SeverityLow,
			wantSeek:     false,
			wantRecs:     1, // default guidance
		},
		{
			name:         "single topic",
			symptoms:     []string{"fever"},
			language:     "en",
			wantSeverity: SeverityMedium,
			wantSeek:     false,
			wantRecs:     1,
		},
		{
			name:         "two topics still medium",
			symptoms:     []string{"fever", "cough"},
			language:     "en",
			wantSeverity: SeverityMedium,
			wantSeek:     false,
			wantRecs:     2,
		},
		{
			name:         "three topics grade high",
			symptoms:     []string{"fever", "headache", "cough"},
			language:     "en",
			wantSeverity: SeverityHigh,
			wantSeek:     true,
			wantRecs:     3,
		},
		{
			name:         "emergency keyword wins",
			symptoms:     []string{"fever", "chest pain"},
			language:     "en",
			wantSeverity: SeverityEmergency,
			wantSeek:     true,
			wantRecs:     1,
		},
		{
			name:         "hindi emergency keyword",
			symptoms:     []string{"सीने में दर्द"},
			language:     "hi",
			wantSeverity: SeverityEmergency,
			wantSeek:     true,
			wantRecs:     1,
		},
		{
			name:         "pain counts toward severity",
			symptoms:     []string{"fever", "headache", "pain"},
			language:     "en",
			wantSeverity: SeverityHigh,
			wantSeek:     true,
			wantRecs:     2, // pain has no canned reply of its own
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.symptoms, tt.language)

			if got.Severity != tt.wantSeverity {
				t.Errorf("Severity = %q, want %q", got.Severity, tt.wantSeverity)
			}
			if got.ShouldSeekMedicalAttention != tt.wantSeek {
				t.Errorf("ShouldSeekMedicalAttention = %v, want %v", got.ShouldSeekMedicalAttention, tt.wantSeek)
			}
			if len(got.Recommendations) != tt.wantRecs {
				t.Errorf("Recommendations count = %d, want %d", len(got.Recommendations), tt.wantRecs)
			}
			if len(got.Symptoms) != len(tt.symptoms) {
				t.Errorf("Symptoms echoed %d entries, want %d", len(got.Symptoms), len(tt.symptoms))
			}
		})
	}
}

func TestAssessUnknownLanguageFallsBack(t *testing.T) {
	got := Assess([]string{"fever"}, "fr")
	if got.Severity != SeverityMedium {
		t.Fatalf("Severity = %q, want %q", got.Severity, SeverityMedium)
	}
	if len(got.Recommendations) != 1 {
		t.Fatalf("Recommendations count = %d, want 1", len(got.Recommendations))
	}
}
