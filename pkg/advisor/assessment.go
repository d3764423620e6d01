package advisor

import (
	"strings"

	"arogya-chat-be/internal/constant"
)

type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityMedium    Severity = "medium"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

// Assessment is the rule-based verdict over a set of reported symptoms.
type Assessment struct {
	Symptoms                   []string
	Severity                   Severity
	Recommendations            []string
	ShouldSeekMedicalAttention bool
}

// Phrases that escalate straight to emergency regardless of topic matches.
var emergencyKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"shortness of breath",
	"unconscious",
	"severe bleeding",
	"seizure",
	"सीने में दर्द",
	"सांस लेने में तकलीफ",
	"ଛାତି ଯନ୍ତ୍ରଣା",
}

const emergencyAdvice = "Your symptoms may indicate a medical emergency. Please call your local emergency number or go to the nearest hospital immediately."

// Assess grades the combined symptom text: emergency keywords win outright,
// three or more matched topics grade high, at least one grades medium,
// otherwise low. Recommendations reuse the canned reply per matched topic in
// the requested language.
func Assess(symptoms []string, language string) Assessment {
	combined := strings.ToLower(strings.Join(symptoms, " "))

	table, ok := constant.AdvisorResponses[language]
	if !ok {
		table = constant.AdvisorResponses[constant.LanguageEnglish]
	}

	for _, kw := range emergencyKeywords {
		if strings.Contains(combined, kw) {
			return Assessment{
				Symptoms:                   symptoms,
				Severity:                   SeverityEmergency,
				Recommendations:            []string{emergencyAdvice},
				ShouldSeekMedicalAttention: true,
			}
		}
	}

	var recommendations []string
	matched := 0
	for _, topic := range []Topic{TopicFever, TopicHeadache, TopicCough, TopicPain} {
		if matchesTopic(combined, topic) {
			matched++
			if text, ok := table[string(topic)]; ok {
				recommendations = append(recommendations, text)
			}
		}
	}

	severity := SeverityLow
	seekAttention := false
	switch {
	case matched >= 3:
		severity = SeverityHigh
		seekAttention = true
	case matched >= 1:
		severity = SeverityMedium
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, table["default"])
	}

	return Assessment{
		Symptoms:                   symptoms,
		Severity:                   severity,
		Recommendations:            recommendations,
		ShouldSeekMedicalAttention: seekAttention,
	}
}
