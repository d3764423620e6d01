// Package advisor holds the rule-based guidance engine: topic classification,
// canned reply selection and session title derivation. Everything here is a
// pure function over the keyword tables so the API handler, the repair pass
// and the client simulations all share one implementation.
package advisor

import (
	"strings"

	"arogya-chat-be/internal/constant"
)

type Topic string

const (
	TopicFever    Topic = "fever"
	TopicHeadache Topic = "headache"
	TopicCough    Topic = "cough"
	TopicPain     Topic = "pain"
	TopicNone     Topic = "none"
)

// Trigger literals per topic. Each topic mixes English, Hindi and Odia
// substrings so a mixed-language message still matches.
var topicKeywords = map[Topic][]string{
	TopicFever:    {"fever", "बुखार", "ଜ୍ୱର"},
	TopicHeadache: {"headache", "सिर दर्द", "ମୁଣ୍ଡ ବ୍ୟଥା"},
	TopicCough:    {"cough", "खांसी", "କାଶ"},
	TopicPain:     {"pain", "दर्द", "ବ୍ୟଥା"},
}

// replyPriority is fixed: first match wins, no scoring. Pain is deliberately
// absent here; it only participates in title derivation.
var replyPriority = []Topic{TopicFever, TopicHeadache, TopicCough}

var topicTitles = map[Topic]string{
	TopicFever:    "Fever Query",
	TopicHeadache: "Headache Consultation",
	TopicCough:    "Cough Treatment",
	TopicPain:     "Pain Management",
}

func matchesTopic(lowered string, topic Topic) bool {
	for _, kw := range topicKeywords[topic] {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Classify returns the reply topic for a message, or TopicNone.
func Classify(text string) Topic {
	lowered := strings.ToLower(text)
	for _, topic := range replyPriority {
		if matchesTopic(lowered, topic) {
			return topic
		}
	}
	return TopicNone
}

// Reply selects the canned guidance text for a message in the session's
// language. Unknown languages fall back to the English table.
func Reply(text, language string) string {
	table, ok := constant.AdvisorResponses[language]
	if !ok {
		table = constant.AdvisorResponses[constant.LanguageEnglish]
	}
	if topic := Classify(text); topic != TopicNone {
		return table[string(topic)]
	}
	return table["default"]
}

// Title derives a session title from the first user message. Topic keywords
// (pain included) map to fixed labels; anything else falls back to the first
// three words, cut at 30 characters with an ellipsis when the full message
// runs longer.
func Title(firstMessage string) string {
	lowered := strings.ToLower(strings.TrimSpace(firstMessage))

	for _, topic := range []Topic{TopicFever, TopicHeadache, TopicCough, TopicPain} {
		if matchesTopic(lowered, topic) {
			return topicTitles[topic]
		}
	}

	words := strings.Split(firstMessage, " ")
	if len(words) > 3 {
		words = words[:3]
	}
	title := strings.Join(words, " ")
	if runes := []rune(title); len(runes) > 30 {
		title = string(runes[:30])
	}
	if len([]rune(firstMessage)) > 30 {
		title += "..."
	}
	return title
}

// ClassifyAndReply is the single entry point for callers that need the full
// verdict on a message: its topic, the reply to send and the title the
// session would get if this were its first message.
func ClassifyAndReply(text, language string) (Topic, string, string) {
	return Classify(text), Reply(text, language), Title(text)
}
