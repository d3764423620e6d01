package advisor

import (
	"strings"
	"testing"

	"arogya-chat-be/internal/constant"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Topic
	}{
		{"english fever", "I have a fever today", TopicFever},
		{"hindi fever", "मुझे बुखार है", TopicFever},
		{"odia fever", "ମୋର ଜ୍ୱର ହୋଇଛି", TopicFever},
		{"english headache", "terrible headache since morning", TopicHeadache},
		{"hindi headache", "सिर दर्द हो रहा है", TopicHeadache},
		{"english cough", "dry cough at night", TopicCough},
		{"uppercase match", "I Have A FEVER", TopicFever},
		{"fever beats headache", "fever and headache together", TopicFever},
		{"headache beats cough", "headache with a cough", TopicHeadache},
		{"pain never classifies", "knee pain for a week", TopicNone},
		{"no match", "tell me about nutrition", TopicNone},
		{"empty", "", TopicNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestReply(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		language string
		wantKey  string
		wantLang string
	}{
		{"english fever", "I have a fever", "en", "fever", "en"},
		{"hindi cough", "खांसी हो रही है", "hi", "cough", "hi"},
		{"odia headache", "ମୁଣ୍ଡ ବ୍ୟଥା", "od", "headache", "od"},
		{"default reply", "what should I eat", "hi", "default", "hi"},
		{"unknown language falls back to english", "I have a fever", "fr", "fever", "en"},
		{"pain gets default reply", "back pain", "en", "default", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reply(tt.text, tt.language)
			want := constant.AdvisorResponses[tt.wantLang][tt.wantKey]
			if got != want {
				t.Errorf("Reply(%q, %q) = %q, want %s/%s table entry", tt.text, tt.language, got, tt.wantLang, tt.wantKey)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		first string
		want  string
	}{
		{"fever label", "I have a fever today", "Fever Query"},
		{"headache label", "my headache will not stop", "Headache Consultation"},
		{"cough label", "cough since last week", "Cough Treatment"},
		{"pain label", "severe pain in my back", "Pain Management"},
		{"first three words", "Let's talk about diet", "Let's talk about"},
		{"short message verbatim", "Hello there", "Hello there"},
		{"long message gets ellipsis", "What are some good exercises for staying healthy", "What are some..."},
		{"hindi fever label", "मुझे बुखार है", "Fever Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.first); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.first, got, tt.want)
			}
		})
	}
}

func TestTitleLengthCap(t *testing.T) {
	long := strings.Repeat("abcdefghijklmnop", 4) // one 64-char word
	got := Title(long)
	if want := long[:30] + "..."; got != want {
		t.Errorf("Title(long word) = %q, want %q", got, want)
	}
}
