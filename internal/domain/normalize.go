package domain

import (
	"regexp"
	"strings"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// honorificPrefix matches a leading title. A bare title with no period or
// space after it is part of the name ("Drew", "Msonthi").
var honorificPrefix = regexp.MustCompile(`^(mrs|mr|ms|dr|prof|engr)(\.\s*|\s+)`)

// NormalizeName reduces a person's name to the form used for duplicate
// comparison: lowercase, no leading honorific, no periods, single spaces.
//
//	NormalizeName("Mr. John A. Doe") == "john a doe"
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = honorificPrefix.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, ".", " ")
	return strings.Join(strings.Fields(name), " ")
}

// PhoneDigits strips everything but ASCII digits from a phone entry.
func PhoneDigits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for i := 0; i < len(phone); i++ {
		if c := phone[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PhoneDigitSet returns the distinct non-empty digit strings of phones.
func PhoneDigitSet(phones []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phones))
	for _, p := range phones {
		if d := PhoneDigits(p); d != "" {
			set[d] = struct{}{}
		}
	}
	return set
}

// CleanPhones trims each entry and drops empty ones, keeping order.
func CleanPhones(phones []string) []string {
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
