package store

import "strings"

// NormalizePhoneNumber brings a number to the E.164 form the voice providers send,
// so a number typed in the settings matches the called number of a webhook.
// French national numbers (0XXXXXXXXX) get the +33 prefix.
func NormalizePhoneNumber(number string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(number) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	n := b.String()

	switch {
	case strings.HasPrefix(n, "00"):
		return "+" + n[2:]
	case len(n) == 10 && n[0] == '0':
		return "+33" + n[1:]
	}
	return n
}
