package report

import (
	"net/url"
	"strings"
)

// stripNonDigits keeps only ASCII digits. Destination services reject
// numbers containing spaces, "+" or punctuation, so everything else is
// dropped: "+55 85 99999-9999" becomes "5585999999999".
func stripNonDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escape percent-encodes a query value, with spaces as %20 rather than
// "+" so links paste cleanly outside query-string contexts.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// WhatsAppLink builds the wa.me deep link for a message to phone.
func WhatsAppLink(phone, message string) string {
	return "https://wa.me/" + stripNonDigits(phone) + "?text=" + escape(message)
}

// MailtoLink builds a mailto deep link with subject and body.
func MailtoLink(email, subject, body string) string {
	return "mailto:" + email + "?subject=" + escape(subject) + "&body=" + escape(body)
}
