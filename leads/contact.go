package leads

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/skip2/go-qrcode"
)

// DefaultWhatsAppMessage pre-fills the chat opened from the site
const DefaultWhatsAppMessage = "Hi! I'm interested in HQ.D bar services for my event."

// WhatsAppLink returns a wa.me link to number with message pre-filled.
// Non-digits in number are dropped; an empty message uses DefaultWhatsAppMessage.
func WhatsAppLink(number, message string) string {
	if message == "" {
		message = DefaultWhatsAppMessage
	}
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits(number), text)
}

// QRCode renders content as a size x size PNG
func QRCode(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("leads: qr code: %w", err)
	}
	return png, nil
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
