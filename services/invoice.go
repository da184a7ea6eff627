package services

import (
	"fmt"
	"net/url"
	"strings"

	"zaykaa/models"
)

// InvoiceMessage renders the cart into the order message sent to the
// operator over WhatsApp. The wording, line format and ordering are a
// contract with the operator workflow — do not reword.
func InvoiceMessage(lines []models.CartLine) string {
	var b strings.Builder
	b.WriteString("Hi! I'd like to order the following items:\n\n")
	for i, l := range lines {
		lineTotal := l.Price * int64(l.Quantity)
		fmt.Fprintf(&b, "%d. %s x %d — ₹%d × %d = ₹%d\n",
			i+1, l.Name, l.Quantity, l.Price, l.Quantity, lineTotal)
	}
	sub := Subtotal(lines)
	handling := HandlingCharge(sub)
	fmt.Fprintf(&b, "\nSubtotal: ₹%d\n", sub)
	fmt.Fprintf(&b, "Handling charges: ₹%d\n", handling)
	fmt.Fprintf(&b, "Total: ₹%d\n", sub+handling)
	b.WriteString("\nPlease confirm my order and delivery details.")
	return b.String()
}

// WhatsAppLink builds the wa.me deep link carrying the message body.
// Spaces are encoded as %20: some WhatsApp clients render '+' literally.
func WhatsAppLink(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, encoded)
}
