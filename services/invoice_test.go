package services

import (
	"strings"
	"testing"

	"zaykaa/models"
)

func TestInvoiceMessage(t *testing.T) {
	lines := []models.CartLine{line("Samosa", 20, 2)}
	msg := InvoiceMessage(lines)

	if !strings.HasPrefix(msg, "Hi! I'd like to order the following items:") {
		t.Errorf("message missing greeting: %q", msg)
	}
	if !strings.Contains(msg, "1. Samosa x 2 — ₹20 × 2 = ₹40") {
		t.Errorf("message missing item line: %q", msg)
	}
	for _, want := range []string{"Subtotal: ₹40", "Handling charges: ₹10", "Total: ₹50"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q: %q", want, msg)
		}
	}
	if !strings.HasSuffix(msg, "Please confirm my order and delivery details.") {
		t.Errorf("message missing closing line: %q", msg)
	}
}

func TestInvoiceMessage_LineOrder(t *testing.T) {
	lines := []models.CartLine{line("Samosa", 20, 1), line("Chai", 25, 2)}
	msg := InvoiceMessage(lines)

	first := strings.Index(msg, "1. Samosa")
	second := strings.Index(msg, "2. Chai")
	sub := strings.Index(msg, "Subtotal:")
	if first == -1 || second == -1 || sub == -1 {
		t.Fatalf("expected both enumerated lines and a subtotal: %q", msg)
	}
	if !(first < second && second < sub) {
		t.Errorf("lines out of order: %q", msg)
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("918500157859", "hello world\nline two")

	if !strings.HasPrefix(link, "https://wa.me/918500157859?text=") {
		t.Errorf("unexpected link prefix: %q", link)
	}
	if strings.Contains(link, "+") {
		t.Errorf("spaces must be %%20, not '+': %q", link)
	}
	if !strings.Contains(link, "hello%20world%0Aline%20two") {
		t.Errorf("body not percent-encoded as expected: %q", link)
	}
}
