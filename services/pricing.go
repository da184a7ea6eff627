package services

import "zaykaa/models"

// Subtotal is the exact sum of price × quantity over all cart lines.
func Subtotal(lines []models.CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}

// HandlingCharge is the tiered flat fee added to the subtotal:
// ₹10 below 250, ₹15 below 500, ₹20 from 500 up, nothing on an empty cart.
// This table is user-facing billing logic and must not drift.
func HandlingCharge(subtotal int64) int64 {
	switch {
	case subtotal <= 0:
		return 0
	case subtotal < 250:
		return 10
	case subtotal < 500:
		return 15
	default:
		return 20
	}
}

// GrandTotal is subtotal plus its handling charge.
func GrandTotal(lines []models.CartLine) int64 {
	sub := Subtotal(lines)
	return sub + HandlingCharge(sub)
}
