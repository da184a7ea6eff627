package services

import (
	"testing"

	"zaykaa/models"
)

func line(name string, price int64, qty int) models.CartLine {
	return models.CartLine{
		MenuItem: models.MenuItem{ID: name, Name: name, Price: price},
		Quantity: qty,
	}
}

func TestHandlingCharge(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{0, 0},
		{-5, 0},
		{1, 10},
		{249, 10},
		{250, 15},
		{499, 15},
		{500, 20},
		{10000, 20},
	}
	for _, tt := range tests {
		got := HandlingCharge(tt.subtotal)
		if got != tt.want {
			t.Errorf("HandlingCharge(%d) = %d, want %d", tt.subtotal, got, tt.want)
		}
	}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.CartLine
		want  int64
	}{
		{"empty", nil, 0},
		{"single line", []models.CartLine{line("Samosa", 20, 2)}, 40},
		{"multiple lines", []models.CartLine{line("Samosa", 20, 2), line("Biryani", 240, 1), line("Chai", 25, 4)}, 380},
		{"free item", []models.CartLine{line("Water", 0, 3)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtotal(tt.lines); got != tt.want {
				t.Errorf("Subtotal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGrandTotal(t *testing.T) {
	carts := [][]models.CartLine{
		nil,
		{line("Samosa", 20, 2)},
		{line("Biryani", 240, 1)},
		{line("Biryani", 240, 2)},
		{line("Paneer Tikka", 180, 3)},
	}
	for _, lines := range carts {
		sub := Subtotal(lines)
		want := sub + HandlingCharge(sub)
		if got := GrandTotal(lines); got != want {
			t.Errorf("GrandTotal = %d, want subtotal %d + handling %d", got, sub, HandlingCharge(sub))
		}
	}
}
