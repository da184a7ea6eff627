package handlers

import (
	"encoding/json"
	"net/http"

	"zaykaa/models"
	"zaykaa/services"
)

// OrderNotifier receives a heads-up when a user checks out. The Telegram
// notifier implements it; a nil notifier is a valid no-op.
type OrderNotifier interface {
	OrderPlaced(userID, invoice string)
}

type cartResponse struct {
	Lines          []models.CartLine `json:"lines"`
	TotalQuantity  int               `json:"totalQuantity"`
	Subtotal       int64             `json:"subtotal"`
	HandlingCharge int64             `json:"handlingCharge"`
	GrandTotal     int64             `json:"grandTotal"`
}

func toCartResponse(c models.Cart) cartResponse {
	sub := services.Subtotal(c.Lines)
	handling := services.HandlingCharge(sub)
	return cartResponse{
		Lines:          c.Lines,
		TotalQuantity:  c.TotalQuantity(),
		Subtotal:       sub,
		HandlingCharge: handling,
		GrandTotal:     sub + handling,
	}
}

// CartHandler serves the user's current cart with computed totals.
func CartHandler(ledger *services.CartLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.PathValue("user")
		writeJSON(w, http.StatusOK, toCartResponse(ledger.Get(r.Context(), user)))
	}
}

// AddCartItemHandler adds a catalog item to the cart.
func AddCartItemHandler(ledger *services.CartLedger, catalog *services.CatalogStore) http.HandlerFunc {
	type request struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.PathValue("user")

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		var item *models.MenuItem
		items := catalog.Items()
		for i := range items {
			if items[i].ID == req.ID {
				item = &items[i]
				break
			}
		}
		if item == nil {
			writeError(w, http.StatusNotFound, "menu item not found")
			return
		}

		cart, err := ledger.Add(r.Context(), user, *item, req.Quantity)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toCartResponse(cart))
	}
}

// SetCartQuantityHandler replaces a line's quantity; zero removes the line.
func SetCartQuantityHandler(ledger *services.CartLedger) http.HandlerFunc {
	type request struct {
		Quantity int `json:"quantity"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.PathValue("user")
		itemID := r.PathValue("id")

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		cart := ledger.SetQuantity(r.Context(), user, itemID, req.Quantity)
		writeJSON(w, http.StatusOK, toCartResponse(cart))
	}
}

// RemoveCartItemHandler deletes a line from the cart.
func RemoveCartItemHandler(ledger *services.CartLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.PathValue("user")
		cart := ledger.Remove(r.Context(), user, r.PathValue("id"))
		writeJSON(w, http.StatusOK, toCartResponse(cart))
	}
}

// ClearCartHandler empties the cart and drops its persisted snapshot.
func ClearCartHandler(ledger *services.CartLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ledger.Clear(r.Context(), r.PathValue("user"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// CheckoutHandler renders the invoice and hands the order off to WhatsApp.
// The cart is left intact: the handoff is fire-and-forget and the client
// clears it once the operator confirms.
func CheckoutHandler(ledger *services.CartLedger, notifier OrderNotifier, whatsAppPhone string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.PathValue("user")

		cart := ledger.Get(r.Context(), user)
		if len(cart.Lines) == 0 {
			writeError(w, http.StatusUnprocessableEntity, "cart is empty")
			return
		}

		message := services.InvoiceMessage(cart.Lines)
		if notifier != nil {
			go notifier.OrderPlaced(user, message)
		}

		resp := toCartResponse(cart)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":        message,
			"whatsappUrl":    services.WhatsAppLink(whatsAppPhone, message),
			"subtotal":       resp.Subtotal,
			"handlingCharge": resp.HandlingCharge,
			"grandTotal":     resp.GrandTotal,
		})
	}
}
