package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zaykaa/services"
	"zaykaa/storage"
)

type recordingNotifier struct {
	placed chan string
}

func (r *recordingNotifier) OrderPlaced(userID, invoice string) {
	r.placed <- invoice
}

func testRouter(t *testing.T, notifier OrderNotifier) *http.ServeMux {
	t.Helper()

	catalog := services.NewCatalogStore("", time.Second, storage.NewMemoryMirror())
	catalog.Load(context.Background())
	ledger := services.NewCartLedger(storage.NewMemoryCarts(), services.AlwaysOpen{})
	editor := services.NewAdminEditor(catalog)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/menu", MenuHandler(catalog))
	mux.HandleFunc("GET /api/menu/stats", MenuStatsHandler(catalog))
	mux.HandleFunc("GET /api/cart/{user}", CartHandler(ledger))
	mux.HandleFunc("POST /api/cart/{user}/items", AddCartItemHandler(ledger, catalog))
	mux.HandleFunc("PUT /api/cart/{user}/items/{id}", SetCartQuantityHandler(ledger))
	mux.HandleFunc("DELETE /api/cart/{user}/items/{id}", RemoveCartItemHandler(ledger))
	mux.HandleFunc("DELETE /api/cart/{user}", ClearCartHandler(ledger))
	mux.HandleFunc("POST /api/cart/{user}/checkout", CheckoutHandler(ledger, notifier, "918500157859"))

	admin := http.NewServeMux()
	admin.HandleFunc("POST /api/admin/menu", AddMenuItemHandler(editor))
	mux.Handle("/api/admin/", RequireAdmin("sekret", admin))
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestMenuEndpoint(t *testing.T) {
	mux := testRouter(t, nil)

	w := doJSON(t, mux, http.MethodGet, "/api/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) == 0 {
		t.Error("menu endpoint returned no items")
	}
}

func TestCartFlow(t *testing.T) {
	mux := testRouter(t, nil)

	// Default item "1" is Samosa at ₹20.
	w := doJSON(t, mux, http.MethodPost, "/api/cart/u1/items", `{"id":"1","quantity":2}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add: status = %d, body %s", w.Code, w.Body.String())
	}

	var cart struct {
		Subtotal       int64 `json:"subtotal"`
		HandlingCharge int64 `json:"handlingCharge"`
		GrandTotal     int64 `json:"grandTotal"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatal(err)
	}
	if cart.Subtotal != 40 || cart.HandlingCharge != 10 || cart.GrandTotal != 50 {
		t.Errorf("totals = %+v, want 40/10/50", cart)
	}

	// Unknown catalog item.
	w = doJSON(t, mux, http.MethodPost, "/api/cart/u1/items", `{"id":"nope","quantity":1}`, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown item: status = %d", w.Code)
	}

	// Zero quantity is rejected.
	w = doJSON(t, mux, http.MethodPost, "/api/cart/u1/items", `{"id":"1","quantity":0}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("zero quantity: status = %d", w.Code)
	}

	// Clear returns 204 and leaves an empty cart behind.
	if w = doJSON(t, mux, http.MethodDelete, "/api/cart/u1", "", nil); w.Code != http.StatusNoContent {
		t.Errorf("clear: status = %d", w.Code)
	}
	w = doJSON(t, mux, http.MethodGet, "/api/cart/u1", "", nil)
	if !strings.Contains(w.Body.String(), `"subtotal":0`) {
		t.Errorf("cart not empty after clear: %s", w.Body.String())
	}
}

func TestCheckout(t *testing.T) {
	notifier := &recordingNotifier{placed: make(chan string, 1)}
	mux := testRouter(t, notifier)

	doJSON(t, mux, http.MethodPost, "/api/cart/u1/items", `{"id":"1","quantity":2}`, nil)

	w := doJSON(t, mux, http.MethodPost, "/api/cart/u1/checkout", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("checkout: status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message     string `json:"message"`
		WhatsAppURL string `json:"whatsappUrl"`
		GrandTotal  int64  `json:"grandTotal"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Message, "1. Samosa x 2 — ₹20 × 2 = ₹40") {
		t.Errorf("invoice line missing: %q", resp.Message)
	}
	if !strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/918500157859?text=") {
		t.Errorf("unexpected deep link: %q", resp.WhatsAppURL)
	}
	if resp.GrandTotal != 50 {
		t.Errorf("grandTotal = %d, want 50", resp.GrandTotal)
	}

	select {
	case invoice := <-notifier.placed:
		if !strings.Contains(invoice, "Samosa") {
			t.Errorf("notifier got %q", invoice)
		}
	case <-time.After(time.Second):
		t.Error("operator notification never sent")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	mux := testRouter(t, nil)
	w := doJSON(t, mux, http.MethodPost, "/api/cart/u9/checkout", "", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestAdminGate(t *testing.T) {
	mux := testRouter(t, nil)
	body := `{"name":"Veg Thali","price":150}`

	w := doJSON(t, mux, http.MethodPost, "/api/admin/menu", body, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w = doJSON(t, mux, http.MethodPost, "/api/admin/menu", body, map[string]string{"X-Admin-Token": "sekret"})
	if w.Code != http.StatusCreated {
		t.Errorf("with token: status = %d, want 201", w.Code)
	}

	// Name collides with a default item, case-insensitively.
	w = doJSON(t, mux, http.MethodPost, "/api/admin/menu", `{"name":" samosa ","price":30}`, map[string]string{"X-Admin-Token": "sekret"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate name: status = %d, want 409", w.Code)
	}
}
