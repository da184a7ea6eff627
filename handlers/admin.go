package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"zaykaa/services"
)

// RequireAdmin gates catalog-mutation endpoints behind the shared admin
// token. An empty configured token disables the admin API entirely.
func RequireAdmin(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get("X-Admin-Token")
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			writeError(w, http.StatusUnauthorized, "admin authorization required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AddMenuItemHandler creates a new catalog item.
func AddMenuItemHandler(editor *services.AdminEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ItemInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		item, err := editor.AddItem(r.Context(), input)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateName) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

// UpdateMenuItemHandler merges a partial update into an item.
func UpdateMenuItemHandler(editor *services.AdminEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch services.ItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		editor.UpdateItem(r.Context(), r.PathValue("id"), patch)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ProposeDeleteHandler starts a two-phase delete and returns the token the
// client must confirm with.
func ProposeDeleteHandler(editor *services.AdminEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := editor.ProposeDelete(r.PathValue("id"))
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// ConfirmDeleteHandler performs the pending delete.
func ConfirmDeleteHandler(editor *services.AdminEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := editor.ConfirmDelete(r.Context(), r.PathValue("token")); err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeclineDeleteHandler discards the pending delete.
func DeclineDeleteHandler(editor *services.AdminEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor.DeclineDelete(r.PathValue("token"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ResetMenuHandler restores the built-in default catalog.
func ResetMenuHandler(editor *services.AdminEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor.ResetToDefaults(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}
