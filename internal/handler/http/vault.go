package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/internal/service"
	"github.com/alebedev/passvault/internal/store"
	"github.com/alebedev/passvault/internal/utils"
	"github.com/alebedev/passvault/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listVaultItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.VaultService.ListItems(r.Context(), principal.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listVaultItems").Msg("error listing vault items")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createVaultItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.VaultItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.createVaultItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	item.UserID = principal.UserID

	created, err := h.services.VaultService.CreateItem(r.Context(), item)
	if err != nil {
		h.writeVaultError(w, r, err, "error creating vault item")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateVaultItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vault item id", http.StatusBadRequest)
		return
	}

	var item models.VaultItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.updateVaultItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	item.ID = id
	item.UserID = principal.UserID

	updated, err := h.services.VaultService.UpdateItem(r.Context(), item)
	if err != nil {
		h.writeVaultError(w, r, err, "error updating vault item")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteVaultItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vault item id", http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.DeleteItem(r.Context(), principal.UserID, id); err != nil {
		h.writeVaultError(w, r, err, "error deleting vault item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeVaultError maps service and storage errors to HTTP status codes
// shared by all vault endpoints.
func (h *Handler) writeVaultError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg(msg)
		http.Error(w, "title, username and password are required", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidEncryptedBlob):
		log.Err(err).Msg(msg)
		http.Error(w, service.ErrInvalidEncryptedBlob.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, store.ErrVaultItemNotFound):
		log.Err(err).Msg(msg)
		http.Error(w, "vault item not found", http.StatusNotFound)
	default:
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
