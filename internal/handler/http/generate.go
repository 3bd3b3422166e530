package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alebedev/passvault/internal/generator"
	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/internal/utils"
)

// generateResponse carries a freshly generated password together with its
// strength estimate. The password is never logged or persisted server-side.
type generateResponse struct {
	Password string             `json:"password"`
	Strength generator.Strength `json:"strength"`
}

// generate produces a random password for the policy in the request body.
// The endpoint is public: generating a password requires no account.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var policy generator.Policy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	password, err := generator.Generate(policy)
	if err != nil {
		switch {
		case errors.Is(err, generator.ErrInvalidLength):
			http.Error(w, generator.ErrInvalidLength.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, generator.ErrEmptyCharset):
			http.Error(w, generator.ErrEmptyCharset.Error(), http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Str("func", "*Handler.generate").Msg("error generating password")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, generateResponse{
		Password: password,
		Strength: generator.Estimate(password),
	}, http.StatusOK)
}
