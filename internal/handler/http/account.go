package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/majorsigma/greenbasket-backend/internal/app"
	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/utils"
	"github.com/majorsigma/greenbasket-backend/models"
)

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: app.MsgGreeting,
	}, http.StatusOK)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	views, err := h.services.AccountService.ListAccounts(ctx)
	if err != nil {
		log.Err(err).Msg("listing accounts failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AccountListResponse{Accounts: views}, http.StatusOK)
}

func (h *Handler) setLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var loc models.LocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.AccountService.SetLocation(ctx, email, loc)
	if err != nil {
		log.Err(err).Msg("location update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AccountResponse{
		Status:  "success",
		Account: updated.View(),
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.AccountService.UpdateProfile(ctx, email, upd)
	if err != nil {
		log.Err(err).Msg("profile update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AccountResponse{
		Status:  "success",
		Account: updated.View(),
	}, http.StatusOK)
}

func (h *Handler) toggleOnline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var upd models.OnlineUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.GetByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("account lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := h.services.AccountService.ToggleOnline(ctx, account.ID, upd.IsOnline); err != nil {
		log.Err(err).Msg("availability toggle failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "success"}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing account id", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AccountService.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("account deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: app.MsgAccountDeleted,
	}, http.StatusOK)
}
