package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/majorsigma/greenbasket-backend/internal/app"
	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/utils"
	"github.com/majorsigma/greenbasket-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("account registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Status:      "success",
		AccessToken: token.SignedString,
		Account:     account.View(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, account, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("id", account.ID).Msg("account successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Status:      "success",
		AccessToken: token.SignedString,
		Account:     account.View(),
	}, http.StatusOK)
}

func (h *Handler) requestVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.RequestVerification(ctx, req.Email); err != nil {
		log.Err(err).Msg("verification code request failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: app.MsgVerificationCodeSent,
	}, http.StatusOK)
}

func (h *Handler) confirmVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	verified, err := h.services.AuthService.ConfirmVerification(ctx, req.Email, req.Code)
	if err != nil {
		log.Err(err).Msg("verification confirmation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if !verified {
		utils.WriteJSON(w, models.StatusResponse{
			Status:  "failed",
			Message: app.MsgVerificationCodeRejected,
		}, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{
		Status:  "success",
		Message: app.MsgAccountVerified,
	}, http.StatusOK)
}
