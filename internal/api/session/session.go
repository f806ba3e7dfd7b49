package session

import (
	"net/http"
	"slot_machine/internal/api"
	"slot_machine/internal/config"
	"slot_machine/internal/converter"
	"slot_machine/internal/middleware"
	"slot_machine/internal/service"
	"slot_machine/pkg/resp"
	"slot_machine/pkg/token"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv     service.SessionService
	TokenCfg config.TokenConfig
	Log      *zap.Logger
}

type Handler struct {
	serv     service.SessionService
	tokenCfg config.TokenConfig
	log      *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:     deps.Serv,
		tokenCfg: deps.TokenCfg,
		log:      deps.Log,
	}
}

// Create открывает сессию и отдает подписанный ID через cookie
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	created, err := h.serv.Create(r.Context())
	if err != nil {
		h.log.Error("create session", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "Error creating game session")
		return
	}

	tok, err := token.GenerateSessionToken(created.ID, h.tokenCfg.SecretKey(), h.tokenCfg.Duration())
	if err != nil {
		h.log.Error("sign session token", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "Error creating game session")
		return
	}

	middleware.SetSessionCookie(w, tok, h.tokenCfg.Duration(), h.tokenCfg.SecureCookie())

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCreateResponse(*created))
}

// Status - снимок текущей сессии
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	st, err := h.serv.Status(r.Context(), sessionID)
	if err != nil {
		status := api.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.log.Error("session status", zap.String("session_id", sessionID), zap.Error(err))
			resp.WriteError(w, status, "Error retrieving session status.")
			return
		}
		resp.WriteError(w, status, "Session is not valid.")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatusResponse(*st))
}

// CashOut закрывает сессию
func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := h.serv.CashOut(r.Context(), sessionID)
	if err != nil {
		status := api.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.log.Error("cash out", zap.String("session_id", sessionID), zap.Error(err))
			resp.WriteError(w, status, "Error processing cash out")
			return
		}
		resp.WriteError(w, status, "Session not valid")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCashOutResponse(*res))
}

// Delete удаляет сессию и cookie
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.serv.Delete(r.Context(), sessionID); err != nil {
		status := api.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.log.Error("delete session", zap.String("session_id", sessionID), zap.Error(err))
			resp.WriteError(w, status, "Error deleting session")
			return
		}
		resp.WriteError(w, status, "Session not valid")
		return
	}

	middleware.ClearSessionCookie(w, h.tokenCfg.SecureCookie())
	w.WriteHeader(http.StatusNoContent)
}
