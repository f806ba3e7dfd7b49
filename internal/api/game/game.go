package game

import (
	"net/http"
	"slot_machine/internal/api"
	"slot_machine/internal/converter"
	"slot_machine/internal/middleware"
	"slot_machine/internal/service"
	"slot_machine/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.GameService
	Log  *zap.Logger
}

type Handler struct {
	serv service.GameService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Roll - один спин текущей сессии
func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.serv.Roll(r.Context(), sessionID)
	if err != nil {
		switch status := api.StatusFor(err); status {
		case http.StatusBadRequest:
			resp.WriteError(w, status, "You do not have enough credits to play.")
		case http.StatusUnauthorized:
			resp.WriteError(w, status, "Session is not valid.")
		default:
			h.log.Error("roll", zap.String("session_id", sessionID), zap.Error(err))
			resp.WriteError(w, status, "Error processing roll.")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRollResponse(*result))
}

// Stats - статистика RTP
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
