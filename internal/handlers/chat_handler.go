// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pharmago/pharmago/internal/domain"
	"github.com/pharmago/pharmago/internal/repository/history"
	"github.com/pharmago/pharmago/internal/repository/transcript"
	"github.com/pharmago/pharmago/internal/services"
	"github.com/pharmago/pharmago/internal/services/router"
	"github.com/pharmago/pharmago/internal/services/session"
)

const historyPageSize = 10

// ChatHandler serves the conversational endpoints. Each turn is routed to
// the pharmacy lookup or the medication pipeline and mirrored into the
// session transcript.
type ChatHandler struct {
	Router      *router.Router
	Sessions    *session.Registry
	History     history.HistoryRepository
	Transcripts transcript.TranscriptRepository
	Logger      services.Logger
}

func NewChatHandler(
	rt *router.Router,
	sessions *session.Registry,
	historyRepo history.HistoryRepository,
	transcripts transcript.TranscriptRepository,
	logger services.Logger,
) *ChatHandler {
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &ChatHandler{
		Router:      rt,
		Sessions:    sessions,
		History:     historyRepo,
		Transcripts: transcripts,
		Logger:      logger,
	}
}

// HandleChat processes one chat turn.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
		UserID  string `json:"user_id"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "No message provided", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, "Empty message", http.StatusBadRequest)
		return
	}

	// A caller without an identity gets one; it comes back in the response
	// so the client can reuse it.
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = uuid.NewString()
		h.Logger.Info("Generated user id for anonymous chat request", "user_id", userID)
	}

	response, err := h.Router.Route(r.Context(), router.Request{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Query:  message,
	})
	if err != nil {
		h.Logger.Error("Chat routing failed", "user_id", userID, "error", err.Error())
		writeError(w, "Error processing chat: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.Sessions.Append(userID, domain.RoleUser, message)
	h.Sessions.Append(userID, domain.RoleAssistant, response)

	// The durable snapshot is best effort: a storage hiccup must not lose
	// the reply the user is waiting for.
	if err := h.Transcripts.Save(r.Context(), userID, h.Sessions.History(userID)); err != nil {
		h.Logger.Error("Failed to save chat transcript", "user_id", userID, "error", err.Error())
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"response": response,
		"user_id":  userID,
	})
}

// GetHistory returns the conversation history for a user. The live session
// transcript wins; otherwise the turn log is replayed as message pairs.
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, "Se requiere user_id", http.StatusBadRequest)
		return
	}

	messages := h.Sessions.History(userID)
	if len(messages) == 0 {
		entries, err := h.History.FindByUserID(r.Context(), userID, historyPageSize)
		if err != nil {
			h.Logger.Error("Failed to load chat history", "user_id", userID, "error", err.Error())
			writeError(w, "Could not retrieve history", http.StatusInternalServerError)
			return
		}
		messages = replayEntries(entries)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"history": messages,
	})
}

// HandleClear drops the live transcript and its durable snapshot. The
// append-only turn log is kept.
func (h *ChatHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		writeError(w, "Se requiere user_id", http.StatusBadRequest)
		return
	}
	userID := strings.TrimSpace(req.UserID)

	h.Sessions.Clear(userID)
	if err := h.Transcripts.Delete(r.Context(), userID); err != nil {
		h.Logger.Error("Failed to delete chat transcript", "user_id", userID, "error", err.Error())
		writeError(w, "Could not clear history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Chat history cleared",
		"user_id": userID,
	})
}

// replayEntries converts logged turns into transcript messages, oldest
// first.
func replayEntries(entries []domain.HistoryEntry) []domain.TranscriptMessage {
	messages := make([]domain.TranscriptMessage, 0, len(entries)*2)
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		messages = append(messages,
			domain.TranscriptMessage{
				Role:      domain.RoleUser,
				Content:   entry.Query,
				Timestamp: entry.CreatedAt,
			},
			domain.TranscriptMessage{
				Role:      domain.RoleAssistant,
				Content:   entry.Response,
				Timestamp: entry.CreatedAt,
			},
		)
	}
	return messages
}
