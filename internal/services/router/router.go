// File: internal/services/router/router.go
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pharmago/pharmago/internal/repository/history"
	"github.com/pharmago/pharmago/internal/repository/pharmacy"
	"github.com/pharmago/pharmago/internal/repository/user"
	"github.com/pharmago/pharmago/internal/services"
)

// Replies sent without consulting the database or any model. The refusal
// keeps the assistant inside its two supported topics.
const (
	AskCommuneMessage = "para buscar farmacias necesito que me indiques la comuna específica. " +
		"Por ejemplo: 'Farmacias en Providencia'."
	OutOfScopeMessage = "solo puedo responder consultas relacionadas con farmacias y medicamentos. " +
		"¿En qué puedo ayudarte con información sobre medicamentos o farmacias cercanas?"
)

// MedicationAnswerer produces an answer for a medication question.
type MedicationAnswerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Request is one routed chat turn.
type Request struct {
	UserID string
	Name   string
	Query  string
	// SkipHistory suppresses the durable history append for this turn.
	SkipHistory bool
}

// Router classifies each query and dispatches it to the pharmacy lookup,
// the medication answerer, or a refusal.
type Router struct {
	users      user.UserRepository
	history    history.HistoryRepository
	pharmacies pharmacy.PharmacyRepository
	medication MedicationAnswerer
	logger     services.Logger
}

func NewRouter(
	users user.UserRepository,
	historyRepo history.HistoryRepository,
	pharmacies pharmacy.PharmacyRepository,
	medication MedicationAnswerer,
	logger services.Logger,
) (*Router, error) {
	if users == nil || historyRepo == nil || pharmacies == nil {
		return nil, errors.New("user, history and pharmacy repositories are required")
	}
	if medication == nil {
		return nil, errors.New("medication answerer is required")
	}
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &Router{
		users:      users,
		history:    historyRepo,
		pharmacies: pharmacies,
		medication: medication,
		logger:     logger,
	}, nil
}

// Route handles one user turn. It always produces a reply: internal
// failures come back as an apology message rather than an error, and every
// turn is recorded in the history log unless the request opts out.
func (r *Router) Route(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return "", errors.New("user id is required")
	}
	if strings.TrimSpace(req.Query) == "" {
		return "", errors.New("query is required")
	}

	profile, err := r.users.Upsert(ctx, req.UserID, req.Name)
	greeting := ""
	if err != nil {
		r.logger.Warn("Failed to upsert user profile", "user_id", req.UserID, "error", err.Error())
	} else if profile.Name != "" {
		greeting = fmt.Sprintf("Hola %s, ", profile.Name)
	}

	response := r.dispatch(ctx, req.Query, greeting)

	if !req.SkipHistory {
		if err := r.history.Append(ctx, req.UserID, req.Query, response); err != nil {
			r.logger.Error("Failed to append history entry", "user_id", req.UserID, "error", err.Error())
		}
	}

	return response, nil
}

func (r *Router) dispatch(ctx context.Context, query, greeting string) string {
	switch {
	case IsPharmacyQuery(query):
		return r.answerPharmacy(ctx, query, greeting)
	case IsMedicationQuery(query):
		return r.answerMedication(ctx, query, greeting)
	default:
		return greeting + OutOfScopeMessage
	}
}

func (r *Router) answerPharmacy(ctx context.Context, query, greeting string) string {
	commune := DetectCommune(query)
	if commune == "" {
		return greeting + AskCommuneMessage
	}

	onDutyOnly := strings.Contains(strings.ToLower(query), "turno")

	pharmacies, err := r.pharmacies.FindByCommune(ctx, commune, onDutyOnly)
	if err != nil {
		r.logger.Error("Pharmacy lookup failed", "commune", commune, "error", err.Error())
		return greeting + apology(err)
	}

	r.logger.Info("Pharmacy lookup completed",
		"commune", commune, "on_duty_only", onDutyOnly, "results", len(pharmacies))
	return greeting + FormatPharmacyResults(pharmacies, commune, onDutyOnly)
}

func (r *Router) answerMedication(ctx context.Context, query, greeting string) string {
	answer, err := r.medication.Answer(ctx, query)
	if err != nil {
		r.logger.Error("Medication answer failed", "error", err.Error())
		return greeting + apology(err)
	}
	return greeting + answer
}

func apology(err error) string {
	return fmt.Sprintf("Lo siento, ocurrió un error al procesar tu consulta: %v", err)
}
