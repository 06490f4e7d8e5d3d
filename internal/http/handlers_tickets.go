package httpx

import (
	"context"
	"net/http"
	"strconv"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// TicketServiceInterface defines the ticket operations used by the handlers.
type TicketServiceInterface interface {
	Create(ctx context.Context, caller domainauth.Ctx, in model.TicketForCreate) (model.Ticket, error)
	List(ctx context.Context, caller domainauth.Ctx) ([]model.Ticket, error)
	Delete(ctx context.Context, caller domainauth.Ctx, id uint64) (model.Ticket, error)
}

// TicketHandlers provides HTTP handlers for ticket operations.
// Every handler reads the caller through CtxFromRequest.
type TicketHandlers struct {
	Svc TicketServiceInterface
}

// Create handles POST /api/tickets.
func (h *TicketHandlers) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := CtxFromRequest(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var in model.TicketForCreate
	if !DecodeJSON(w, r, &in) {
		return
	}

	t, err := h.Svc.Create(r.Context(), caller, in)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, t)
}

// List handles GET /api/tickets.
func (h *TicketHandlers) List(w http.ResponseWriter, r *http.Request) {
	caller, err := CtxFromRequest(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	tickets, err := h.Svc.List(r.Context(), caller)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	WriteJSON(w, http.StatusOK, tickets)
}

// Delete handles DELETE /api/tickets/{id}.
func (h *TicketHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := CtxFromRequest(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, r, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid ticket id"))
		return
	}

	t, err := h.Svc.Delete(r.Context(), caller, id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, t)
}
