// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/expense-keeper/internal/app"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/utils"
	"github.com/MKhiriev/expense-keeper/models"
)

// userIDFromRequest reads the authenticated user's id placed in the context
// by the auth middleware. A missing id means the route was wired outside the
// middleware; the request is rejected rather than served unscoped.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// dateFromRequest parses the {date} path segment.
func dateFromRequest(w http.ResponseWriter, r *http.Request) (models.Date, bool) {
	date, err := models.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid date in path")
		http.Error(w, app.MsgInvalidDate, http.StatusBadRequest)
		return models.Date{}, false
	}
	return date, true
}

func (h *Handler) getExpensesByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	date, ok := dateFromRequest(w, r)
	if !ok {
		return
	}

	expenses, err := h.services.ExpenseService.GetByDate(ctx, userID, date)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("getting expenses by date failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) saveExpensesForDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	date, ok := dateFromRequest(w, r)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expenses); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ExpenseService.ReplaceForDate(ctx, userID, date, expenses)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("replacing expenses for date failed")
		writeServiceError(w, err)
		return
	}

	log.Debug().Int64("user_id", userID).Int("count", len(saved)).Msg("expense set replaced for date")

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) getAllExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	expenses, err := h.services.ExpenseService.GetAll(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("getting all expenses failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) getExpensesByRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var rng models.DateRange
	if err := json.NewDecoder(r.Body).Decode(&rng); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	expenses, err := h.services.ExpenseService.GetByRange(ctx, userID, rng)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("getting expenses by range failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Err(err).Msg("invalid expense id in path")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// identity comes from the context, the row id from the path; whatever
	// the body claimed for either is discarded
	expense.ID = id
	expense.UserID = userID

	updated, err := h.services.ExpenseService.Update(ctx, expense)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("id", id).Msg("updating expense failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Err(err).Msg("invalid expense id in path")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.ExpenseService.Delete(ctx, userID, id); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("id", id).Msg("deleting expense failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "expense deleted"}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Message: "expense-keeper server", Status: "ok"}, http.StatusOK)
}
