package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/ledger"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/normalize"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/scope"
)

type identityKey struct{}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *apiServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.loginLimit.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many login attempts")
		return
	}

	var req struct {
		Name       string `json:"name"`
		Credential string `json:"credential"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := s.resolver.Resolve(req.Name, req.Credential, s.currentSnapshot().Directory)
	if err != nil {
		zap.L().Warn("login rejected", zap.String("name", req.Name))
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = identity
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{
		"token":        token,
		"role":         string(identity.Role),
		"display_name": identity.DisplayName,
	})
}

// requireIdentity resolves the bearer token into the caller identity. The
// identity travels in the request context, never in globals.
func (s *apiServer) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.RLock()
		identity, ok := s.sessions[token]
		s.mu.RUnlock()
		if token == "" || !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, identity)))
	})
}

func callerIdentity(r *http.Request) model.Identity {
	identity, _ := r.Context().Value(identityKey{}).(model.Identity)
	return identity
}

// selectionFromQuery builds the filter selection from query parameters.
// Repeatable params use the multi-value form (?branch=a&branch=b).
func selectionFromQuery(r *http.Request) (model.Selection, error) {
	q := r.URL.Query()
	return buildSelection(
		q.Get("from"), q.Get("to"),
		q["branch"], q["risk"], q["match"],
		q.Get("fee_band"),
	)
}

func (s *apiServer) visibleRecords(r *http.Request) ([]model.Record, error) {
	sel, err := selectionFromQuery(r)
	if err != nil {
		return nil, err
	}
	return scope.Apply(s.currentSnapshot().VOC(), sel, callerIdentity(r)), nil
}

func (s *apiServer) handleRecords(w http.ResponseWriter, r *http.Request) {
	visible, err := s.visibleRecords(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records": visible,
		"kpi":     scope.ComputeKPI(visible),
	})
}

// handleOutstanding narrows the caller's visible set to complaints still
// lacking a counterpart in any operational feed.
func (s *apiServer) handleOutstanding(w http.ResponseWriter, r *http.Request) {
	visible, err := s.visibleRecords(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	outstanding := scope.UnmatchedSubset(visible)
	writeJSON(w, http.StatusOK, map[string]any{
		"records": outstanding,
		"kpi":     scope.ComputeKPI(outstanding),
	})
}

func (s *apiServer) handleKPI(w http.ResponseWriter, r *http.Request) {
	visible, err := s.visibleRecords(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scope.ComputeKPI(visible))
}

func (s *apiServer) handleBranches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.currentSnapshot().Branches())
}

func (s *apiServer) handleFeedbackAppend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContractID   string `json:"contract_id"`
		ResponseText string `json:"response_text"`
		Note         string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	idNorm := normalize.ContractID(req.ContractID)
	if idNorm == "" {
		writeError(w, http.StatusBadRequest, "contract_id is required")
		return
	}

	entry := model.FeedbackEntry{
		ContractIDNorm: idNorm,
		ResponseText:   req.ResponseText,
		Author:         callerIdentity(r).DisplayName,
		RecordedAt:     time.Now().UTC(),
		Note:           req.Note,
	}

	// Persistence failures surface; a swallowed append is a lost record.
	if err := s.ledger.Append(r.Context(), entry); err != nil {
		zap.L().Error("feedback append failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "feedback append failed")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (s *apiServer) handleFeedbackList(w http.ResponseWriter, r *http.Request) {
	idNorm := normalize.ContractID(chi.URLParam(r, "contractID"))

	entries, err := s.ledger.LoadAll(r.Context())
	if err != nil {
		zap.L().Error("feedback load failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "feedback load failed")
		return
	}

	writeJSON(w, http.StatusOK, ledger.ForContract(entries, idNorm))
}

// handleReload re-reads the feed tables. Admin only: a reload is an
// operational action, not a viewer concern.
func (s *apiServer) handleReload(w http.ResponseWriter, r *http.Request) {
	if !callerIdentity(r).IsAdmin() {
		writeError(w, http.StatusForbidden, "admin only")
		return
	}

	snap, err := s.loader.Load(r.Context())
	if err != nil {
		zap.L().Error("snapshot reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "reload failed")
		return
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"records":   len(snap.Records),
		"loaded_at": snap.LoadedAt,
	})
}
