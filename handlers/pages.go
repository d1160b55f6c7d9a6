// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/diarisk/cliparse"
	"github.com/danielhkuo/diarisk/form"
	"github.com/danielhkuo/diarisk/predict"
	"github.com/danielhkuo/diarisk/session"
	"github.com/danielhkuo/diarisk/web"
)

type PagesHandler struct {
	db        *sql.DB
	cfg       cliparse.Config
	sessions  *session.Store
	predictor predict.Client
}

func NewPagesHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Store, predictor predict.Client) *PagesHandler {
	return &PagesHandler{db: db, cfg: cfg, sessions: sessions, predictor: predictor}
}

// Start handles GET /
// Opens a fresh wizard session and redirects to its first section
func (h *PagesHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Start()
	http.Redirect(w, r, "/assess/"+sess.Token, http.StatusFound)
}

// ShowSection handles GET /assess/{token}
func (h *PagesHandler) ShowSection(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	state, ok := h.sessions.Snapshot(token)
	if !ok {
		// Expired or unknown session: start over
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderSection(w, http.StatusOK, token, state, nil, "")
}

// NextSection handles POST /assess/{token}/next
// Merges the submitted values and advances if the section validates;
// on failure the same section re-renders with messages.
func (h *PagesHandler) NextSection(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	sections := form.Sections()

	var errs []string
	state, ok := h.sessions.Update(token, func(st *form.State) {
		st.Merge(sections[st.Index], postValues(r))
		errs = st.Next(sections)
	})
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderSection(w, http.StatusOK, token, state, errs, "")
}

// PrevSection handles POST /assess/{token}/prev
// Unconditional; entered values are kept so nothing is lost going back
func (h *PagesHandler) PrevSection(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	sections := form.Sections()

	state, ok := h.sessions.Update(token, func(st *form.State) {
		st.Merge(sections[st.Index], postValues(r))
		st.Prev()
	})
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderSection(w, http.StatusOK, token, state, nil, "")
}

// Submit handles POST /assess/{token}/submit
func (h *PagesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	sections := form.Sections()

	state, ok := h.sessions.Update(token, func(st *form.State) {
		st.Merge(sections[st.Index], postValues(r))
	})
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// Re-validate the active section, then the whole questionnaire
	if errs := form.ValidateSection(sections[state.Index], state.Values); len(errs) > 0 {
		h.renderSection(w, http.StatusOK, token, state, errs, "")
		return
	}
	sub, errs := form.ParseAndValidate(state.Values)
	if len(errs) > 0 {
		h.renderSection(w, http.StatusOK, token, state, errs, "")
		return
	}

	// Exactly one submit wins for a token; the loser sees a conflict
	sess, ok := h.sessions.Consume(token)
	if !ok {
		http.Error(w, "This assessment was already submitted.", http.StatusConflict)
		return
	}

	result, err := h.predictor.Predict(r.Context(), sub.Features)
	if err != nil {
		slog.Error("prediction request failed", "error", err)
		h.sessions.Restore(sess)
		h.renderSection(w, http.StatusBadGateway, token, state, nil, predictFailureMessage)
		return
	}

	outcome := 0
	if result.Probability > h.cfg.Threshold {
		outcome = 1
	}

	recordID, createdAt, err := saveAssessment(h.db, sub.Data, result.Probability, outcome)
	if err != nil {
		slog.Error("failed to save assessment", "error", err)
		h.sessions.Restore(sess)
		h.renderSection(w, http.StatusInternalServerError, token, state, nil, "Could not save your assessment. Please try again.")
		return
	}

	page := web.ResultPage{
		RecordID:    recordID,
		RiskLevel:   riskLevel(outcome),
		Result:      outcome,
		ProbPercent: fmt.Sprintf("%.1f%%", result.Probability*100),
		AssessedAt:  humanize.Time(createdAt),
		ReportURL:   h.cfg.PublicURL + "/records/" + recordID + "/report",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderResult(w, page); err != nil {
		slog.Error("failed to render result", "error", err)
	}
}

func (h *PagesHandler) renderSection(w http.ResponseWriter, status int, token string, state form.State, errs []string, alert string) {
	sections := form.Sections()
	page := web.SectionPage{
		Token:    token,
		Section:  sections[state.Index],
		Index:    state.Index,
		Total:    len(sections),
		Progress: form.Progress(state.Index, len(sections)),
		Vis:      form.ComputeVisibility(state.Index, len(sections)),
		Values:   state.Values,
		Errors:   errs,
		Alert:    alert,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := web.RenderSection(w, page); err != nil {
		slog.Error("failed to render section", "error", err)
	}
}

// postValues flattens the POSTed form into a name -> value map
func postValues(r *http.Request) map[string]string {
	_ = r.ParseForm()
	values := map[string]string{}
	for name, vals := range r.PostForm {
		if len(vals) > 0 {
			values[name] = vals[0]
		}
	}
	return values
}
