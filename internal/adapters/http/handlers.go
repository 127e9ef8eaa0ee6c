package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
	"svw.info/sudoku-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/candidates", h.handleCandidates)
	mux.HandleFunc("/api/step", h.handleStep)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// boardReq accepts either the 9x9 JSON board or the 81-char grid string.
type boardReq struct {
	Board *[9][9]uint8 `json:"board,omitempty"`
	Grid  string       `json:"grid,omitempty"`
}

func (r *boardReq) board() (*domain.Board, error) {
	if r.Grid != "" {
		return domain.ParseBoard(r.Grid)
	}
	if r.Board != nil {
		return &domain.Board{Values: *r.Board}, nil
	}
	return nil, &domain.InvalidPuzzleError{Reason: "missing board or grid"}
}

// statusFor maps the solve error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var invalid *domain.InvalidPuzzleError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrNoSolution), errors.Is(err, engine.ErrContradiction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrCancelled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Solve ----

type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	Grid       string      `json:"grid,omitempty"`
	Nodes      int         `json:"nodes"`
	Guesses    int         `json:"guesses"`
	DurationMs int64       `json:"durationMs"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if !decodePost(w, r, &req) {
		return
	}
	b, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), b)
	if err != nil {
		writeJSON(w, statusFor(err), solveResp{
			Error:      err.Error(),
			Nodes:      st.Nodes,
			Guesses:    st.Guesses,
			DurationMs: st.Duration.Milliseconds(),
		})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{
		Board:      out.Values,
		Grid:       out.Flat(),
		Nodes:      st.Nodes,
		Guesses:    st.Guesses,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if !decodePost(w, r, &req) {
		return
	}
	b, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Candidates ----

type candidatesResp struct {
	Counts [9][9]int `json:"counts"`
	Error  string    `json:"error,omitempty"`
}

func (h *Handler) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if !decodePost(w, r, &req) {
		return
	}
	b, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, candidatesResp{Error: err.Error()})
		return
	}
	counts, err := h.UC.Candidates(r.Context(), b)
	if err != nil {
		writeJSON(w, statusFor(err), candidatesResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, candidatesResp{Counts: counts})
}

// ---- Step ----

type stepResp struct {
	Board    [9][9]uint8       `json:"board,omitempty"`
	Grid     string            `json:"grid,omitempty"`
	Progress bool              `json:"progress"`
	Strategy string            `json:"strategy,omitempty"`
	Cell     *domain.CellCoord `json:"cell,omitempty"`
	Digit    uint8             `json:"digit,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (h *Handler) handleStep(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if !decodePost(w, r, &req) {
		return
	}
	b, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, stepResp{Error: err.Error()})
		return
	}
	out, act, progress, err := h.UC.Step(r.Context(), b)
	if err != nil {
		writeJSON(w, statusFor(err), stepResp{Error: err.Error()})
		return
	}
	resp := stepResp{Board: out.Values, Grid: out.Flat(), Progress: progress}
	if progress {
		resp.Strategy = act.Strategy
		resp.Cell = &domain.CellCoord{Row: act.Cell / 9, Col: act.Cell % 9}
		resp.Digit = act.Digit
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Hint ----

type hintReq struct {
	boardReq
	MaxTier string `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if !decodePost(w, r, &req) {
		return
	}
	b, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: err.Error()})
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), b, parseTier(req.MaxTier))
	if err != nil {
		writeJSON(w, statusFor(err), hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if !decodePost(w, r, &p) {
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if !decodePost(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, listResp{Error: "method not allowed"})
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
