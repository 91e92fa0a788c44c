package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/liamqma/sanmou-yanwu/internal/advisor"
	"github.com/liamqma/sanmou-yanwu/internal/draft"
	"github.com/liamqma/sanmou-yanwu/internal/hub"
	"github.com/liamqma/sanmou-yanwu/internal/meta"
	"github.com/liamqma/sanmou-yanwu/internal/session"
	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

// Server wires the advisor, the statistics snapshot and the session hub
// behind the HTTP API.
type Server struct {
	hub     *hub.Hub
	advisor *advisor.Advisor
	snap    *stats.Snapshot
	log     *zap.Logger
}

func NewServer(h *hub.Hub, adv *advisor.Advisor, snap *stats.Snapshot, log *zap.Logger) *Server {
	return &Server{hub: h, advisor: adv, snap: snap, log: log}
}

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// isValidationErr reports whether err is a caller-input error rather than a
// server fault.
func isValidationErr(err error) bool {
	for _, target := range []error{
		draft.ErrSeedHeroCount, draft.ErrSeedSkillCount,
		draft.ErrWrongRoundType, draft.ErrWrongSetSize,
		draft.ErrGameAlreadyCompleted, draft.ErrTransferNotPending,
		advisor.ErrWrongSetCount, advisor.ErrWrongSetSize,
		advisor.ErrWrongRoundType, advisor.ErrGameCompleted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type startGameRequest struct {
	InitialHeroes []string `json:"initial_heroes"`
	InitialSkills []string `json:"initial_skills"`
}

type metaAnalysis struct {
	TopHeroes    []meta.RankedItem `json:"top_heroes"`
	TopSkills    []meta.RankedItem `json:"top_skills"`
	TotalBattles uint64            `json:"total_battles"`
}

type startGameResponse struct {
	Code         string       `json:"code"`
	GameState    draft.View   `json:"game_state"`
	MetaAnalysis metaAnalysis `json:"meta_analysis"`
}

// StartGame creates a draft session seeded with 4 heroes and 4 skills.
func (s *Server) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	state, err := draft.New(req.InitialHeroes, req.InitialSkills)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var code string
	for {
		c, err := GenerateCode()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to generate code")
			return
		}
		reply := make(chan *session.Session, 1)
		s.hub.Inbox() <- hub.GetSession{Code: c, Reply: reply}
		if <-reply == nil {
			code = c
			break
		}
		s.log.Debug("collision on code, regenerating", zap.String("code", c))
	}

	reply := make(chan *session.Session, 1)
	s.hub.Inbox() <- hub.EnsureSession{Code: code, State: state, Reply: reply}
	if <-reply == nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	gamesStarted.Inc()

	writeJSON(w, http.StatusCreated, startGameResponse{
		Code:      code,
		GameState: state.View(),
		MetaAnalysis: metaAnalysis{
			TopHeroes:    meta.TopHeroes(s.snap, 1, 10),
			TopSkills:    meta.TopSkills(s.snap, 1, 15),
			TotalBattles: s.snap.TotalBattles,
		},
	})
}

// getSession resolves the {code} path param to a live session, writing the
// 404 itself when the session doesn't exist.
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) *session.Session {
	code := chi.URLParam(r, "code")
	reply := make(chan *session.Session, 1)
	s.hub.Inbox() <- hub.GetSession{Code: code, Reply: reply}
	sess := <-reply
	if sess == nil {
		writeError(w, http.StatusNotFound, "game not found")
	}
	return sess
}

func getView(sess *session.Session) session.View {
	reply := make(chan session.View, 1)
	sess.Inbox() <- session.GetView{Reply: reply}
	return <-reply
}

// GetGame returns the current draft state for a session.
func (s *Server) GetGame(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(w, r)
	if sess == nil {
		return
	}
	view := getView(sess)
	writeJSON(w, http.StatusOK, map[string]any{
		"version":    view.Version,
		"game_state": view.State,
	})
}

type recommendRequest struct {
	RoundType     draft.RoundType `json:"round_type"`
	AvailableSets [][]string      `json:"available_sets"`
}

type roundInfo struct {
	RoundNumber   int             `json:"round_number"`
	RoundType     draft.RoundType `json:"round_type"`
	CurrentHeroes []string        `json:"current_heroes"`
	CurrentSkills []string        `json:"current_skills"`
}

// Recommend scores the three offered sets for the session's current round.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(w, r)
	if sess == nil {
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	view := getView(sess)
	rec, err := s.advisor.Recommend(view.State, req.RoundType, req.AvailableSets)
	if err != nil {
		if isValidationErr(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	recommendationsServed.Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"recommendation": rec,
		"round_info": roundInfo{
			RoundNumber:   view.State.Round,
			RoundType:     req.RoundType,
			CurrentHeroes: view.State.Heroes,
			CurrentSkills: view.State.Skills,
		},
	})
}

type recordChoiceRequest struct {
	RoundType draft.RoundType `json:"round_type"`
	ChosenSet []string        `json:"chosen_set"`
	SetIndex  int             `json:"set_index"`
}

// RecordChoice applies the player's pick and reports the new state, with a
// final team analysis once the draft is complete.
func (s *Server) RecordChoice(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(w, r)
	if sess == nil {
		return
	}

	var req recordChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	errCh := make(chan error, 1)
	sess.Inbox() <- session.RecordChoice{
		Type:     req.RoundType,
		Chosen:   req.ChosenSet,
		SetIndex: req.SetIndex,
		Err:      errCh,
	}
	if err := <-errCh; err != nil {
		if isValidationErr(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	choicesRecorded.Inc()

	view := getView(sess)
	resp := map[string]any{
		"success":       true,
		"game_state":    view.State,
		"game_complete": view.State.Complete,
	}
	if view.State.Complete {
		resp["final_analysis"] = meta.BuildFinalAnalysis(view.State, s.snap)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ApplyTransfer acknowledges the post-round-6 transfer step.
func (s *Server) ApplyTransfer(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(w, r)
	if sess == nil {
		return
	}

	errCh := make(chan error, 1)
	sess.Inbox() <- session.ApplyTransfer{Err: errCh}
	if err := <-errCh; err != nil {
		if isValidationErr(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	view := getView(sess)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"game_state": view.State,
	})
}

// Analytics serves the battle-history dashboard payload.
func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, meta.BuildAnalytics(s.snap))
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ItemStats serves the detail card for one hero or skill, with optional
// current-roster context via comma-separated query params.
func (s *Server) ItemStats(w http.ResponseWriter, r *http.Request) {
	itemType := chi.URLParam(r, "type")
	name := chi.URLParam(r, "name")
	currentHeroes := splitParam(r.URL.Query().Get("current_heroes"))
	currentSkills := splitParam(r.URL.Query().Get("current_skills"))

	var (
		item meta.ItemStats
		err  error
	)
	switch itemType {
	case "hero":
		item, err = meta.HeroStats(s.snap, name, currentHeroes)
	case "skill":
		item, err = meta.SkillStats(s.snap, name, currentHeroes, currentSkills)
	default:
		writeError(w, http.StatusBadRequest, `type must be either "hero" or "skill"`)
		return
	}
	if err != nil {
		if errors.Is(err, meta.ErrUnknownItem) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
