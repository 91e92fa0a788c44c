package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liamqma/sanmou-yanwu/internal/advisor"
	"github.com/liamqma/sanmou-yanwu/internal/hub"
	"github.com/liamqma/sanmou-yanwu/internal/scorer"
	"github.com/liamqma/sanmou-yanwu/internal/stats"
)

func testSnapshot() *stats.Snapshot {
	snap := stats.NewSnapshot()
	snap.TotalBattles = 2
	snap.Team1Wins = 1
	snap.Team2Wins = 1
	for i := 0; i < 3; i++ {
		snap.AddHeroResult("guanyu", true)
		snap.AddSkillResult("charge", i > 0)
	}
	snap.AddHeroResult("caocao", false)
	snap.AddHeroResult("caocao", false)
	return snap
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := zap.NewNop()
	snap := testSnapshot()
	adv, err := advisor.New(scorer.DefaultConfig(), snap)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := hub.NewHub(ctx, log)
	return SetupRoutes(NewServer(h, adv, snap, log), h, log)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func startGame(t *testing.T, router http.Handler) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/games", map[string]any{
		"initial_heroes": []string{"H1", "H2", "H3", "H4"},
		"initial_skills": []string{"S1", "S2", "S3", "S4"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	code, _ := body["code"].(string)
	require.Len(t, code, 6)
	return code
}

func TestStartGame(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/games", map[string]any{
		"initial_heroes": []string{"H1", "H2", "H3", "H4"},
		"initial_skills": []string{"S1", "S2", "S3", "S4"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	state := body["game_state"].(map[string]any)
	assert.EqualValues(t, 1, state["round_number"])
	assert.Equal(t, "hero", state["round_type"])

	ma := body["meta_analysis"].(map[string]any)
	assert.EqualValues(t, 2, ma["total_battles"])
}

func TestStartGame_BadSeed(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/games", map[string]any{
		"initial_heroes": []string{"H1", "H2"},
		"initial_skills": []string{"S1", "S2", "S3", "S4"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGame(t *testing.T) {
	router := newTestRouter(t)
	code := startGame(t, router)

	w := doJSON(t, router, http.MethodGet, "/games/"+code, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 0, body["version"])

	w = doJSON(t, router, http.MethodGet, "/games/NOSUCH", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommend(t *testing.T) {
	router := newTestRouter(t)
	code := startGame(t, router)

	w := doJSON(t, router, http.MethodPost, "/games/"+code+"/recommendation", map[string]any{
		"round_type": "hero",
		"available_sets": [][]string{
			{"guanyu", "a2", "a3"},
			{"caocao", "b2", "b3"},
			{"c1", "c2", "c3"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	rec := body["recommendation"].(map[string]any)
	// guanyu's 3-0 record should carry its set.
	assert.EqualValues(t, 0, rec["recommended_set_index"])
	assert.NotEmpty(t, rec["reasoning"])
	assert.Len(t, rec["analysis"], 3)
}

func TestRecommend_WrongRoundType(t *testing.T) {
	router := newTestRouter(t)
	code := startGame(t, router)

	w := doJSON(t, router, http.MethodPost, "/games/"+code+"/recommendation", map[string]any{
		"round_type": "skill",
		"available_sets": [][]string{
			{"a1", "a2", "a3"}, {"b1", "b2", "b3"}, {"c1", "c2", "c3"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordChoice(t *testing.T) {
	router := newTestRouter(t)
	code := startGame(t, router)

	w := doJSON(t, router, http.MethodPost, "/games/"+code+"/choices", map[string]any{
		"round_type": "hero",
		"chosen_set": []string{"guanyu", "a2", "a3"},
		"set_index":  0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, false, body["game_complete"])
	state := body["game_state"].(map[string]any)
	assert.EqualValues(t, 2, state["round_number"])
	assert.Len(t, state["current_heroes"], 7)
	assert.Nil(t, body["final_analysis"])
}

func TestRecordChoice_WrongRound(t *testing.T) {
	router := newTestRouter(t)
	code := startGame(t, router)

	w := doJSON(t, router, http.MethodPost, "/games/"+code+"/choices", map[string]any{
		"round_type": "skill",
		"chosen_set": []string{"a", "b", "c"},
		"set_index":  0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFullGameFlow(t *testing.T) {
	router := newTestRouter(t)
	code := startGame(t, router)

	rounds := []struct {
		roundType string
		items     int
	}{
		{"hero", 3}, {"skill", 3}, {"skill", 3}, {"hero", 3},
		{"skill", 3}, {"skill", 3}, {"hero", 2}, {"skill", 3},
	}
	var body map[string]any
	for i, r := range rounds {
		chosen := make([]string, r.items)
		for j := range chosen {
			chosen[j] = string(rune('A'+i)) + string(rune('0'+j))
		}

		if i == 6 {
			// Acknowledge the transfer step before the round-7 pick.
			w := doJSON(t, router, http.MethodPost, "/games/"+code+"/transfer", nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := doJSON(t, router, http.MethodPost, "/games/"+code+"/choices", map[string]any{
			"round_type": r.roundType,
			"chosen_set": chosen,
			"set_index":  i % 3,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body = decode(t, w)
	}

	assert.Equal(t, true, body["game_complete"])
	require.NotNil(t, body["final_analysis"])
	fa := body["final_analysis"].(map[string]any)
	assert.Len(t, fa["heroes"], 12)
	assert.Len(t, fa["skills"], 19)
}

func TestTransfer_NotPending(t *testing.T) {
	router := newTestRouter(t)
	code := startGame(t, router)

	w := doJSON(t, router, http.MethodPost, "/games/"+code+"/transfer", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalytics(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	summary := body["summary"].(map[string]any)
	assert.EqualValues(t, 2, summary["total_battles"])
	assert.EqualValues(t, 2, summary["total_heroes"])
}

func TestItemStats(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/items/hero/guanyu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "guanyu", body["name"])
	assert.EqualValues(t, 3, body["total_games"])

	w = doJSON(t, router, http.MethodGet, "/items/skill/charge?current_heroes=guanyu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/items/hero/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/items/weapon/sword", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		seen[code] = true
	}
	// 50 draws from a 36^6 space should not collide.
	assert.Len(t, seen, 50)
}

func TestSplitParam(t *testing.T) {
	assert.Nil(t, splitParam(""))
	assert.Equal(t, []string{"a", "b"}, splitParam("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitParam(" a , b ,"))
}
