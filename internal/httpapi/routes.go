package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/liamqma/sanmou-yanwu/internal/hub"
	"github.com/liamqma/sanmou-yanwu/internal/ws"
)

func SetupRoutes(s *Server, h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(log))

	r.Post("/games", s.StartGame)
	r.Get("/games/{code}", s.GetGame)
	r.Post("/games/{code}/recommendation", s.Recommend)
	r.Post("/games/{code}/choices", s.RecordChoice)
	r.Post("/games/{code}/transfer", s.ApplyTransfer)

	r.Get("/analytics", s.Analytics)
	r.Get("/items/{type}/{name}", s.ItemStats)

	r.Get("/healthz", Healthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", ws.Handler(h, log))
	return r
}
