package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/requestlog"
	"github.com/dmitrymomot/requestlog/pkg/sink"
)

func main() {
	r := chi.NewRouter()

	r.Use(requestlog.New(
		requestlog.WithEventIDHeader("X-Event-ID"),
		requestlog.WithQueue(1000),
		requestlog.WithSkipper(func(r *http.Request) bool {
			return r.Method == http.MethodOptions
		}),
	))
	defer sink.Default().Close()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		requestlog.SetErrorInfo(r.Context(), map[string]any{
			"code":    "UPSTREAM_TIMEOUT",
			"message": "upstream did not respond in time",
		})
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	slog.Info("listening on :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
