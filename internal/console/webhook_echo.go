package console

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mgrushin/mars-monitor/internal/config"
)

// WebhookEchoCommand runs a bare echo server. Useful when registering
// the callback URL with the provider: it logs whatever arrives without
// touching the monitor.
type WebhookEchoCommand struct {
}

func NewWebhookEchoCommand() *WebhookEchoCommand {
	cmd := WebhookEchoCommand{}
	return &cmd
}

func (cmd *WebhookEchoCommand) Name() string {
	return "webhook:echo"
}

func (cmd *WebhookEchoCommand) Description() string {
	return "logs incoming webhook requests without processing them"
}

func (cmd *WebhookEchoCommand) Run() error {
	conf := config.GetConfig()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.HandleFunc("/*", func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(io.LimitReader(req.Body, 64*1024))
		slog.Info("request received",
			"method", req.Method,
			"path", req.URL.RequestURI(),
			"headers", req.Header,
			"body", string(body))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Server is running!"))
	})

	slog.Info("echo server listening", "addr", conf.WebhookAddr)
	return http.ListenAndServe(conf.WebhookAddr, r)
}
