package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mgrushin/mars-monitor/internal/command"
	"github.com/mgrushin/mars-monitor/internal/entity"
	"github.com/mgrushin/mars-monitor/internal/metrics"
	middle "github.com/mgrushin/mars-monitor/internal/middleware"
)

// Server receives WhatsApp Cloud API callbacks: the one-time verification
// handshake and message deliveries carrying player commands.
type Server struct {
	addr        string
	verifyToken string
	handler     *command.Handler
	monitor     command.SessionSwitcher
	bot         entity.MessageDispatcher
	meter       *metrics.Meter
}

// NewServer wires the webhook endpoints to the command handler. The
// meter may be nil.
func NewServer(addr, verifyToken string, handler *command.Handler,
	monitor command.SessionSwitcher, bot entity.MessageDispatcher, meter *metrics.Meter) *Server {
	return &Server{
		addr:        addr,
		verifyToken: verifyToken,
		handler:     handler,
		monitor:     monitor,
		bot:         bot,
		meter:       meter,
	}
}

// Router assembles the chi router with the webhook routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middle.RequestLogger(slog.Default()))

	r.Get("/webhook", s.verify)
	r.Post("/webhook", s.receive)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// ListenAndServe blocks serving the webhook until the listener fails.
func (s *Server) ListenAndServe() error {
	slog.Info("webhook server listening", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Router())
}

// verify answers the Meta subscription handshake: echo hub.challenge
// when the verify token matches, 403 otherwise.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("hub.mode") == "subscribe" && q.Get("hub.verify_token") == s.verifyToken {
		slog.Info("webhook verification handshake accepted")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(q.Get("hub.challenge")))
		return
	}
	slog.Warn("webhook verification handshake rejected")
	w.WriteHeader(http.StatusForbidden)
}

// receive handles a message delivery. The provider retries anything but
// 200, so malformed bodies are logged and acknowledged anyway.
func (s *Server) receive(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Warn("ignoring malformed webhook body", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	sender, text, ok := payload.FirstMessage()
	if !ok {
		slog.Debug("webhook delivery without a text message ignored")
		w.WriteHeader(http.StatusOK)
		return
	}

	slog.Info("inbound message received", "sender", sender)
	action := s.handler.Handle(r.Context(), text, sender)
	if action.Kind != command.Ignore {
		s.meter.CommandHandled(r.Context())
	}
	s.handler.Apply(action, sender, s.monitor, s.bot)
	w.WriteHeader(http.StatusOK)
}
