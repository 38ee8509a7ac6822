package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/tnguyen21/nexusflow-tui/internal/app"
	"github.com/tnguyen21/nexusflow-tui/internal/config"
	"github.com/tnguyen21/nexusflow-tui/internal/content"
)

type contextKey struct{ name string }

// pageKey stores the session's page model in the SSH context so it can be
// closed when the session ends.
var pageKey = &contextKey{"page"}

// Server wraps a wish SSH server that serves the NexusFlow page.
type Server struct {
	config *config.Config
	store  *content.Store
	logger *log.Logger
	wish   *ssh.Server
}

// New creates a Server configured from cfg.
func New(cfg *config.Config, store *content.Store, logger *log.Logger) (*Server, error) {
	srv := &Server{config: cfg, store: store, logger: logger}

	s, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf(":%d", cfg.Port)),
		wish.WithHostKeyPath(filepath.Join(cfg.HostKeyDir, "nexusflow_host_key")),
		wish.WithPublicKeyAuth(publicKeyHandler),
		wish.WithMiddleware(
			closeMiddleware(),
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wish server: %w", err)
	}

	srv.wish = s
	return srv, nil
}

// teaHandler builds one page per session.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := s.logger.With("user", sess.User())
	model := app.New(*s.config, s.store, logger)
	sess.Context().SetValue(pageKey, model)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// closeMiddleware closes the session's page once its program has exited,
// whether the user quit or the connection dropped.
func closeMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			next(sess)
			if page, ok := sess.Context().Value(pageKey).(app.Model); ok {
				page.Close()
			}
		}
	}
}

// Start begins listening for SSH connections. It blocks until the server
// is shut down or encounters a fatal error. Returns nil on graceful shutdown.
func (s *Server) Start() error {
	if err := s.wish.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.wish.Shutdown(ctx)
}

// publicKeyHandler accepts all SSH public keys. The page is public
// marketing copy; there is nothing to protect behind a login.
func publicKeyHandler(_ ssh.Context, _ ssh.PublicKey) bool {
	return true
}
