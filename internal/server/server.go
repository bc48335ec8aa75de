package server

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
)

// Config holds server configuration.
// Port 0 asks the OS for a free port; the bound port is reported by Port().
type Config struct {
	Port      int
	AccessLog bool // log one line per request and set X-Request-Id
}

// Server serves the greeting route on all interfaces.
type Server struct {
	cfg     Config
	handler http.Handler

	httpServer *http.Server
	listener   net.Listener
	mu         sync.Mutex
}

// New creates a new Server.
func New(cfg Config) (*Server, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	handler := Handler()
	if cfg.AccessLog {
		handler = AccessLog(handler, log.Default())
	}

	s := &Server{
		cfg:        cfg,
		handler:    handler,
		httpServer: &http.Server{Handler: handler},
	}
	return s, nil
}

// Listen binds the TCP listener. After it returns nil the server is listening,
// although connections are not accepted until Serve is called.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return errors.New("server already listening")
	}
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.cfg.Port, err)
	}
	s.listener = ln
	return nil
}

// Serve accepts connections on the bound listener until the server is closed.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return errors.New("server is not listening")
	}
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run binds the port, logs the startup line and serves until the process exits.
// A bind failure is returned as is; there is no retry.
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}
	log.Printf("[greeter] Server is running on PORT: %d", s.Port())
	return s.Serve()
}

// Port returns the bound port, or the configured one before Listen.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.cfg.Port
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return s.cfg.Port
}

// Close stops the server immediately.
func (s *Server) Close() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	err := s.httpServer.Close()
	if ln != nil {
		// Close on the http.Server only reaches listeners passed to Serve.
		if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
			err = cerr
		}
	}
	return err
}

// Handler returns the server's root handler (for tests and embedding).
func (s *Server) Handler() http.Handler { return s.handler }
