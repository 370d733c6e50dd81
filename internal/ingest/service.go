// Package ingest implements the TCP listener through which the Pure Data
// patch toggles compass overlays.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"

	"github.com/rs/xid"

	"github.com/Boboshiok123/SoundCompass/internal/params"
)

// Service accepts one connection at a time and applies "<param> <value>"
// records to the table. Bad input is logged and dropped; the connection stays
// open until the peer hangs up.
type Service struct {
	addr  string
	table *params.Table
	ln    net.Listener

	mu   sync.Mutex
	conn net.Conn
}

func New(addr string, table *params.Table) *Service {
	return &Service{addr: addr, table: table}
}

// Listen binds the service socket. Kept separate from Serve so bind failures
// surface as startup errors.
func (s *Service) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("ingest: listen on %s: %w", s.addr, err)
	}
	s.ln = ln
	slog.Info("ingest: listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address. Listen must have succeeded.
func (s *Service) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve accepts and handles connections sequentially until ctx is cancelled.
// An in-progress connection is served to EOF before the next is accepted.
// Peer errors never end the loop.
func (s *Service) Serve(ctx context.Context) error {
	defer s.ln.Close()

	go func() {
		<-ctx.Done()
		s.ln.Close()
		s.mu.Lock()
		if s.conn != nil {
			s.conn.Close()
		}
		s.mu.Unlock()
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			slog.Error("ingest: accept failed", "error", err)
			continue
		}
		s.serve(conn)
	}
}

func (s *Service) setConn(c net.Conn) {
	s.mu.Lock()
	s.conn = c
	s.mu.Unlock()
}

func (s *Service) serve(conn net.Conn) {
	id := xid.New().String()
	s.setConn(conn)
	defer func() {
		s.setConn(nil)
		conn.Close()
	}()

	slog.Info("ingest: client connected", "conn", id, "remote", conn.RemoteAddr().String())

	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		s.apply(id, sc.Text())
	}
	if err := sc.Err(); err != nil {
		slog.Warn("ingest: read failed", "conn", id, "error", err)
	}
	slog.Info("ingest: client disconnected", "conn", id)
}

// apply handles one record. Control characters the patch emits as message
// terminators are stripped before tokenizing.
func (s *Service) apply(id, raw string) {
	msg := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', ';':
			return -1
		}
		return r
	}, raw)
	if msg == "" {
		return
	}

	parts := strings.Fields(msg)
	if len(parts) != 2 {
		slog.Warn("ingest: dropping malformed message", "conn", id, "message", msg)
		return
	}

	name, value := parts[0], parts[1]
	if !s.table.Set(name, value == "1") {
		slog.Warn("ingest: unknown parameter", "conn", id, "parameter", name)
	}
}
