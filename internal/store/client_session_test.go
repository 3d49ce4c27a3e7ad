package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestSessionStore(t *testing.T) SessionStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.db")
	s, err := NewSessionStore(path)
	if err != nil {
		t.Fatalf("failed to open session store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	s := newTestSessionStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	s := newTestSessionStore(t)
	ctx := context.Background()

	in := Session{Email: "jane@example.com", Token: "token-1"}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestSessionStore_SaveReplacesPrevious(t *testing.T) {
	s := newTestSessionStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, Session{Email: "jane@example.com", Token: "token-1"}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.Save(ctx, Session{Email: "bob@example.com", Token: "token-2"}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if out.Email != "bob@example.com" || out.Token != "token-2" {
		t.Errorf("expected the second session to win, got %+v", out)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	s := newTestSessionStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, Session{Email: "jane@example.com", Token: "token-1"}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}

	_, err := s.Load(ctx)
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound after clear, got %v", err)
	}
}
