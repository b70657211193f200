// Package books owns the in-memory lifecycle of per-user aggregates: one
// cached snapshot per user, a per-aggregate lock serializing operations, and
// a two-phase commit against the document store. The remote patch must be
// acknowledged before the cached snapshot is replaced.
package books

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/obradorhq/obrador/internal/domain/models"
	"github.com/obradorhq/obrador/internal/repository/mongodb"
)

// Op is a reducer operation applied to a working copy of the aggregate. It
// returns the set of changed collections, or an error with no side effects.
type Op func(book *models.Book) (models.Patch, error)

// Service loads, caches and commits per-user aggregate documents.
type Service struct {
	repo   mongodb.Repository
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// session holds one user's cached snapshot. Its lock serializes operations
// against the same aggregate within this process; cross-process writers stay
// last-writer-wins.
type session struct {
	mu   sync.Mutex
	book *models.Book
}

// NewService constructs the aggregate service.
func NewService(repo mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

func (s *Service) session(userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := &session{}
	s.sessions[userID] = sess
	return sess
}

// loadLocked fills the session's snapshot from the store, creating an empty
// document on a user's first login. Caller holds sess.mu.
func (s *Service) loadLocked(ctx context.Context, sess *session, userID string) error {
	if sess.book != nil {
		return nil
	}

	book, err := s.repo.Load(ctx, userID)
	if errors.Is(err, mongodb.ErrBookNotFound) {
		book = models.NewBook(userID)
		if err := s.repo.Create(ctx, book); err != nil {
			return fmt.Errorf("bootstrap book: %w", err)
		}
		s.logger.Info("book created", zap.String("user_id", userID))
	} else if err != nil {
		return err
	}

	sess.book = book
	return nil
}

// Book returns a copy of the user's current snapshot, bootstrapping an empty
// aggregate on first access.
func (s *Service) Book(ctx context.Context, userID string) (*models.Book, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.loadLocked(ctx, sess, userID); err != nil {
		return nil, err
	}
	return sess.book.Clone(), nil
}

// Apply runs a reducer operation against a working copy of the snapshot,
// writes the resulting patch to the store, and only then swaps the cached
// snapshot for the mutated copy. A rejected write discards the copy, so the
// cache never drifts ahead of the store.
func (s *Service) Apply(ctx context.Context, userID string, op Op) (*models.Book, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.loadLocked(ctx, sess, userID); err != nil {
		return nil, err
	}

	working := sess.book.Clone()
	patch, err := op(working)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Patch(ctx, userID, patch); err != nil {
		s.logger.Error("patch rejected, snapshot kept",
			zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("commit patch: %w", err)
	}

	sess.book = working
	return working.Clone(), nil
}
