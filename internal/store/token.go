package store

import (
	"github.com/VinaySai005/SkillSwap-dt/internal/model"
)

// Refresh tokens live alongside the entity collections so login state
// survives exactly as long as the rest of the volatile store.

func (s *Store) SaveRefreshToken(token model.RefreshToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token.CreatedAt.IsZero() {
		token.CreatedAt = now()
	}
	s.tokensByHash[token.TokenHash] = &token
}

func (s *Store) RefreshTokenByHash(hash string) (*model.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokensByHash[hash]
	if !ok || token.ExpiresAt.Before(now()) {
		return nil, ErrNotFound
	}
	out := *token
	return &out, nil
}

func (s *Store) DeleteRefreshToken(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokensByHash, hash)
}
