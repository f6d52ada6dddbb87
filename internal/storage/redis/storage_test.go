package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/ugordi/gladialore-admin/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) session(id string) *model.Session {
	return &model.Session{
		ID:           model.SessionID(id),
		Username:     "admin",
		AccessToken:  "access-" + id,
		RefreshToken: "refresh-" + id,
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ExpiresAt:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	err := s.storage.SaveSession(s.ctx, s.session("s1"))
	s.Require().NoError(err)

	got, err := s.storage.GetSession(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal("admin", got.Username)
	s.Equal("access-s1", got.AccessToken)
	s.Equal("refresh-s1", got.RefreshToken)
}

func (s *StorageSuite) TestGetMissingSessionReturnsNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nope")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionHasTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("s1")))

	ttl := s.mini.TTL(sessionKey("s1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestSessionExpiresAfterTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("s1")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "s1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.session("s1")))
	s.Require().NoError(s.storage.DeleteSession(s.ctx, "s1"))

	_, err := s.storage.GetSession(s.ctx, "s1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionIsNoOp() {
	s.NoError(s.storage.DeleteSession(s.ctx, "nope"))
}
