//go:build integration

package redisstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisStoreSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	store     *Store
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	container, err := tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)
	s.store, err = New(s.ctx, url, "tada:")
	s.Require().NoError(err)
}

func (s *RedisStoreSuite) TearDownSuite() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.store.client.FlushAll(s.ctx).Err())
}

func (s *RedisStoreSuite) TestMissingKey() {
	v, ok, err := s.store.Get(s.ctx, "myToDoList")
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(v)
}

func (s *RedisStoreSuite) TestSetThenGet() {
	s.Require().NoError(s.store.Set(s.ctx, "myToDoList", `[{"id":1,"text":"Buy milk"}]`))

	v, ok, err := s.store.Get(s.ctx, "myToDoList")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(`[{"id":1,"text":"Buy milk"}]`, v)

	raw, err := s.store.client.Get(s.ctx, "tada:myToDoList").Result()
	s.Require().NoError(err)
	s.Equal(v, raw, "values live under the prefix")
}

func (s *RedisStoreSuite) TestBadURL() {
	_, err := New(s.ctx, "://nope", "")
	s.Error(err)
}
