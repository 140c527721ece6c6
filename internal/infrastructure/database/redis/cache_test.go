package redis

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

type CacheTestSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	cache Cache
}

func (s *CacheTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	client := NewClientFromUniversal(db, &RedisConfig{}, logging.NewNopLogger())
	s.cache = NewRedisCache(client, logging.NewNopLogger(), WithPrefix("test:"), WithTTLJitter(0))
}

func (s *CacheTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

type cachedIdentity struct {
	CID  int    `json:"cid"`
	Name string `json:"name"`
}

func (s *CacheTestSuite) TestGet_Hit() {
	val := cachedIdentity{CID: 702, Name: "Ethanol"}
	raw, _ := json.Marshal(val)
	s.mock.ExpectGet("test:cid:64-17-5").SetVal(string(raw))

	var dest cachedIdentity
	err := s.cache.Get(context.Background(), "cid:64-17-5", &dest)
	s.NoError(err)
	s.Equal(val, dest)
}

func (s *CacheTestSuite) TestGet_Miss() {
	s.mock.ExpectGet("test:k").RedisNil()

	var dest cachedIdentity
	err := s.cache.Get(context.Background(), "k", &dest)
	s.Equal(ErrCacheMiss, err)
	s.True(pkgerrors.IsNotFound(err))
}

func (s *CacheTestSuite) TestGet_BackendError() {
	s.mock.ExpectGet("test:k").SetErr(stderrors.New("connection reset"))

	var dest cachedIdentity
	err := s.cache.Get(context.Background(), "k", &dest)
	s.Error(err)
	s.True(pkgerrors.IsCode(err, pkgerrors.ErrCodeCacheUnavailable))
	s.False(pkgerrors.IsNotFound(err))
}

func (s *CacheTestSuite) TestGet_CorruptPayload() {
	s.mock.ExpectGet("test:k").SetVal("{not json")

	var dest cachedIdentity
	err := s.cache.Get(context.Background(), "k", &dest)
	s.True(pkgerrors.IsCode(err, pkgerrors.ErrCodeCacheCodec))
}

func (s *CacheTestSuite) TestSet_UsesExplicitTTL() {
	val := cachedIdentity{CID: 180}
	raw, _ := json.Marshal(val)
	s.mock.ExpectSet("test:k", raw, time.Hour).SetVal("OK")

	s.NoError(s.cache.Set(context.Background(), "k", val, time.Hour))
}

func (s *CacheTestSuite) TestSet_DefaultTTL() {
	raw, _ := json.Marshal(42)
	s.mock.ExpectSet("test:k", raw, 24*time.Hour).SetVal("OK")

	s.NoError(s.cache.Set(context.Background(), "k", 42, 0))
}

func (s *CacheTestSuite) TestDelete() {
	s.mock.ExpectDel("test:k1", "test:k2").SetVal(2)
	s.NoError(s.cache.Delete(context.Background(), "k1", "k2"))
	s.NoError(s.cache.Delete(context.Background()))
}

func (s *CacheTestSuite) TestDeleteByPrefix() {
	s.mock.ExpectScan(0, "test:cid:*", 100).SetVal([]string{"test:cid:a", "test:cid:b"}, 7)
	s.mock.ExpectDel("test:cid:a", "test:cid:b").SetVal(2)
	s.mock.ExpectScan(7, "test:cid:*", 100).SetVal([]string{"test:cid:c"}, 0)
	s.mock.ExpectDel("test:cid:c").SetVal(1)

	n, err := s.cache.DeleteByPrefix(context.Background(), "cid:")
	s.NoError(err)
	s.Equal(int64(3), n)
}

func (s *CacheTestSuite) TestPing() {
	s.mock.ExpectPing().SetVal("PONG")
	s.NoError(s.cache.Ping(context.Background()))
}

func TestJitterTTL_NeverExceedsTTL(t *testing.T) {
	c := &redisCache{jitter: 0.1}
	for i := 0; i < 200; i++ {
		got := c.jitterTTL(time.Hour)
		assert.LessOrEqual(t, got, time.Hour)
		assert.GreaterOrEqual(t, got, 54*time.Minute)
	}
	assert.Equal(t, time.Duration(0), c.jitterTTL(0))
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}
