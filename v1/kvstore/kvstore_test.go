package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/Aleph-Alpha/rabbit-pool/v1/selector"
	"github.com/hashicorp/consul/api"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConsulKV struct {
	pairs map[string]*api.KVPair
	err   error
	calls int
}

func (f *fakeConsulKV) Get(key string, q *api.QueryOptions) (*api.KVPair, *api.QueryMeta, error) {
	f.calls++
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.pairs[key], &api.QueryMeta{}, nil
}

type fakeRedis struct {
	values map[string]string
	err    error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(map[string]string{"clusters/orders": `{"a":1}`})

	rec, err := s.Get(context.Background(), "clusters/orders")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, `{"a":1}`, string(rec.Value))

	rec, err = s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, rec)

	s.Put("missing", []byte("x"))
	rec, err = s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, "x", string(rec.Value))
}

func TestConsulStoreUsesSelectedAgent(t *testing.T) {
	first := &fakeConsulKV{pairs: map[string]*api.KVPair{
		"clusters/orders": {Key: "clusters/orders", Value: []byte("v1")},
	}}
	second := &fakeConsulKV{}

	s := NewConsulStore([]ConsulKV{first, second}, selector.First[ConsulKV]{})

	rec, err := s.Get(context.Background(), "clusters/orders")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(rec.Value))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)

	rec, err = s.Get(context.Background(), "other")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestConsulStoreErrors(t *testing.T) {
	s := NewConsulStore(nil, selector.First[ConsulKV]{})
	_, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrNoAgent)

	boom := errors.New("connection refused")
	s = NewConsulStore([]ConsulKV{&fakeConsulKV{err: boom}}, selector.First[ConsulKV]{})
	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
}

func TestRedisStore(t *testing.T) {
	s := NewRedisStore(&fakeRedis{values: map[string]string{"k": "payload"}})

	rec, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(rec.Value))

	rec, err = s.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, rec)

	boom := errors.New("i/o timeout")
	_, err = NewRedisStore(&fakeRedis{err: boom}).Get(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
}

func TestMinioResult(t *testing.T) {
	rec, err := minioResult("k", nil, minio.ErrorResponse{Code: "NoSuchKey"})
	require.NoError(t, err)
	assert.Nil(t, rec)

	_, err = minioResult("k", nil, minio.ErrorResponse{Code: "AccessDenied"})
	assert.Error(t, err)

	rec, err = minioResult("k", []byte("v"), nil)
	require.NoError(t, err)
	assert.Equal(t, "v", string(rec.Value))
}

func TestNew(t *testing.T) {
	store, closeStore, err := New(Config{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	assert.NoError(t, closeStore())

	_, _, err = New(Config{Backend: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	store, _, err = New(Config{Backend: BackendRedis, Redis: RedisConfig{Addresses: []string{"localhost:6379"}}})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, store)
}
