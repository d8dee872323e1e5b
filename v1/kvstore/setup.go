package kvstore

import (
	"fmt"

	"github.com/Aleph-Alpha/rabbit-pool/v1/consul"
	"github.com/Aleph-Alpha/rabbit-pool/v1/selector"
)

func noopClose() error { return nil }

// New builds the backend selected by cfg.Backend. The returned function
// releases the backend's connections.
//
// Example:
//
//	store, closeStore, err := kvstore.New(kvstore.Config{
//		Backend: kvstore.BackendRedis,
//		Redis:   kvstore.RedisConfig{Addresses: []string{"localhost:6379"}},
//	})
//	if err != nil {
//		return err
//	}
//	defer closeStore()
func New(cfg Config) (Store, func() error, error) {
	switch cfg.Backend {
	case BackendConsul, "":
		clients, err := consul.NewAgents(cfg.Consul)
		if err != nil {
			return nil, nil, err
		}
		return NewConsulStoreFromClients(clients, selector.NewRandomFromTime[ConsulKV]()), noopClose, nil

	case BackendRedis:
		client := NewRedisClient(cfg.Redis)
		return NewRedisStore(client), client.Close, nil

	case BackendPostgres:
		db, err := OpenPostgres(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return NewPostgresStore(db, cfg.Postgres.Table), closeDB, nil

	case BackendMinio:
		client, err := NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, nil, err
		}
		return NewMinioStore(client, cfg.Minio.Bucket), noopClose, nil

	case BackendMemory:
		return NewMemoryStore(nil), noopClose, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
