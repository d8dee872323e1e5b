package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// topologyRecord is one row of the descriptor table.
type topologyRecord struct {
	Key       string `gorm:"column:key;primaryKey"`
	Value     string `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time
}

// PostgresStore keeps descriptors in a key/value table.
type PostgresStore struct {
	db    *gorm.DB
	table string
}

// NewPostgresStore uses an open gorm connection and the given table name.
func NewPostgresStore(db *gorm.DB, table string) *PostgresStore {
	if table == "" {
		table = "topology_records"
	}
	return &PostgresStore{db: db, table: table}
}

// OpenPostgres opens a gorm connection for cfg.
func OpenPostgres(cfg PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DbName,
		cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("kvstore: failed to open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).Table(s.table).AutoMigrate(&topologyRecord{})
}

func (s *PostgresStore) Get(ctx context.Context, key string) (*Record, error) {
	var rec topologyRecord
	err := s.db.WithContext(ctx).Table(s.table).Where("key = ?", key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: postgres get %s: %w", key, err)
	}
	return &Record{Key: rec.Key, Value: []byte(rec.Value)}, nil
}

// Put inserts or replaces the value for key.
func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	rec := topologyRecord{Key: key, Value: string(value), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
