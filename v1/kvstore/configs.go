package kvstore

import "github.com/Aleph-Alpha/rabbit-pool/v1/consul"

// Supported values of Config.Backend.
const (
	BackendConsul   = "consul"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMinio    = "minio"
	BackendMemory   = "memory"
)

// Config selects and configures the topology store backend.
type Config struct {
	Backend string `envconfig:"BACKEND" default:"consul"`

	Consul   consul.Config  `envconfig:"CONSUL"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	Postgres PostgresConfig `envconfig:"POSTGRES"`
	Minio    MinioConfig    `envconfig:"MINIO"`
}

// RedisConfig configures the Redis backend. Several addresses select a
// cluster client.
type RedisConfig struct {
	Addresses []string `envconfig:"ADDRESSES" default:"localhost:6379"`
	Username  string   `envconfig:"USERNAME"`
	Password  string   `envconfig:"PASSWORD"`
	DB        int      `envconfig:"DB"`
	TLS       bool     `envconfig:"TLS"`
}

// PostgresConfig configures the Postgres backend.
type PostgresConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	DbName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`

	// Table holds one row per key.
	Table string `envconfig:"TABLE" default:"topology_records"`
}

// MinioConfig configures the object storage backend. Keys are object names.
type MinioConfig struct {
	Endpoint        string `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	UseSSL          bool   `envconfig:"USE_SSL"`
	Bucket          string `envconfig:"BUCKET" default:"topology"`
	Region          string `envconfig:"REGION"`
}
