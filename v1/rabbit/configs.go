package rabbit

import (
	"context"
	"time"
)

// defaultDialTimeout matches the connection timeout amqp091 applies itself.
const defaultDialTimeout = 30 * time.Second

// Config holds the dial settings shared by every broker connection the
// dialer opens. The target itself (credentials, host, port, vhost) comes
// from the URI passed to Dial.
type Config struct {
	// Heartbeat is the AMQP heartbeat interval negotiated with the broker.
	Heartbeat time.Duration `envconfig:"HEARTBEAT" default:"2s"`

	// DialTimeout bounds connecting to a single node, TCP connect and
	// AMQP handshake together. Zero means defaultDialTimeout.
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"10s"`

	// ConnectionName is reported to the broker as the client-provided
	// connection name and shows up in the management UI.
	ConnectionName string `envconfig:"CONNECTION_NAME" default:"rabbit-pool"`

	// TLS is applied to amqps:// URIs only.
	TLS TLSConfig `envconfig:"TLS"`
}

// TLSConfig contains the certificate settings for amqps:// connections.
type TLSConfig struct {
	// CACertPath is the file path to the CA certificate for verifying the server.
	// Empty uses the system roots.
	CACertPath string `envconfig:"CA_CERT_PATH"`

	// UseCert determines whether to send a client certificate for mutual TLS.
	UseCert bool `envconfig:"USE_CERT"`

	// ClientCertPath is the file path to the client certificate.
	ClientCertPath string `envconfig:"CLIENT_CERT_PATH"`

	// ClientKeyPath is the file path to the client certificate's private key.
	ClientKeyPath string `envconfig:"CLIENT_KEY_PATH"`

	// ServerName overrides the name verified against the server certificate.
	// Empty uses the URI host.
	ServerName string `envconfig:"SERVER_NAME"`
}

// Logger is an interface that matches the v1/logger.Logger interface.
// It provides context-aware structured logging with optional error and field parameters.
type Logger interface {
	// InfoWithContext logs an informational message with trace context.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
