package rabbit

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Common RabbitMQ error types that can be used by consumers of this package.
// These provide a standardized set of errors that abstract away the
// underlying AMQP-specific error details.
var (
	// ErrConnectionFailed is returned when connection to RabbitMQ cannot be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrConnectionLost is returned when connection to RabbitMQ is lost
	ErrConnectionLost = errors.New("connection lost")

	// ErrConnectionClosed is returned when connection is closed
	ErrConnectionClosed = errors.New("connection closed")

	// ErrChannelClosed is returned when channel is closed
	ErrChannelClosed = errors.New("channel closed")

	// ErrChannelError is returned for channel-related errors
	ErrChannelError = errors.New("channel error")

	// ErrAuthenticationFailed is returned when authentication fails
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrAccessDenied is returned when access is denied to a resource
	ErrAccessDenied = errors.New("access denied")

	// ErrVirtualHostNotFound is returned when virtual host doesn't exist
	ErrVirtualHostNotFound = errors.New("virtual host not found")

	// ErrExchangeNotFound is returned when exchange doesn't exist
	ErrExchangeNotFound = errors.New("exchange not found")

	// ErrQueueNotFound is returned when queue doesn't exist
	ErrQueueNotFound = errors.New("queue not found")

	// ErrResourceLocked is returned when resource is locked, typically an
	// exclusive queue owned by another connection
	ErrResourceLocked = errors.New("resource locked")

	// ErrPreconditionFailed is returned when a redeclare does not match the
	// existing exchange or queue
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrNotAllowed is returned when operation is not allowed
	ErrNotAllowed = errors.New("not allowed")

	// ErrNotImplemented is returned when feature is not implemented
	ErrNotImplemented = errors.New("not implemented")

	// ErrInternalError is returned for internal errors
	ErrInternalError = errors.New("internal error")

	// ErrResourceError is returned for resource-related errors
	ErrResourceError = errors.New("resource error")

	// ErrProtocolError is returned for frame, syntax and command errors
	ErrProtocolError = errors.New("protocol error")

	// ErrTimeout is returned when operation times out
	ErrTimeout = errors.New("timeout")

	// ErrNetworkError is returned for network-related errors
	ErrNetworkError = errors.New("network error")

	// ErrTLSError is returned for TLS/SSL errors
	ErrTLSError = errors.New("TLS error")

	// ErrCertificateError is returned for certificate-related errors
	ErrCertificateError = errors.New("certificate error")

	// ErrCancelled is returned when operation is cancelled
	ErrCancelled = errors.New("operation cancelled")

	// ErrUnknownError is returned for unknown/unhandled errors
	ErrUnknownError = errors.New("unknown error")
)

// TranslateError converts AMQP/RabbitMQ-specific errors into standardized application errors.
// This function provides abstraction from the underlying AMQP implementation details,
// allowing callers to classify a dropped node or channel without inspecting amqp091 types.
//
// If an error doesn't match any known type, it's returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return ErrCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	// amqp.ErrClosed is itself an *amqp.Error with a channel error code
	if errors.Is(err, amqp.ErrClosed) {
		return ErrChannelClosed
	}

	// Check for AMQP specific errors
	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		return translateAMQPError(amqpErr)
	}

	// Check for syscall errors before net.Error, *net.OpError wraps them
	var syscallErr syscall.Errno
	if errors.As(err, &syscallErr) {
		return translateSyscallError(syscallErr)
	}

	// Check for network errors
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return ErrNetworkError
	}

	// Check error message for common patterns (fallback for string matching)
	return translateByErrorMessage(strings.ToLower(err.Error()), err)
}

// translateAMQPError maps AMQP error codes to custom errors
func translateAMQPError(amqpErr *amqp.Error) error {
	switch amqpErr.Code {
	// Connection-level errors
	case amqp.ConnectionForced:
		return ErrConnectionClosed
	case amqp.InvalidPath:
		return ErrVirtualHostNotFound
	case amqp.AccessRefused:
		return ErrAccessDenied
	case amqp.NotFound:
		return notFoundKind(amqpErr.Reason)
	case amqp.ResourceLocked:
		return ErrResourceLocked
	case amqp.PreconditionFailed:
		return ErrPreconditionFailed

	// Channel-level errors
	case amqp.ChannelError:
		return ErrChannelError
	case amqp.ResourceError:
		return ErrResourceError
	case amqp.NotAllowed:
		return ErrNotAllowed
	case amqp.NotImplemented:
		return ErrNotImplemented
	case amqp.InternalError:
		return ErrInternalError

	// Frame-level errors
	case amqp.SyntaxError, amqp.CommandInvalid, amqp.FrameError, amqp.UnexpectedFrame:
		return ErrProtocolError

	default:
		return translateByErrorMessage(strings.ToLower(amqpErr.Reason), amqpErr)
	}
}

// notFoundKind narrows a 404 by its reason, e.g. "NOT_FOUND - no exchange 'x' in vhost '/'".
func notFoundKind(reason string) error {
	reason = strings.ToLower(reason)
	switch {
	case strings.Contains(reason, "exchange"):
		return ErrExchangeNotFound
	case strings.Contains(reason, "queue"):
		return ErrQueueNotFound
	default:
		return ErrVirtualHostNotFound
	}
}

// translateSyscallError maps syscall errors to custom errors
func translateSyscallError(syscallErr syscall.Errno) error {
	switch syscallErr {
	case syscall.ECONNREFUSED:
		return ErrConnectionFailed
	case syscall.ECONNRESET, syscall.ECONNABORTED, syscall.EPIPE, syscall.ENOTCONN:
		return ErrConnectionLost
	case syscall.ETIMEDOUT:
		return ErrTimeout
	case syscall.EACCES, syscall.EPERM:
		return ErrAccessDenied
	default:
		return ErrNetworkError
	}
}

// translateByErrorMessage translates errors based on error message patterns (fallback)
func translateByErrorMessage(errMsg string, originalErr error) error {
	switch {
	case strings.Contains(errMsg, "connection refused"):
		return ErrConnectionFailed
	case strings.Contains(errMsg, "connection reset"):
		return ErrConnectionLost
	case strings.Contains(errMsg, "channel/connection is not open"):
		return ErrChannelClosed
	case strings.Contains(errMsg, "no route to host"),
		strings.Contains(errMsg, "network is unreachable"),
		strings.Contains(errMsg, "no such host"):
		return ErrNetworkError

	case strings.Contains(errMsg, "username or password not allowed"),
		strings.Contains(errMsg, "login refused"),
		strings.Contains(errMsg, "authentication failed"):
		return ErrAuthenticationFailed
	case strings.Contains(errMsg, "access refused"),
		strings.Contains(errMsg, "access denied"):
		return ErrAccessDenied

	case strings.Contains(errMsg, "certificate"), strings.Contains(errMsg, "x509"):
		return ErrCertificateError
	case strings.Contains(errMsg, "tls"), strings.Contains(errMsg, "handshake"):
		return ErrTLSError

	case strings.Contains(errMsg, "precondition_failed"),
		strings.Contains(errMsg, "inequivalent arg"):
		return ErrPreconditionFailed

	case strings.Contains(errMsg, "timeout"), strings.Contains(errMsg, "deadline exceeded"):
		return ErrTimeout

	default:
		return originalErr
	}
}

// IsConnectionError returns true if the error is connection-related
func IsConnectionError(err error) bool {
	switch {
	case errors.Is(err, ErrConnectionFailed),
		errors.Is(err, ErrConnectionLost),
		errors.Is(err, ErrConnectionClosed),
		errors.Is(err, ErrNetworkError),
		errors.Is(err, ErrTimeout):
		return true
	default:
		return false
	}
}

// IsTopologyError returns true if the broker rejected a declare or bind
func IsTopologyError(err error) bool {
	switch {
	case errors.Is(err, ErrPreconditionFailed),
		errors.Is(err, ErrResourceLocked),
		errors.Is(err, ErrExchangeNotFound),
		errors.Is(err, ErrQueueNotFound),
		errors.Is(err, ErrAccessDenied),
		errors.Is(err, ErrNotAllowed):
		return true
	default:
		return false
	}
}
