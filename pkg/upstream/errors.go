// Package upstream pkg/upstream/errors.go failure taxonomy for appliance calls.
package upstream

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"syscall"
)

var (
	// ErrServiceUnavailable marks the fast-fail path: the appliance was
	// marked unreachable and no call was attempted.
	ErrServiceUnavailable = errors.New("appliance unavailable")

	// ErrPollingStopped marks a poll loop that has tripped its failure
	// threshold and needs an explicit restart.
	ErrPollingStopped = errors.New("polling stopped")

	errRequestFailed = errors.New("request failed")
	errStatusError   = errors.New("upstream status error")
)

// FailureKind classifies the outcome of one appliance call.
type FailureKind int

const (
	// FailureNone means the call succeeded.
	FailureNone FailureKind = iota
	// FailureUnreachable is a connection-refused class error: the host is
	// there but nothing is listening. Availability is dropped.
	FailureUnreachable
	// FailureTimeout is a timed-out or aborted request.
	FailureTimeout
	// FailureTLS is a certificate problem. The deployment trusts the
	// appliance's self-signed certificate, so this never counts against it.
	FailureTLS
	// FailureStatus means the appliance responded with a non-2xx status.
	// The service is reachable even though the call failed.
	FailureStatus
	// FailureNoResponse covers every remaining way to not get a response.
	FailureNoResponse
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureUnreachable:
		return "unreachable"
	case FailureTimeout:
		return "timeout"
	case FailureTLS:
		return "tls"
	case FailureStatus:
		return "status"
	case FailureNoResponse:
		return "no response"
	default:
		return "unknown"
	}
}

// classifyError maps a transport error from http.Client.Do onto the
// failure taxonomy.
func classifyError(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return FailureUnreachable
	}

	if isTLSError(err) {
		return FailureTLS
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	return FailureNoResponse
}

func isTLSError(err error) bool {
	var (
		certInvalid   x509.CertificateInvalidError
		unknownAuth   x509.UnknownAuthorityError
		hostnameErr   x509.HostnameError
		recordHeader  tls.RecordHeaderError
		certVerifyErr *tls.CertificateVerificationError
	)

	return errors.As(err, &certInvalid) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &recordHeader) ||
		errors.As(err, &certVerifyErr)
}
