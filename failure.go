package restokit

import "fmt"

// FailureKind is the closed classification of why a call did not succeed.
// The producer picks the kind once at construction and it never changes.
type FailureKind uint8

const (
	// FailureNetwork covers every transport-level problem raised before a
	// response is obtained: connection refused, DNS failure, timeout.
	FailureNetwork FailureKind = iota

	// FailureServer covers 5xx responses (500, 502, 503) and HTML error
	// pages returned in place of JSON by misconfigured gateways.
	FailureServer

	// FailureValidation corresponds to HTTP 400.
	FailureValidation

	// FailureAuthentication corresponds to HTTP 401.
	FailureAuthentication

	// FailurePermission corresponds to HTTP 403.
	FailurePermission

	// FailureNotFound corresponds to HTTP 404.
	FailureNotFound

	// FailureGeneric is the fallback for unmapped status codes and for
	// response bodies that cannot be parsed as JSON.
	FailureGeneric
)

// String returns the canonical lowercase name of the kind. Unknown values
// render as "generic" so a Failure always stays printable.
func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureServer:
		return "server"
	case FailureValidation:
		return "validation"
	case FailureAuthentication:
		return "authentication"
	case FailurePermission:
		return "permission"
	case FailureNotFound:
		return "not_found"
	default:
		return "generic"
	}
}

// Failure is an immutable value describing a classified call failure. The
// message is the sole payload and is guaranteed non-empty, so UI layers can
// display it verbatim.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Error implements the error interface as "<kind>: <message>", keeping
// failures both human- and machine-scannable in logs.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// NetworkFailure builds a Failure of kind FailureNetwork.
func NetworkFailure(msg string) Failure { return newFailure(FailureNetwork, msg) }

// ServerFailure builds a Failure of kind FailureServer.
func ServerFailure(msg string) Failure { return newFailure(FailureServer, msg) }

// ValidationFailure builds a Failure of kind FailureValidation.
func ValidationFailure(msg string) Failure { return newFailure(FailureValidation, msg) }

// AuthenticationFailure builds a Failure of kind FailureAuthentication.
func AuthenticationFailure(msg string) Failure { return newFailure(FailureAuthentication, msg) }

// PermissionFailure builds a Failure of kind FailurePermission.
func PermissionFailure(msg string) Failure { return newFailure(FailurePermission, msg) }

// NotFoundFailure builds a Failure of kind FailureNotFound.
func NotFoundFailure(msg string) Failure { return newFailure(FailureNotFound, msg) }

// GenericFailure builds a Failure of kind FailureGeneric.
func GenericFailure(msg string) Failure { return newFailure(FailureGeneric, msg) }

func newFailure(kind FailureKind, msg string) Failure {
	if msg == "" {
		msg = defaultMessage(kind)
	}
	return Failure{Kind: kind, Message: msg}
}

// defaultMessage keeps the non-empty-message guarantee when a producer has
// nothing better to say.
func defaultMessage(kind FailureKind) string {
	switch kind {
	case FailureNetwork:
		return "network error"
	case FailureServer:
		return "server error"
	case FailureValidation:
		return "validation failed"
	case FailureAuthentication:
		return "authentication failed"
	case FailurePermission:
		return "permission denied"
	case FailureNotFound:
		return "resource not found"
	default:
		return "something went wrong"
	}
}
