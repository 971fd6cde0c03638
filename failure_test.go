package restokit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKindString(t *testing.T) {
	cases := map[FailureKind]string{
		FailureNetwork:        "network",
		FailureServer:         "server",
		FailureValidation:     "validation",
		FailureAuthentication: "authentication",
		FailurePermission:     "permission",
		FailureNotFound:       "not_found",
		FailureGeneric:        "generic",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}

	// Out-of-range values must stay printable.
	assert.Equal(t, "generic", FailureKind(200).String())
}

func TestFailureConstructors(t *testing.T) {
	cases := []struct {
		failure Failure
		kind    FailureKind
	}{
		{NetworkFailure("m"), FailureNetwork},
		{ServerFailure("m"), FailureServer},
		{ValidationFailure("m"), FailureValidation},
		{AuthenticationFailure("m"), FailureAuthentication},
		{PermissionFailure("m"), FailurePermission},
		{NotFoundFailure("m"), FailureNotFound},
		{GenericFailure("m"), FailureGeneric},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.failure.Kind)
		assert.Equal(t, "m", tc.failure.Message)
	}
}

func TestFailureMessageNeverEmpty(t *testing.T) {
	for _, f := range []Failure{
		NetworkFailure(""),
		ServerFailure(""),
		ValidationFailure(""),
		AuthenticationFailure(""),
		PermissionFailure(""),
		NotFoundFailure(""),
		GenericFailure(""),
	} {
		assert.NotEmpty(t, f.Message, "kind %s", f.Kind)
	}
}

func TestFailureErrorFormat(t *testing.T) {
	f := AuthenticationFailure("Invalid credentials")
	assert.Equal(t, "authentication: Invalid credentials", f.Error())
}
