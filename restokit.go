// Package restokit is a Go client SDK for a restaurant-management REST
// backend (menu, orders, inventory, users, reviews).
//
// The package is the single point of contact with the remote service. Every
// public operation returns a Result value instead of an error: transport
// failures, HTML error pages from misconfigured gateways, malformed JSON and
// non-2xx status codes are all caught inside the client and classified into a
// closed failure taxonomy. Callers branch on the outcome with Fold (or the
// ValueOrNil/FailureOrNil accessors) and never see a raw transport error.
//
// Example usage:
//
//	client, err := restokit.New("https://api.example.com",
//	    restokit.WithLogger(logger),
//	    restokit.WithReceiveTimeout(10*time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//
//	res := client.Get(ctx, "/menu", restokit.WithToken(token))
//	menu := restokit.Fold(res,
//	    func(obj restokit.Object) restokit.Object { return obj },
//	    func(f restokit.Failure) restokit.Object { return nil },
//	)
//
// Thread safety: a Client holds only immutable configuration after New, so
// concurrent calls on one instance are safe without locking. Calls are
// independent request/response cycles with no ordering guarantee, no retry
// and no shared state; a failed call never invalidates the client.
package restokit

import (
	"context"
	"net/http"
)

// Object is the untyped JSON-object payload returned by the scalar
// operations. Repositories decode it into their own domain entities.
type Object = map[string]any

// Doer abstracts the HTTP transport so tests can substitute a fake.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// API is the full operation surface of the client. Each operation takes an
// endpoint path relative to the configured base URL plus optional per-call
// options (query parameters, bearer token) and returns a Result; it never
// panics and never returns a Go error.
type API interface {
	// Get fetches a single JSON object.
	Get(ctx context.Context, endpoint string, opts ...CallOption) Result[Object]

	// GetList fetches a JSON array. A 2xx response whose body is neither a
	// bare array nor an object with an array-typed "data" field yields an
	// empty slice, never a failure.
	GetList(ctx context.Context, endpoint string, opts ...CallOption) Result[[]any]

	// Post creates a resource. body is serialized as JSON when non-nil.
	Post(ctx context.Context, endpoint string, body any, opts ...CallOption) Result[Object]

	// Put replaces a resource. body is serialized as JSON when non-nil.
	Put(ctx context.Context, endpoint string, body any, opts ...CallOption) Result[Object]

	// Patch partially updates a resource. body is serialized as JSON when non-nil.
	Patch(ctx context.Context, endpoint string, body any, opts ...CallOption) Result[Object]

	// Delete removes a resource.
	Delete(ctx context.Context, endpoint string, opts ...CallOption) Result[Object]
}
