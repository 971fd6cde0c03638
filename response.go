package restokit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// rawResponse is what survives the transport boundary: status code, declared
// content type and the fully-read body.
type rawResponse struct {
	status      int
	contentType string
	body        []byte
}

func (r *rawResponse) isSuccess() bool {
	return r.status >= 200 && r.status <= 299
}

// decodeObject classifies a raw response for the scalar operations. A 2xx
// JSON object is returned as-is; any other 2xx root payload is wrapped as
// {"data": <payload>} so the success type stays uniform.
func decodeObject(raw *rawResponse) Result[Object] {
	payload, failure := parsePayload(raw)
	if failure != nil {
		return Fail[Object](*failure)
	}
	if raw.isSuccess() {
		if obj, ok := payload.(map[string]any); ok {
			return Success(obj)
		}
		return Success(Object{"data": payload})
	}
	return Fail[Object](classifyStatus(raw.status, payload))
}

// decodeList classifies a raw response for the list operation. On 2xx it
// accepts a bare array, or an object carrying an array under "data";
// anything else yields an empty slice. Lenient on purpose: an absent or
// oddly-shaped list is never a failure.
func decodeList(raw *rawResponse) Result[[]any] {
	payload, failure := parsePayload(raw)
	if failure != nil {
		return Fail[[]any](*failure)
	}
	if raw.isSuccess() {
		if arr, ok := payload.([]any); ok {
			return Success(arr)
		}
		if obj, ok := payload.(map[string]any); ok {
			if arr, ok := obj["data"].([]any); ok {
				return Success(arr)
			}
		}
		return Success([]any{})
	}
	return Fail[[]any](classifyStatus(raw.status, payload))
}

// parsePayload turns the raw body into a decoded JSON value, guarding first
// against HTML masquerading as JSON. Tunneling proxies and misconfigured
// gateways return HTML error pages with a 200 status; parsing those as JSON
// would produce a misleading failure, so they are detected up front and
// reported as server failures carrying the original status code.
//
// An empty body decodes to nil rather than failing, matching how the mobile
// client's transport treated bodyless 2xx responses.
func parsePayload(raw *rawResponse) (any, *Failure) {
	if looksLikeHTML(raw.contentType, raw.body) {
		f := ServerFailure(fmt.Sprintf("Server returned HTML instead of JSON. Status: %d", raw.status))
		return nil, &f
	}
	trimmed := bytes.TrimSpace(raw.body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		f := GenericFailure("Failed to parse response: " + err.Error())
		return nil, &f
	}
	return payload, nil
}

// looksLikeHTML reports whether the response declares or sniffs as an HTML
// document. Leading whitespace before the document declaration is tolerated.
func looksLikeHTML(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	head := bytes.ToLower(bytes.TrimSpace(body))
	if len(head) > 16 {
		head = head[:16]
	}
	return bytes.HasPrefix(head, []byte("<!doctype")) || bytes.HasPrefix(head, []byte("<html"))
}

// classifyStatus maps a non-2xx status code to its failure kind, with the
// message extracted from the response body.
func classifyStatus(status int, payload any) Failure {
	msg := extractMessage(status, payload)
	switch status {
	case 400:
		return ValidationFailure(msg)
	case 401:
		return AuthenticationFailure(msg)
	case 403:
		return PermissionFailure(msg)
	case 404:
		return NotFoundFailure(msg)
	case 500, 502, 503:
		return ServerFailure(msg)
	default:
		return GenericFailure(msg)
	}
}

// extractMessage pulls a human-readable message out of an error body: a
// "message" field first, then an "error" field, then a bare string body,
// then a generated fallback.
func extractMessage(status int, payload any) string {
	switch v := payload.(type) {
	case map[string]any:
		if s, ok := v["message"].(string); ok && s != "" {
			return s
		}
		if s, ok := v["error"].(string); ok && s != "" {
			return s
		}
	case string:
		if v != "" {
			return v
		}
	}
	return fmt.Sprintf("Server error: %d", status)
}
