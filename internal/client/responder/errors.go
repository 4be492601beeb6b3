package responder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type Kind string

const (
	KindAuth        Kind = "auth"
	KindNotFound    Kind = "not_found"
	KindRateLimited Kind = "rate_limited"
	KindNetwork     Kind = "network"
	KindUnknown     Kind = "unknown"
)

// Error is a classified chat-completion failure. Error() is safe to show to
// the user; Cause keeps the transport error for logs.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string { return e.Detail }

func (e *Error) Unwrap() error { return e.Cause }

// IsKind reports whether err carries a responder error of the given kind.
func IsKind(err error, kind Kind) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == kind
}

// classify maps a go-openai or transport error onto an Error. model and
// baseURL only enrich the 404 messages.
func classify(err error, model, baseURL string) *Error {
	if err == nil {
		return nil
	}

	var re *Error
	if errors.As(err, &re) {
		return re
	}

	status, message := statusOf(err)
	lower := strings.ToLower(message)

	switch {
	case status == http.StatusUnauthorized || strings.Contains(lower, "unauthorized") || strings.Contains(lower, "invalid api key"):
		return &Error{Kind: KindAuth, Detail: "API key is invalid or expired", Cause: err}
	case status == http.StatusNotFound:
		if strings.Contains(lower, "model") || strings.Contains(lower, "not found") {
			return &Error{Kind: KindNotFound, Detail: fmt.Sprintf("model %q does not exist or is unavailable (base URL %s)", model, baseURL), Cause: err}
		}
		return &Error{Kind: KindNotFound, Detail: fmt.Sprintf("endpoint path not found (404), check base URL %s", baseURL), Cause: err}
	case status == http.StatusForbidden || strings.Contains(lower, "forbidden"):
		return &Error{Kind: KindAuth, Detail: "API key has no permission for this resource", Cause: err}
	case status == http.StatusTooManyRequests || strings.Contains(lower, "rate limit"):
		return &Error{Kind: KindRateLimited, Detail: "too many requests, try again later", Cause: err}
	case isTimeout(err):
		return &Error{Kind: KindNetwork, Detail: "connection timed out, check that the base URL is reachable", Cause: err}
	case isNetwork(err):
		return &Error{Kind: KindNetwork, Detail: "cannot connect to the base URL, check the network or the URL", Cause: err}
	}

	if message == "" {
		message = err.Error()
	}
	return &Error{Kind: KindUnknown, Detail: message, Cause: err}
}

func statusOf(err error) (int, string) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, apiErr.Message
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := ""
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return reqErr.HTTPStatusCode, msg
	}

	return 0, err.Error()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetwork(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
