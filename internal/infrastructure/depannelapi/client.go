// Package depannelapi is the adapter for the Depannel backing service REST
// API. It owns every wire detail: paths, envelopes, the status vocabulary
// and the mapping of HTTP outcomes onto the lifecycle error taxonomy.
package depannelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/infrastructure/metrics"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://intervention.tekfaso.com/api"
	DefaultTimeout = 15 * time.Second

	maxErrorBody = 4 << 10
)

// Options configures a Client. A zero RequestsPerSec disables rate
// limiting.
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
	HTTPClient     *http.Client
}

// Client talks to the backing service on behalf of an explicit principal.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/") + "/")
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", raw)
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	limit := rate.Inf
	burst := 1
	if opts.RequestsPerSec > 0 {
		limit = rate.Limit(opts.RequestsPerSec)
		burst = int(opts.RequestsPerSec)
		if burst < 1 {
			burst = 1
		}
	}
	return &Client{baseURL: base, http: hc, limiter: rate.NewLimiter(limit, burst)}, nil
}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	// anonymous calls carry no bearer token and do not treat 401 as an
	// expired session
	anonymous bool
}

// do executes c and returns the raw 2xx body.
func (cl *Client) do(ctx context.Context, p entities.Principal, c call) ([]byte, error) {
	if err := cl.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", lifecycle.ErrRemoteUnreachable, err)
	}

	target := cl.baseURL.ResolveReference(&url.URL{Path: strings.TrimLeft(c.path, "/")})
	if len(c.query) > 0 {
		target.RawQuery = c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", c.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", c.op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !c.anonymous {
		if p.Token == "" {
			return nil, fmt.Errorf("%w: no credential", lifecycle.ErrSessionExpired)
		}
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	started := time.Now()
	resp, err := cl.http.Do(req)
	if err != nil {
		metrics.RemoteRequests.WithLabelValues(c.op, metrics.StatusClass(0)).Inc()
		log.Printf("[depannelapi] %s failed request_id=%s err=%v", c.op, requestID, err)
		return nil, fmt.Errorf("%w: %s: %v", lifecycle.ErrRemoteUnreachable, c.op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RemoteRequests.WithLabelValues(c.op, metrics.StatusClass(0)).Inc()
		return nil, fmt.Errorf("%w: %s: read body: %v", lifecycle.ErrRemoteUnreachable, c.op, err)
	}
	metrics.RemoteRequests.WithLabelValues(c.op, metrics.StatusClass(resp.StatusCode)).Inc()
	log.Printf("[depannelapi] %s %s status=%d request_id=%s took=%s", c.method, c.path, resp.StatusCode, requestID, time.Since(started))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	msg := errorMessage(data)
	if resp.StatusCode == http.StatusUnauthorized && !c.anonymous {
		if msg == "" {
			return nil, lifecycle.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %s", lifecycle.ErrSessionExpired, msg)
	}
	return nil, &lifecycle.RemoteError{StatusCode: resp.StatusCode, Message: msg}
}

// errorMessage extracts the server-provided text. JSON bodies expose it as
// "message" or "error"; anything else is returned as-is.
func errorMessage(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		var s string
		if json.Unmarshal(body.Error, &s) == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}
	}
	if len(data) > maxErrorBody {
		data = data[:maxErrorBody]
	}
	return string(data)
}

// IsNotFound reports whether err is a 404 from the backing service.
func IsNotFound(err error) bool {
	var re *lifecycle.RemoteError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}
