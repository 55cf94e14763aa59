package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
	"github.com/jsamuelsen11/timekeeper/internal/platform/httpclient"
)

// maxBodySize caps how much of any policy service response is read.
const maxBodySize = 1 << 20

// exchange POSTs in as JSON to path and decodes a 200 answer into Resp.
// Every error it returns is a *domain.Error.
func exchange[Resp any](ctx context.Context, client *httpclient.Client, path string, in any) (Resp, error) {
	var out Resp

	payload, err := json.Marshal(in)
	if err != nil {
		return out, domain.Fatal("encoding authorization request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.BaseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return out, domain.Fatal("building authorization request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Do hands back the last response together with an error once retries
	// run out on a retryable status.
	resp, err := client.Do(ctx, req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return out, fromResponse(resp)
		}
	}
	if err != nil {
		return out, fromTransport(err)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&out); err != nil {
		return out, domain.Fatal("malformed authorization response", fmt.Errorf("decoding %s: %w", path, err))
	}
	return out, nil
}

// fromResponse maps a non-200 answer. 401 and 403 are refusals. 429 and 5xx
// mean the service is unavailable. Anything else means this service sent a
// request the policy service rejects, which is a bug and therefore Fatal.
func fromResponse(resp *http.Response) error {
	detail := problemDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return domain.Unauthorized(detail)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return domain.DependencyUnavailable("authorization service unavailable",
			fmt.Errorf("status %d: %s", code, detail))
	default:
		return domain.Fatal("authorization request rejected",
			fmt.Errorf("unexpected status %d: %s", code, detail))
	}
}

// fromTransport maps a failure to get any answer. The cause stays on the
// chain so cancellation and deadlines remain visible to errors.Is.
func fromTransport(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.DependencyUnavailable("authorization service unavailable (circuit open)", err)
	}
	return domain.DependencyUnavailable("authorization service unreachable", err)
}

// problemDetail returns the detail member of an RFC 9457 body, or "" when
// the body is absent, of another media type or unparsable.
func problemDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return ""
	}
	var pd struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&pd); err != nil {
		return ""
	}
	return pd.Detail
}
