// Package httpwebhook provides a webhook.Client that issues bearer
// authenticated GET requests.
package httpwebhook

import (
	"bytes"
	"context"
	"io"
	"leadgen/pkg/serrors"
	"leadgen/pkg/webhook"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodySize caps how much of a webhook reply is read.
const maxBodySize = 1 << 20

// Client sends webhook requests. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	token      string
	urls       map[webhook.Name]string
}

// New returns a Client posting to the given endpoint URLs with token as the
// bearer credential.
func New(httpClient *http.Client, token string, urls map[webhook.Name]string) *Client {
	return &Client{
		httpClient: httpClient,
		token:      token,
		urls:       urls,
	}
}

func (c *Client) Call(ctx context.Context,
	name webhook.Name,
	accountNumber string,
	payload webhook.Payload,
) (webhook.Response, error) {
	endpoint, ok := c.urls[name]
	if !ok || endpoint == "" {
		return webhook.Response{}, errors.Errorf("no url configured for webhook %q", name)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return webhook.Response{}, errors.Wrap(err, "parse webhook url")
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	payload.Encode(e)

	q := u.Query()
	q.Set("account_number", accountNumber)
	q.Set("payload", e.String())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return webhook.Response{}, errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json, text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return webhook.Response{}, serrors.Wrap(serrors.ErrUpstream, err, "send webhook request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return webhook.Response{StatusCode: resp.StatusCode},
			serrors.Wrap(serrors.ErrUpstream, err, "read webhook response")
	}

	out, err := parseBody(resp.Header.Get("Content-Type"), b)
	out.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return out, serrors.With(serrors.ErrUpstream,
			"webhook %s answered %d: %s", name, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err != nil {
		return out, err
	}

	return out, nil
}

// parseBody turns a reply body into a Response based on its content type.
func parseBody(contentType string, b []byte) (webhook.Response, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.Contains(mediaType, "json") {
		return webhook.Response{Message: strings.TrimSpace(string(b))}, nil
	}

	b = bytes.TrimSpace(b)
	if !jx.Valid(b) {
		return webhook.Response{JSON: true}, serrors.With(serrors.ErrUpstream, "webhook returned malformed json")
	}

	msg, err := messageField(b)
	if err != nil {
		return webhook.Response{JSON: true}, serrors.Wrap(serrors.ErrUpstream, err, "decode webhook json")
	}
	if msg == "" {
		msg = string(b)
	}

	return webhook.Response{JSON: true, Message: msg}, nil
}

// messageField returns the top-level "message" string of a JSON object, or an
// empty string when the document has none.
func messageField(b []byte) (string, error) {
	d := jx.DecodeBytes(b)
	if d.Next() != jx.Object {
		return "", nil
	}

	var msg string
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "message" || d.Next() != jx.String {
			return d.Skip()
		}
		s, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "message")
		}
		msg = s

		return nil
	}); err != nil {
		return "", errors.Wrap(err, "object")
	}

	return msg, nil
}

var _ webhook.Client = (*Client)(nil)
