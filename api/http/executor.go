package http

import (
	"context"
	"fmt"
	"github.com/awakari/int-twitter/model"
	"github.com/bytedance/sonic"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const limitRespBodyLen = 16 * 1_048_576

const contentTypeForm = "application/x-www-form-urlencoded"

// Option customizes the query of the request URI.
type Option func(url.Values)

func WithParam(name, value string) Option {
	return func(q url.Values) {
		q.Set(name, value)
	}
}

func WithNumber(name string, n int64) Option {
	return func(q url.Values) {
		q.Set(name, strconv.FormatInt(n, 10))
	}
}

func WithOptions(opts ...Option) Option {
	return func(q url.Values) {
		for _, opt := range opts {
			opt(q)
		}
	}
}

// Executor performs a single request and returns the raw body of a successful (200) response.
// Any other outcome is reported as *Failure. Nil credentials mean the request is sent unsigned.
type Executor interface {
	Do(ctx context.Context, method, endpoint string, creds *model.Credentials, form url.Values, opts ...Option) (data []byte, err error)
}

type executor struct {
	client    *http.Client
	signer    Signer
	userAgent string
	limiter   *rate.Limiter
}

// NewExecutor returns the Executor over the given client. The limiter is optional.
func NewExecutor(client *http.Client, signer Signer, userAgent string, limiter *rate.Limiter) Executor {
	return executor{
		client:    client,
		signer:    signer,
		userAgent: userAgent,
		limiter:   limiter,
	}
}

func (e executor) Do(ctx context.Context, method, endpoint string, creds *model.Credentials, form url.Values, opts ...Option) (data []byte, err error) {
	var req *http.Request
	req, err = e.request(ctx, method, endpoint, form, opts...)
	if err != nil {
		return nil, &Failure{
			Cause: fmt.Errorf("%w: %s", ErrRequest, err),
		}
	}
	if e.limiter != nil {
		if err = e.limiter.Wait(ctx); err != nil {
			return nil, &Failure{
				Cause: fmt.Errorf("%w: %s", ErrTransport, err),
			}
		}
	}
	var d Doer = e.client
	if creds != nil {
		d = e.signer.Signed(e.client, *creds)
	}
	var resp *http.Response
	resp, err = d.Do(req)
	if err != nil {
		return nil, &Failure{
			Cause: fmt.Errorf("%w: %s", ErrTransport, err),
		}
	}
	defer resp.Body.Close()
	data, err = io.ReadAll(io.LimitReader(resp.Body, limitRespBodyLen+1))
	if err != nil {
		return nil, &Failure{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("%w: %s", ErrTransport, err),
		}
	}
	if resp.StatusCode != http.StatusOK {
		f := &Failure{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode),
		}
		if rl, rlErr := parseRateLimit(resp.Header); rlErr == nil {
			f.RateLimit = rl
		}
		var errResp model.ErrorResponse
		if sonic.Unmarshal(data, &errResp) == nil {
			f.Errors = errResp.Errors
		}
		return nil, f
	}
	if len(data) > limitRespBodyLen {
		return nil, &Failure{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("%w: response body exceeds %d bytes", ErrDecode, limitRespBodyLen),
		}
	}
	return data, nil
}

func (e executor) request(ctx context.Context, method, endpoint string, form url.Values, opts ...Option) (req *http.Request, err error) {
	var u *url.URL
	u, err = url.Parse(endpoint)
	if err != nil {
		return
	}
	if len(opts) > 0 {
		q := u.Query()
		for _, opt := range opts {
			opt(q)
		}
		u.RawQuery = q.Encode()
	}
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err = http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return
	}
	if form != nil {
		req.Header.Set("Content-Type", contentTypeForm)
	}
	req.Header.Set("User-Agent", e.userAgent)
	return
}

// Decoder converts the body of a successful response into the payload.
type Decoder[T any] func(data []byte) (T, error)

func DecodeJson[T any](data []byte) (v T, err error) {
	var decoded T
	err = sonic.Unmarshal(data, &decoded)
	if err == nil {
		v = decoded
	}
	return
}

func DecodeString(data []byte) (string, error) {
	return string(data), nil
}

func DecodeBytes(data []byte) ([]byte, error) {
	return data, nil
}

func Get[T any](ctx context.Context, e Executor, endpoint string, creds *model.Credentials, decode Decoder[T], opts ...Option) (T, error) {
	return call(ctx, e, http.MethodGet, endpoint, creds, nil, decode, opts...)
}

// Post sends the form as the URL-encoded request body, an empty one when form is nil.
func Post[T any](ctx context.Context, e Executor, endpoint string, creds *model.Credentials, form url.Values, decode Decoder[T], opts ...Option) (T, error) {
	if form == nil {
		form = url.Values{}
	}
	return call(ctx, e, http.MethodPost, endpoint, creds, form, decode, opts...)
}

func call[T any](ctx context.Context, e Executor, method, endpoint string, creds *model.Credentials, form url.Values, decode Decoder[T], opts ...Option) (v T, err error) {
	var data []byte
	data, err = e.Do(ctx, method, endpoint, creds, form, opts...)
	if err != nil {
		return
	}
	var decoded T
	decoded, err = decode(data)
	if err != nil {
		err = &Failure{
			StatusCode: http.StatusOK,
			Cause:      fmt.Errorf("%w: %s", ErrDecode, err),
		}
		return
	}
	v = decoded
	return
}
