package http

import (
	"context"
	"errors"
	"github.com/awakari/int-twitter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

var creds = model.Credentials{
	ConsumerKey:    "consumer0",
	ConsumerSecret: "consumerSecret0",
	Token:          "token0",
	TokenSecret:    "tokenSecret0",
}

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"id_str":"42","screen_name":"` + r.URL.Query().Get("screen_name") + `","unknown_field":true}`))
	})
	mux.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("Authorization")))
	})
	mux.HandleFunc("/form", func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, r.ParseForm())
		_, _ = w.Write([]byte(r.Method + " " + r.Header.Get("Content-Type") + " " + r.PostForm.Get("status")))
	})
	mux.HandleFunc("/forbidden", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rate-Limit-Limit", "900")
		w.Header().Set("X-Rate-Limit-Remaining", "12")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"code":187,"message":"Status is a duplicate."}]}`))
	})
	mux.HandleFunc("/limited", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rate-Limit-Remaining", "0")
		w.Header().Set("X-Rate-Limit-Reset", "1700000000")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	mux.HandleFunc("/created", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})
	mux.HandleFunc("/huge", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, limitRespBodyLen+1))
	})
	mux.HandleFunc("/exact", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, limitRespBodyLen))
	})
	mux.HandleFunc("/limit-malformed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rate-Limit-Limit", "900")
		w.Header().Set("X-Rate-Limit-Remaining", "many")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGet(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	cases := map[string]struct {
		path   string
		opts   []Option
		status int
		err    error
		name   string
	}{
		"ok": {
			path: "/user",
			opts: []Option{
				WithParam("screen_name", "jack"),
			},
			name: "jack",
		},
		"forbidden": {
			path:   "/forbidden",
			status: http.StatusForbidden,
			err:    ErrStatus,
		},
		"only 200 is a success": {
			path:   "/created",
			status: http.StatusCreated,
			err:    ErrStatus,
		},
		"malformed body": {
			path:   "/garbage",
			status: http.StatusOK,
			err:    ErrDecode,
		},
		"missing": {
			path:   "/missing",
			status: http.StatusNotFound,
			err:    ErrStatus,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			u, err := Get(context.TODO(), e, srv.URL+c.path, &creds, DecodeJson[model.User], c.opts...)
			assert.ErrorIs(t, err, c.err)
			if c.err == nil {
				assert.Equal(t, int64(42), u.Id)
				assert.Equal(t, c.name, u.ScreenName)
			} else {
				assert.Equal(t, model.User{}, u)
				var f *Failure
				require.True(t, errors.As(err, &f))
				assert.Equal(t, c.status, f.StatusCode)
			}
		})
	}
}

func TestGet_FailureDetails(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	_, err := Get(context.TODO(), e, srv.URL+"/forbidden", &creds, DecodeString)
	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, []model.ApiError{{Code: 187, Message: "Status is a duplicate."}}, f.Errors)
	assert.Equal(t, 900, f.RateLimit.Limit)
	assert.Equal(t, 12, f.RateLimit.Remaining)
	assert.Equal(t, "twitter: unexpected response status: 403: Status is a duplicate (code 187)", f.Error())
	_, limited := IsRateLimited(err)
	assert.False(t, limited)
}

func TestGet_RateLimited(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	_, err := Get(context.TODO(), e, srv.URL+"/limited", &creds, DecodeBytes)
	limit, limited := IsRateLimited(err)
	assert.True(t, limited)
	assert.Equal(t, 0, limit.Remaining)
	assert.Equal(t, time.Unix(1700000000, 0), limit.Reset)
}

func TestGet_Signed(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	auth, err := Get(context.TODO(), e, srv.URL+"/auth", &creds, DecodeString)
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(auth, "OAuth "))
	assert.Contains(t, auth, `oauth_consumer_key="consumer0"`)
	assert.Contains(t, auth, `oauth_token="token0"`)
	assert.Contains(t, auth, `oauth_signature_method="HMAC-SHA1"`)
	assert.Contains(t, auth, `oauth_signature="`)
	//
	auth, err = Get(context.TODO(), e, srv.URL+"/auth", nil, DecodeString)
	require.Nil(t, err)
	assert.Equal(t, "", auth)
}

func TestPost_Form(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	form := url.Values{}
	form.Set("status", "hello, world")
	resp, err := Post(context.TODO(), e, srv.URL+"/form", &creds, form, DecodeString)
	require.Nil(t, err)
	assert.Equal(t, "POST application/x-www-form-urlencoded hello, world", resp)
}

func TestGet_Transport(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	addr := srv.URL
	srv.Close()
	_, err := Get(context.TODO(), e, addr+"/user", &creds, DecodeJson[model.User])
	assert.ErrorIs(t, err, ErrTransport)
	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, 0, f.StatusCode)
}

func TestGet_InvalidEndpoint(t *testing.T) {
	e := NewExecutor(http.DefaultClient, NewSigner(), "test", nil)
	_, err := Get(context.TODO(), e, "://nowhere", &creds, DecodeString)
	assert.ErrorIs(t, err, ErrRequest)
}

func TestWithOptions(t *testing.T) {
	q := url.Values{}
	WithOptions(
		WithParam("q", "golang"),
		WithNumber("count", 20),
		WithNumber("max_id", -1),
	)(q)
	assert.Equal(t, "count=20&max_id=-1&q=golang", q.Encode())
}

func TestDo_Paced(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", rate.NewLimiter(rate.Every(time.Hour), 1))
	_, err := Get(context.TODO(), e, srv.URL+"/user", &creds, DecodeString)
	require.Nil(t, err)
	ctx, cancel := context.WithTimeout(context.TODO(), 10*time.Millisecond)
	defer cancel()
	_, err = Get(ctx, e, srv.URL+"/user", &creds, DecodeString)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestGet_BodyLimit(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	data, err := Get(context.TODO(), e, srv.URL+"/exact", nil, DecodeBytes)
	require.Nil(t, err)
	assert.Len(t, data, limitRespBodyLen)
	//
	data, err = Get(context.TODO(), e, srv.URL+"/huge", nil, DecodeBytes)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Nil(t, data)
	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, http.StatusOK, f.StatusCode)
}

func TestGet_RateLimitMalformed(t *testing.T) {
	srv := newTestServer(t)
	e := NewExecutor(srv.Client(), NewSigner(), "test", nil)
	_, err := Get(context.TODO(), e, srv.URL+"/limit-malformed", &creds, DecodeBytes)
	limit, limited := IsRateLimited(err)
	assert.True(t, limited)
	assert.Equal(t, RateLimit{}, limit)
}
