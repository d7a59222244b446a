package http

import (
	"errors"
	"fmt"
	"github.com/awakari/int-twitter/model"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var ErrRequest = errors.New("failed to build the request")
var ErrTransport = errors.New("transport failure")
var ErrStatus = errors.New("unexpected response status")
var ErrDecode = errors.New("failed to decode the response body")

// Failure is the outcome of a request that did not produce a decoded payload.
// StatusCode is 0 when no response was received.
type Failure struct {
	StatusCode int
	Errors     []model.ApiError
	RateLimit  RateLimit
	Cause      error
}

func (f *Failure) Error() string {
	var b strings.Builder
	b.WriteString("twitter: ")
	if f.Cause != nil {
		b.WriteString(f.Cause.Error())
	} else {
		fmt.Fprintf(&b, "status %d", f.StatusCode)
	}
	for i, e := range f.Errors {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s (code %d)", strings.Trim(e.Message, "."), e.Code)
	}
	return b.String()
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

func parseRateLimit(h http.Header) (r RateLimit, err error) {
	if s := h.Get("X-Rate-Limit-Limit"); s != "" {
		r.Limit, err = strconv.Atoi(s)
		if err != nil {
			return
		}
	}
	if s := h.Get("X-Rate-Limit-Remaining"); s != "" {
		r.Remaining, err = strconv.Atoi(s)
		if err != nil {
			return
		}
	}
	if s := h.Get("X-Rate-Limit-Reset"); s != "" {
		var t int64
		t, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return
		}
		r.Reset = time.Unix(t, 0)
	}
	return
}

// IsRateLimited reports whether err is a failure caused by the API rate limit.
func IsRateLimited(err error) (RateLimit, bool) {
	var f *Failure
	if errors.As(err, &f) && f.StatusCode == http.StatusTooManyRequests {
		return f.RateLimit, true
	}
	return RateLimit{}, false
}
