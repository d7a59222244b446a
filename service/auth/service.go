package auth

import (
	"context"
	"errors"
	"fmt"
	apiHttp "github.com/awakari/int-twitter/api/http"
	"github.com/awakari/int-twitter/config"
	"github.com/awakari/int-twitter/model"
	"github.com/awakari/int-twitter/service"
	"github.com/dghubble/oauth1"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"net/url"
)

// Service performs the one-time OAuth1 (3-legged) or xAuth setup that yields the account credentials.
// Any failure aborts the handshake and is reported as ErrHandshake.
type Service interface {
	RequestToken(ctx context.Context, callbackUrl string) (t model.RequestToken, err error)
	AuthorizeUrl(ctx context.Context, callbackUrl string) (t model.RequestToken, addr string, err error)

	// Remember keeps the request token secret for the following AccessToken call,
	// e.g. when the token was requested by another process.
	Remember(t model.RequestToken)

	AccessToken(ctx context.Context, token, verifier string) (creds model.Credentials, err error)
	XAuthAccessToken(ctx context.Context, username, password string) (creds model.Credentials, err error)
	Credentials(token, secret, screenName string) model.Credentials
}

var ErrHandshake = errors.New("oauth handshake failure")

const (
	paramCallback          = "oauth_callback"
	paramCallbackConfirmed = "oauth_callback_confirmed"
	paramToken             = "oauth_token"
	paramTokenSecret       = "oauth_token_secret"
	paramVerifier          = "oauth_verifier"
	paramScreenName        = "screen_name"
	paramXAuthMode         = "x_auth_mode"
	paramXAuthUsername     = "x_auth_username"
	paramXAuthPassword     = "x_auth_password"

	xAuthModeClientAuth = "client_auth"
)

type oauth struct {
	e        apiHttp.Executor
	cfg      config.EndpointConfig
	consumer model.Credentials
	// request token -> request token secret, kept until the access token exchange
	pending *expirable.LRU[string, string]
}

func NewService(e apiHttp.Executor, cfgTwitter config.TwitterConfig) Service {
	return oauth{
		e:   e,
		cfg: cfgTwitter.Endpoint,
		consumer: model.Credentials{
			ConsumerKey:    cfgTwitter.Client.Key,
			ConsumerSecret: cfgTwitter.Client.Secret,
		},
		pending: expirable.NewLRU[string, string](cfgTwitter.OAuth.Pending.Size, nil, cfgTwitter.OAuth.Pending.Ttl),
	}
}

func (o oauth) RequestToken(ctx context.Context, callbackUrl string) (t model.RequestToken, err error) {
	if callbackUrl == "" {
		err = fmt.Errorf("%w: empty callback url", service.ErrInvalidArgument)
		return
	}
	// the signer moves the oauth_* form parameters into the Authorization header, the body is sent empty
	form := url.Values{}
	form.Set(paramCallback, callbackUrl)
	var values url.Values
	values, err = o.exchange(ctx, o.cfg.OAuthRequestToken, o.consumer, form)
	if err != nil {
		err = fmt.Errorf("%w: request token: %w", ErrHandshake, err)
		return
	}
	t = model.RequestToken{
		Token:             values.Get(paramToken),
		Secret:            values.Get(paramTokenSecret),
		CallbackConfirmed: values.Get(paramCallbackConfirmed) == "true",
	}
	o.Remember(t)
	return
}

func (o oauth) AuthorizeUrl(ctx context.Context, callbackUrl string) (t model.RequestToken, addr string, err error) {
	t, err = o.RequestToken(ctx, callbackUrl)
	if err != nil {
		return
	}
	cfg := oauth1.Config{
		Endpoint: oauth1.Endpoint{
			AuthorizeURL: o.cfg.OAuthAuthenticate,
		},
	}
	var u *url.URL
	u, err = cfg.AuthorizationURL(t.Token)
	if err != nil {
		t = model.RequestToken{}
		err = fmt.Errorf("%w: authorize url: %s", ErrHandshake, err)
		return
	}
	addr = u.String()
	return
}

func (o oauth) Remember(t model.RequestToken) {
	if t.Token != "" {
		o.pending.Add(t.Token, t.Secret)
	}
}

func (o oauth) AccessToken(ctx context.Context, token, verifier string) (creds model.Credentials, err error) {
	switch {
	case token == "":
		err = fmt.Errorf("%w: empty token", service.ErrInvalidArgument)
	case verifier == "":
		err = fmt.Errorf("%w: empty verifier", service.ErrInvalidArgument)
	}
	if err != nil {
		return
	}
	// unknown or expired request token: sign with the empty secret and let the server decide
	secret, _ := o.pending.Get(token)
	form := url.Values{}
	form.Set(paramVerifier, verifier)
	var values url.Values
	values, err = o.exchange(ctx, o.cfg.OAuthAccessToken, o.Credentials(token, secret, ""), form)
	if err != nil {
		err = fmt.Errorf("%w: access token: %w", ErrHandshake, err)
		return
	}
	o.pending.Remove(token)
	creds = o.Credentials(values.Get(paramToken), values.Get(paramTokenSecret), values.Get(paramScreenName))
	return
}

func (o oauth) XAuthAccessToken(ctx context.Context, username, password string) (creds model.Credentials, err error) {
	switch {
	case username == "":
		err = fmt.Errorf("%w: empty username", service.ErrInvalidArgument)
	case password == "":
		err = fmt.Errorf("%w: empty password", service.ErrInvalidArgument)
	}
	if err != nil {
		return
	}
	form := url.Values{}
	form.Set(paramXAuthMode, xAuthModeClientAuth)
	form.Set(paramXAuthUsername, username)
	form.Set(paramXAuthPassword, password)
	var values url.Values
	values, err = o.exchange(ctx, o.cfg.OAuthAccessToken, o.consumer, form)
	if err != nil {
		err = fmt.Errorf("%w: xauth access token: %w", ErrHandshake, err)
		return
	}
	creds = o.Credentials(values.Get(paramToken), values.Get(paramTokenSecret), values.Get(paramScreenName))
	return
}

func (o oauth) Credentials(token, secret, screenName string) (creds model.Credentials) {
	creds = o.consumer
	creds.Token = token
	creds.TokenSecret = secret
	creds.ScreenName = screenName
	return
}

// exchange posts the signed form and decodes the form-encoded token response.
func (o oauth) exchange(ctx context.Context, endpoint string, creds model.Credentials, form url.Values) (values url.Values, err error) {
	var body string
	body, err = apiHttp.Post(ctx, o.e, endpoint, &creds, form, apiHttp.DecodeString)
	if err == nil {
		values, err = url.ParseQuery(body)
	}
	if err == nil && (values.Get(paramToken) == "" || values.Get(paramTokenSecret) == "") {
		err = fmt.Errorf("response missing %s or %s", paramToken, paramTokenSecret)
	}
	if err != nil {
		values = nil
	}
	return
}
