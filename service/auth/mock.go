package auth

import (
	"context"
	"fmt"
	"github.com/awakari/int-twitter/model"
	"github.com/awakari/int-twitter/service"
)

type mock struct {
}

func NewServiceMock() Service {
	return mock{}
}

func (m mock) RequestToken(ctx context.Context, callbackUrl string) (t model.RequestToken, err error) {
	switch callbackUrl {
	case "":
		err = service.ErrInvalidArgument
	case "fail":
		err = ErrHandshake
	default:
		t = model.RequestToken{
			Token:             "rt0",
			Secret:            "rs0",
			CallbackConfirmed: true,
		}
	}
	return
}

func (m mock) AuthorizeUrl(ctx context.Context, callbackUrl string) (t model.RequestToken, addr string, err error) {
	t, err = m.RequestToken(ctx, callbackUrl)
	if err == nil {
		addr = fmt.Sprintf("https://api.twitter.com/oauth/authenticate?oauth_token=%s", t.Token)
	}
	return
}

func (m mock) Remember(t model.RequestToken) {
}

func (m mock) AccessToken(ctx context.Context, token, verifier string) (creds model.Credentials, err error) {
	switch {
	case token == "" || verifier == "":
		err = service.ErrInvalidArgument
	case verifier == "fail":
		err = ErrHandshake
	default:
		creds = m.Credentials("at0", "as0", "gopher")
	}
	return
}

func (m mock) XAuthAccessToken(ctx context.Context, username, password string) (creds model.Credentials, err error) {
	switch {
	case username == "" || password == "":
		err = service.ErrInvalidArgument
	case password == "fail":
		err = ErrHandshake
	default:
		creds = m.Credentials("at1", "as1", username)
	}
	return
}

func (m mock) Credentials(token, secret, screenName string) model.Credentials {
	return model.Credentials{
		ConsumerKey:    "consumer0",
		ConsumerSecret: "consumerSecret0",
		Token:          token,
		TokenSecret:    secret,
		ScreenName:     screenName,
	}
}
