package auth

import (
	"context"
	"fmt"
	"github.com/awakari/int-twitter/model"
	"github.com/awakari/int-twitter/util"
	"log/slog"
)

type logging struct {
	svc Service
	log *slog.Logger
}

func NewServiceLogging(svc Service, log *slog.Logger) Service {
	return logging{
		svc: svc,
		log: log,
	}
}

func (l logging) RequestToken(ctx context.Context, callbackUrl string) (t model.RequestToken, err error) {
	t, err = l.svc.RequestToken(ctx, callbackUrl)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.RequestToken(%s): %s, %t, %s", callbackUrl, t.Token, t.CallbackConfirmed, err))
	return
}

func (l logging) AuthorizeUrl(ctx context.Context, callbackUrl string) (t model.RequestToken, addr string, err error) {
	t, addr, err = l.svc.AuthorizeUrl(ctx, callbackUrl)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.AuthorizeUrl(%s): %s, %s", callbackUrl, addr, err))
	return
}

func (l logging) Remember(t model.RequestToken) {
	l.svc.Remember(t)
	l.log.Debug(fmt.Sprintf("auth.Remember(%s)", t.Token))
}

func (l logging) AccessToken(ctx context.Context, token, verifier string) (creds model.Credentials, err error) {
	creds, err = l.svc.AccessToken(ctx, token, verifier)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.AccessToken(%s): %s, %s", token, creds.ScreenName, err))
	return
}

func (l logging) XAuthAccessToken(ctx context.Context, username, password string) (creds model.Credentials, err error) {
	creds, err = l.svc.XAuthAccessToken(ctx, username, password)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.XAuthAccessToken(%s): %s, %s", username, creds.ScreenName, err))
	return
}

func (l logging) Credentials(token, secret, screenName string) model.Credentials {
	return l.svc.Credentials(token, secret, screenName)
}
