package main

import (
	"fmt"
	apiCli "github.com/awakari/int-twitter/api/cli"
	apiHttp "github.com/awakari/int-twitter/api/http"
	"github.com/awakari/int-twitter/config"
	"github.com/awakari/int-twitter/model"
	"github.com/awakari/int-twitter/service"
	"github.com/awakari/int-twitter/service/auth"
	"golang.org/x/time/rate"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	//
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		panic(fmt.Sprintf("failed to load the config from env: %s", err))
	}
	cfgTwitter := cfg.Api.Twitter
	//
	opts := slog.HandlerOptions{
		Level: slog.Level(cfg.Log.Level),
	}
	// stdout is reserved for the command output
	log := slog.New(slog.NewTextHandler(os.Stderr, &opts))
	//
	clientHttp := &http.Client{
		Timeout: cfgTwitter.Timeout,
	}
	var limiter *rate.Limiter
	if cfgTwitter.Rate.Limit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfgTwitter.Rate.Limit), cfgTwitter.Rate.Burst)
	}
	e := apiHttp.NewExecutor(clientHttp, apiHttp.NewSigner(), cfgTwitter.Client.UserAgent, limiter)
	//
	svcAuth := auth.NewService(e, cfgTwitter)
	svcAuth = auth.NewServiceLogging(svcAuth, log)
	//
	creds := model.Credentials{
		ConsumerKey:    cfgTwitter.Client.Key,
		ConsumerSecret: cfgTwitter.Client.Secret,
		Token:          cfgTwitter.Client.Token,
		TokenSecret:    cfgTwitter.Client.TokenSecret,
	}
	svc := service.NewService(e, cfgTwitter.Endpoint, creds)
	svc = service.NewServiceLogging(svc, log)
	//
	app := apiCli.NewApp(svc, svcAuth)
	if err = app.Run(os.Args); err != nil {
		log.Error(fmt.Sprintf("%s: %s", app.Name, err))
		os.Exit(1)
	}
}
