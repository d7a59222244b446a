package cli

import (
	"fmt"
	"github.com/awakari/int-twitter/model"
	"github.com/awakari/int-twitter/service"
	"github.com/awakari/int-twitter/service/auth"
	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"
	"os"
)

const (
	flagName          = "name"
	flagCursor        = "cursor"
	flagCount         = "count"
	flagMaxId         = "max-id"
	flagSinceId       = "since-id"
	flagQuery         = "query"
	flagType          = "type"
	flagText          = "text"
	flagUrl           = "url"
	flagOut           = "out"
	flagCallback      = "callback"
	flagToken         = "token"
	flagTokenSecret   = "token-secret"
	flagRequestToken  = "request-token"
	flagRequestSecret = "request-secret"
	flagVerifier      = "verifier"
	flagUsername      = "username"
	flagPassword      = "password"
)

type controller struct {
	svc     service.Service
	svcAuth auth.Service
}

// NewApp returns the command line interface over the API client and the handshake services.
func NewApp(svc service.Service, svcAuth auth.Service) *cli.App {
	c := controller{
		svc:     svc,
		svcAuth: svcAuth,
	}
	return &cli.App{
		Name:  "int-twitter",
		Usage: "Twitter REST API client",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagToken, Usage: "access token to act on behalf of another account", EnvVars: []string{"TWITTER_TOKEN"}},
			&cli.StringFlag{Name: flagTokenSecret, Usage: "access token secret", EnvVars: []string{"TWITTER_TOKEN_SECRET"}},
		},
		Commands: []*cli.Command{
			{
				Name:   "user",
				Usage:  "show the account",
				Flags:  []cli.Flag{screenNameFlag()},
				Action: c.user,
			},
			{
				Name:  "friends",
				Usage: "list the accounts followed by the account",
				Flags: []cli.Flag{
					screenNameFlag(),
					&cli.StringFlag{Name: flagCursor, Usage: "page cursor, the first page when omitted"},
				},
				Action: c.friends,
			},
			{
				Name:  "followers",
				Usage: "list the account followers",
				Flags: []cli.Flag{
					screenNameFlag(),
					&cli.StringFlag{Name: flagCursor, Usage: "page cursor, the first page when omitted"},
				},
				Action: c.followers,
			},
			{
				Name:  "timeline",
				Usage: "list the account tweets, the most recent first",
				Flags: []cli.Flag{
					screenNameFlag(),
					&cli.IntFlag{Name: flagCount, Usage: "tweets per page, [1, 200]"},
					&cli.Int64Flag{Name: flagMaxId, Usage: "only tweets older than this id"},
					&cli.Int64Flag{Name: flagSinceId, Usage: "only tweets newer than this id"},
				},
				Action: c.timeline,
			},
			{
				Name:  "search",
				Usage: "search tweets or users",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagQuery, Aliases: []string{"q"}, Required: true},
					&cli.StringFlag{Name: flagType, Value: model.SearchTypeTweets.String(), Usage: "tweets or users"},
					&cli.IntFlag{Name: flagCount, Usage: "results per page, [1, 100] for tweets and [1, 20] for users"},
					&cli.Int64Flag{Name: flagSinceId, Usage: "only tweets newer than this id"},
				},
				Action: c.search,
			},
			{
				Name:   "post",
				Usage:  "post a status update",
				Flags:  []cli.Flag{&cli.StringFlag{Name: flagText, Aliases: []string{"t"}, Required: true}},
				Action: c.post,
			},
			{
				Name:  "avatar",
				Usage: "download the profile image",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagUrl, Required: true},
					&cli.StringFlag{Name: flagOut, Aliases: []string{"o"}, Required: true, Usage: "output file path"},
				},
				Action: c.avatar,
			},
			{
				Name:   "authorize",
				Usage:  "start the OAuth handshake and print the URL to authorize the application at",
				Flags:  []cli.Flag{&cli.StringFlag{Name: flagCallback, Value: "oob"}},
				Action: c.authorize,
			},
			{
				Name:  "access",
				Usage: "exchange the authorized request token for the access token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagRequestToken, Required: true},
					&cli.StringFlag{Name: flagRequestSecret, Usage: "request token secret printed by authorize, when run in another process"},
					&cli.StringFlag{Name: flagVerifier, Required: true},
				},
				Action: c.access,
			},
			{
				Name:  "xauth",
				Usage: "obtain the access token with the account username and password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagUsername, Required: true},
					&cli.StringFlag{Name: flagPassword, Required: true, EnvVars: []string{"TWITTER_PASSWORD"}},
				},
				Action: c.xauth,
			},
		},
	}
}

func screenNameFlag() cli.Flag {
	return &cli.StringFlag{Name: flagName, Aliases: []string{"n"}, Usage: "account screen name", Required: true}
}

func (c controller) client(ctx *cli.Context) service.Service {
	token := ctx.String(flagToken)
	if token == "" {
		return c.svc
	}
	return c.svc.WithCredentials(c.svcAuth.Credentials(token, ctx.String(flagTokenSecret), ""))
}

func (c controller) user(ctx *cli.Context) (err error) {
	var u model.User
	u, err = c.client(ctx).GetUser(ctx.Context, ctx.String(flagName))
	if err == nil {
		err = printJson(ctx, u)
	}
	return
}

func (c controller) friends(ctx *cli.Context) (err error) {
	var page model.UserList
	page, err = c.client(ctx).GetFriends(ctx.Context, ctx.String(flagName), ctx.String(flagCursor))
	if err == nil {
		err = printJson(ctx, page)
	}
	return
}

func (c controller) followers(ctx *cli.Context) (err error) {
	var page model.UserList
	page, err = c.client(ctx).GetFollowers(ctx.Context, ctx.String(flagName), ctx.String(flagCursor))
	if err == nil {
		err = printJson(ctx, page)
	}
	return
}

func (c controller) timeline(ctx *cli.Context) (err error) {
	var tweets []model.Tweet
	tweets, err = c.client(ctx).GetTweets(ctx.Context, ctx.String(flagName), ctx.Int(flagCount), ctx.Int64(flagMaxId), ctx.Int64(flagSinceId))
	if err == nil {
		err = printJson(ctx, tweets)
	}
	return
}

func (c controller) search(ctx *cli.Context) (err error) {
	typ, ok := model.ParseSearchType(ctx.String(flagType))
	if !ok {
		return fmt.Errorf("%w: unknown search type %q", service.ErrInvalidArgument, ctx.String(flagType))
	}
	svc := c.client(ctx)
	switch typ {
	case model.SearchTypeUsers:
		var users []model.User
		users, err = svc.SearchUsers(ctx.Context, ctx.String(flagQuery), ctx.Int(flagCount))
		if err == nil {
			err = printJson(ctx, users)
		}
	default:
		var results model.TweetSearchResults
		results, err = svc.SearchTweets(ctx.Context, ctx.String(flagQuery), ctx.Int(flagCount), ctx.Int64(flagSinceId))
		if err == nil {
			err = printJson(ctx, results)
		}
	}
	return
}

func (c controller) post(ctx *cli.Context) (err error) {
	var t model.Tweet
	t, err = c.client(ctx).UpdateStatus(ctx.Context, ctx.String(flagText))
	if err == nil {
		err = printJson(ctx, t)
	}
	return
}

func (c controller) avatar(ctx *cli.Context) (err error) {
	var data []byte
	data, err = c.client(ctx).GetProfileImage(ctx.Context, ctx.String(flagUrl))
	if err == nil {
		err = os.WriteFile(ctx.String(flagOut), data, 0o644)
	}
	return
}

func (c controller) authorize(ctx *cli.Context) (err error) {
	var t model.RequestToken
	var addr string
	t, addr, err = c.svcAuth.AuthorizeUrl(ctx.Context, ctx.String(flagCallback))
	if err == nil {
		_, err = fmt.Fprintf(ctx.App.Writer, "%s\n%s: %s\n", addr, flagRequestSecret, t.Secret)
	}
	return
}

func (c controller) access(ctx *cli.Context) (err error) {
	token := ctx.String(flagRequestToken)
	if secret := ctx.String(flagRequestSecret); secret != "" {
		c.svcAuth.Remember(model.RequestToken{Token: token, Secret: secret})
	}
	var creds model.Credentials
	creds, err = c.svcAuth.AccessToken(ctx.Context, token, ctx.String(flagVerifier))
	if err == nil {
		err = printJson(ctx, creds)
	}
	return
}

func (c controller) xauth(ctx *cli.Context) (err error) {
	var creds model.Credentials
	creds, err = c.svcAuth.XAuthAccessToken(ctx.Context, ctx.String(flagUsername), ctx.String(flagPassword))
	if err == nil {
		err = printJson(ctx, creds)
	}
	return
}

func printJson(ctx *cli.Context, v any) (err error) {
	var data []byte
	data, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err == nil {
		_, err = fmt.Fprintln(ctx.App.Writer, string(data))
	}
	return
}
