package service

import (
	"context"
	"errors"
	"fmt"
	apiHttp "github.com/awakari/int-twitter/api/http"
	"github.com/awakari/int-twitter/config"
	"github.com/awakari/int-twitter/model"
	"net/url"
)

type Service interface {
	GetUser(ctx context.Context, screenName string) (u model.User, err error)
	GetFriends(ctx context.Context, screenName, cursor string) (page model.UserList, err error)
	GetFollowers(ctx context.Context, screenName, cursor string) (page model.UserList, err error)
	GetTweets(ctx context.Context, screenName string, count int, maxId, sinceId int64) (tweets []model.Tweet, err error)
	SearchTweets(ctx context.Context, q string, count int, sinceId int64) (results model.TweetSearchResults, err error)
	SearchUsers(ctx context.Context, q string, perPage int) (users []model.User, err error)
	UpdateStatus(ctx context.Context, text string) (t model.Tweet, err error)
	GetProfileImage(ctx context.Context, addr string) (data []byte, err error)

	// WithCredentials returns the Service acting on behalf of another account.
	WithCredentials(creds model.Credentials) Service
}

var ErrInvalidArgument = errors.New("invalid argument")

const (
	CursorBegin = "-1"

	paramCursor     = "cursor"
	paramCount      = "count"
	paramMaxId      = "max_id"
	paramSinceId    = "since_id"
	paramStatus     = "status"
	paramQuery      = "q"
	paramScreenName = "screen_name"
	paramPerPage    = "per_page"

	countTweetsDefault  = 20
	countTweetsMax      = 200
	countSearchMax      = 100
	perPageUsersMax     = 20
	perPageUsersDefault = perPageUsersMax
)

type twitter struct {
	e     apiHttp.Executor
	cfg   config.EndpointConfig
	creds model.Credentials
}

func NewService(e apiHttp.Executor, cfgEndpoint config.EndpointConfig, creds model.Credentials) Service {
	return twitter{
		e:     e,
		cfg:   cfgEndpoint,
		creds: creds,
	}
}

func (t twitter) WithCredentials(creds model.Credentials) Service {
	t.creds = creds
	return t
}

func (t twitter) GetUser(ctx context.Context, screenName string) (u model.User, err error) {
	if screenName == "" {
		err = fmt.Errorf("%w: empty screen name", ErrInvalidArgument)
		return
	}
	return apiHttp.Get(ctx, t.e, t.cfg.UsersShow, &t.creds, apiHttp.DecodeJson[model.User],
		apiHttp.WithParam(paramScreenName, screenName),
	)
}

func (t twitter) GetFriends(ctx context.Context, screenName, cursor string) (page model.UserList, err error) {
	return t.getUserList(ctx, t.cfg.FriendsList, screenName, cursor)
}

func (t twitter) GetFollowers(ctx context.Context, screenName, cursor string) (page model.UserList, err error) {
	return t.getUserList(ctx, t.cfg.FollowersList, screenName, cursor)
}

func (t twitter) getUserList(ctx context.Context, endpoint, screenName, cursor string) (page model.UserList, err error) {
	if screenName == "" {
		err = fmt.Errorf("%w: empty screen name", ErrInvalidArgument)
		return
	}
	if cursor == "" {
		cursor = CursorBegin
	}
	return apiHttp.Get(ctx, t.e, endpoint, &t.creds, apiHttp.DecodeJson[model.UserList],
		apiHttp.WithParam(paramScreenName, screenName),
		apiHttp.WithParam(paramCursor, cursor),
	)
}

func (t twitter) GetTweets(ctx context.Context, screenName string, count int, maxId, sinceId int64) (tweets []model.Tweet, err error) {
	if screenName == "" {
		err = fmt.Errorf("%w: empty screen name", ErrInvalidArgument)
		return
	}
	opts := []apiHttp.Option{
		apiHttp.WithParam(paramScreenName, screenName),
		apiHttp.WithNumber(paramCount, int64(clamp(count, countTweetsMax, countTweetsDefault))),
	}
	if maxId > 0 {
		// max_id is inclusive on the server side
		opts = append(opts, apiHttp.WithNumber(paramMaxId, maxId-1))
	}
	if sinceId > 0 {
		opts = append(opts, apiHttp.WithNumber(paramSinceId, sinceId))
	}
	return apiHttp.Get(ctx, t.e, t.cfg.UserTimeline, &t.creds, apiHttp.DecodeJson[[]model.Tweet], opts...)
}

func (t twitter) SearchTweets(ctx context.Context, q string, count int, sinceId int64) (results model.TweetSearchResults, err error) {
	if q == "" {
		err = fmt.Errorf("%w: empty query", ErrInvalidArgument)
		return
	}
	opts := []apiHttp.Option{
		apiHttp.WithParam(paramQuery, q),
		apiHttp.WithNumber(paramCount, int64(clamp(count, countSearchMax, countTweetsDefault))),
	}
	if sinceId > 0 {
		opts = append(opts, apiHttp.WithNumber(paramSinceId, sinceId))
	}
	return apiHttp.Get(ctx, t.e, t.cfg.SearchTweets, &t.creds, apiHttp.DecodeJson[model.TweetSearchResults], opts...)
}

func (t twitter) SearchUsers(ctx context.Context, q string, perPage int) (users []model.User, err error) {
	if q == "" {
		err = fmt.Errorf("%w: empty query", ErrInvalidArgument)
		return
	}
	return apiHttp.Get(ctx, t.e, t.cfg.UsersSearch, &t.creds, apiHttp.DecodeJson[[]model.User],
		apiHttp.WithParam(paramQuery, q),
		apiHttp.WithNumber(paramPerPage, int64(clamp(perPage, perPageUsersMax, perPageUsersDefault))),
	)
}

func (t twitter) UpdateStatus(ctx context.Context, text string) (tweet model.Tweet, err error) {
	if text == "" {
		err = fmt.Errorf("%w: empty status text", ErrInvalidArgument)
		return
	}
	form := url.Values{}
	form.Set(paramStatus, text)
	return apiHttp.Post(ctx, t.e, t.cfg.StatusesUpdate, &t.creds, form, apiHttp.DecodeJson[model.Tweet])
}

func (t twitter) GetProfileImage(ctx context.Context, addr string) (data []byte, err error) {
	if addr == "" {
		err = fmt.Errorf("%w: empty profile image url", ErrInvalidArgument)
		return
	}
	return apiHttp.Get(ctx, t.e, addr, nil, apiHttp.DecodeBytes)
}

// clamp returns n when it's within [1, limit], def otherwise.
func clamp(n, limit, def int) int {
	if n <= 0 || n > limit {
		return def
	}
	return n
}
