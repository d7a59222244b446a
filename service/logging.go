package service

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

func (l logging) GetUser(ctx context.Context, screenName string) (u model.User, err error) {
	u, err = l.svc.GetUser(ctx, screenName)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.GetUser(%s): %s, %s", screenName, u.IdStr, err))
	return
}

func (l logging) GetFriends(ctx context.Context, screenName, cursor string) (page model.UserList, err error) {
	page, err = l.svc.GetFriends(ctx, screenName, cursor)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.GetFriends(%s, %s): %d, %d, %s", screenName, cursor, len(page.Users), page.NextCursor, err))
	return
}

func (l logging) GetFollowers(ctx context.Context, screenName, cursor string) (page model.UserList, err error) {
	page, err = l.svc.GetFollowers(ctx, screenName, cursor)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.GetFollowers(%s, %s): %d, %d, %s", screenName, cursor, len(page.Users), page.NextCursor, err))
	return
}

func (l logging) GetTweets(ctx context.Context, screenName string, count int, maxId, sinceId int64) (tweets []model.Tweet, err error) {
	tweets, err = l.svc.GetTweets(ctx, screenName, count, maxId, sinceId)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.GetTweets(%s, %d, %d, %d): %d, %s", screenName, count, maxId, sinceId, len(tweets), err))
	return
}

func (l logging) SearchTweets(ctx context.Context, q string, count int, sinceId int64) (results model.TweetSearchResults, err error) {
	results, err = l.svc.SearchTweets(ctx, q, count, sinceId)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.SearchTweets(%s, %d, %d): %d, %s", q, count, sinceId, len(results.Statuses), err))
	return
}

func (l logging) SearchUsers(ctx context.Context, q string, perPage int) (users []model.User, err error) {
	users, err = l.svc.SearchUsers(ctx, q, perPage)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.SearchUsers(%s, %d): %d, %s", q, perPage, len(users), err))
	return
}

func (l logging) UpdateStatus(ctx context.Context, text string) (t model.Tweet, err error) {
	t, err = l.svc.UpdateStatus(ctx, text)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.UpdateStatus(%d chars): %s, %s", len([]rune(text)), t.IdStr, err))
	return
}

func (l logging) GetProfileImage(ctx context.Context, addr string) (data []byte, err error) {
	data, err = l.svc.GetProfileImage(ctx, addr)
	l.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("service.GetProfileImage(%s): %d bytes, %s", addr, len(data), err))
	return
}

func (l logging) WithCredentials(creds model.Credentials) Service {
	return logging{
		svc: l.svc.WithCredentials(creds),
		log: l.log,
	}
}
