package service

import (
	"context"
	apiHttp "github.com/awakari/int-twitter/api/http"
	"github.com/awakari/int-twitter/model"
	"net/http"
)

type mock struct {
}

func NewServiceMock() Service {
	return mock{}
}

var errMockForbidden = &apiHttp.Failure{
	StatusCode: http.StatusForbidden,
	Cause:      apiHttp.ErrStatus,
}

func (m mock) GetUser(ctx context.Context, screenName string) (u model.User, err error) {
	switch screenName {
	case "":
		err = ErrInvalidArgument
	case "fail":
		err = errMockForbidden
	default:
		u = model.User{
			Id:         42,
			IdStr:      "42",
			ScreenName: screenName,
		}
	}
	return
}

func (m mock) GetFriends(ctx context.Context, screenName, cursor string) (page model.UserList, err error) {
	return m.getUserList(screenName)
}

func (m mock) GetFollowers(ctx context.Context, screenName, cursor string) (page model.UserList, err error) {
	return m.getUserList(screenName)
}

func (m mock) getUserList(screenName string) (page model.UserList, err error) {
	switch screenName {
	case "":
		err = ErrInvalidArgument
	case "fail":
		err = errMockForbidden
	default:
		page.Users = []model.User{
			{Id: 1, ScreenName: "user1"},
			{Id: 2, ScreenName: "user2"},
		}
	}
	return
}

func (m mock) GetTweets(ctx context.Context, screenName string, count int, maxId, sinceId int64) (tweets []model.Tweet, err error) {
	switch screenName {
	case "":
		err = ErrInvalidArgument
	case "fail":
		err = errMockForbidden
	default:
		tweets = []model.Tweet{
			{Id: 2, Text: "second"},
			{Id: 1, Text: "first"},
		}
	}
	return
}

func (m mock) SearchTweets(ctx context.Context, q string, count int, sinceId int64) (results model.TweetSearchResults, err error) {
	switch q {
	case "":
		err = ErrInvalidArgument
	case "fail":
		err = errMockForbidden
	default:
		results.Statuses = []model.Tweet{
			{Id: 1, Text: q},
		}
		results.Metadata.Query = q
		results.Metadata.Count = count
	}
	return
}

func (m mock) SearchUsers(ctx context.Context, q string, perPage int) (users []model.User, err error) {
	switch q {
	case "":
		err = ErrInvalidArgument
	case "fail":
		err = errMockForbidden
	default:
		users = []model.User{
			{Id: 1, ScreenName: q},
		}
	}
	return
}

func (m mock) UpdateStatus(ctx context.Context, text string) (t model.Tweet, err error) {
	switch text {
	case "":
		err = ErrInvalidArgument
	case "fail":
		err = errMockForbidden
	default:
		t = model.Tweet{
			Id:    42,
			IdStr: "42",
			Text:  text,
		}
	}
	return
}

func (m mock) GetProfileImage(ctx context.Context, addr string) (data []byte, err error) {
	switch addr {
	case "":
		err = ErrInvalidArgument
	case "fail":
		err = errMockForbidden
	default:
		data = []byte{0x89, 'P', 'N', 'G'}
	}
	return
}

func (m mock) WithCredentials(creds model.Credentials) Service {
	return m
}
