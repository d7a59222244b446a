package config

import (
	"github.com/kelseyhightower/envconfig"
	"time"
)

type Config struct {
	Api struct {
		Twitter TwitterConfig
	}
	Log struct {
		Level int `envconfig:"LOG_LEVEL" default:"-4" required:"true"`
	}
}

type TwitterConfig struct {
	Client struct {
		Key         string `envconfig:"API_TWITTER_CLIENT_KEY" required:"true"`
		Secret      string `envconfig:"API_TWITTER_CLIENT_SECRET" required:"true"`
		Token       string `envconfig:"API_TWITTER_CLIENT_TOKEN"`
		TokenSecret string `envconfig:"API_TWITTER_CLIENT_TOKEN_SECRET"`
		UserAgent   string `envconfig:"API_TWITTER_USER_AGENT" default:"awakari" required:"true"`
	}
	Endpoint EndpointConfig
	Timeout  time.Duration `envconfig:"API_TWITTER_TIMEOUT" default:"30s" required:"true"`
	Rate     struct {
		// Limit is the max request rate per second, 0 disables pacing.
		Limit float64 `envconfig:"API_TWITTER_RATE_LIMIT" default:"0"`
		Burst int     `envconfig:"API_TWITTER_RATE_BURST" default:"1"`
	}
	OAuth struct {
		Pending struct {
			Size int           `envconfig:"API_TWITTER_OAUTH_PENDING_SIZE" default:"1024" required:"true"`
			Ttl  time.Duration `envconfig:"API_TWITTER_OAUTH_PENDING_TTL" default:"15m" required:"true"`
		}
	}
}

type EndpointConfig struct {
	UsersShow         string `envconfig:"API_TWITTER_ENDPOINT_USERS_SHOW" default:"https://api.twitter.com/1.1/users/show.json" required:"true"`
	UsersSearch       string `envconfig:"API_TWITTER_ENDPOINT_USERS_SEARCH" default:"https://api.twitter.com/1.1/users/search.json" required:"true"`
	FriendsList       string `envconfig:"API_TWITTER_ENDPOINT_FRIENDS_LIST" default:"https://api.twitter.com/1.1/friends/list.json" required:"true"`
	FollowersList     string `envconfig:"API_TWITTER_ENDPOINT_FOLLOWERS_LIST" default:"https://api.twitter.com/1.1/followers/list.json" required:"true"`
	SearchTweets      string `envconfig:"API_TWITTER_ENDPOINT_SEARCH_TWEETS" default:"https://api.twitter.com/1.1/search/tweets.json" required:"true"`
	UserTimeline      string `envconfig:"API_TWITTER_ENDPOINT_USER_TIMELINE" default:"https://api.twitter.com/1.1/statuses/user_timeline.json" required:"true"`
	StatusesUpdate    string `envconfig:"API_TWITTER_ENDPOINT_STATUSES_UPDATE" default:"https://api.twitter.com/1.1/statuses/update.json" required:"true"`
	OAuthRequestToken string `envconfig:"API_TWITTER_ENDPOINT_OAUTH_REQUEST_TOKEN" default:"https://api.twitter.com/oauth/request_token" required:"true"`
	OAuthAccessToken  string `envconfig:"API_TWITTER_ENDPOINT_OAUTH_ACCESS_TOKEN" default:"https://api.twitter.com/oauth/access_token" required:"true"`
	OAuthAuthenticate string `envconfig:"API_TWITTER_ENDPOINT_OAUTH_AUTHENTICATE" default:"https://api.twitter.com/oauth/authenticate" required:"true"`
}

func NewConfigFromEnv() (cfg Config, err error) {
	err = envconfig.Process("", &cfg)
	return
}
