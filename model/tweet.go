package model

import "time"

const TimeLayout = "Mon Jan 2 15:04:05 -0700 2006"

type Tweet struct {
	CreatedAt     string `json:"created_at"`
	Id            int64  `json:"id"`
	IdStr         string `json:"id_str"`
	Text          string `json:"text"`
	Source        string `json:"source,omitempty"`
	Truncated     bool   `json:"truncated"`
	User          User   `json:"user"`
	Lang          string `json:"lang,omitempty"`
	Retweeted     bool   `json:"retweeted"`
	RetweetCount  uint32 `json:"retweet_count"`
	FavoriteCount uint32 `json:"favorite_count"`

	InReplyToStatusId   int64  `json:"in_reply_to_status_id,omitempty"`
	InReplyToUserId     int64  `json:"in_reply_to_user_id,omitempty"`
	InReplyToScreenName string `json:"in_reply_to_screen_name,omitempty"`
}

func (t Tweet) CreatedTime() (time.Time, error) {
	return time.Parse(TimeLayout, t.CreatedAt)
}
