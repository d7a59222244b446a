package model

type User struct {
	Id                   int64  `json:"id"`
	IdStr                string `json:"id_str"`
	Name                 string `json:"name"`
	ScreenName           string `json:"screen_name"`
	Location             string `json:"location,omitempty"`
	Description          string `json:"description,omitempty"`
	Url                  string `json:"url,omitempty"`
	ProfileImageUrl      string `json:"profile_image_url,omitempty"`
	ProfileImageUrlHttps string `json:"profile_image_url_https,omitempty"`
	FollowersCount       uint32 `json:"followers_count"`
	FriendsCount         uint32 `json:"friends_count"`
	StatusesCount        uint32 `json:"statuses_count"`
	FavouritesCount      uint32 `json:"favourites_count"`
	Protected            bool   `json:"protected"`
	Verified             bool   `json:"verified"`
	Lang                 string `json:"lang,omitempty"`
	CreatedAt            string `json:"created_at,omitempty"`
}

// UserList is a single page of users returned by the cursored list endpoints.
type UserList struct {
	Users             []User `json:"users"`
	NextCursor        int64  `json:"next_cursor"`
	NextCursorStr     string `json:"next_cursor_str"`
	PreviousCursor    int64  `json:"previous_cursor"`
	PreviousCursorStr string `json:"previous_cursor_str"`
}

// Last reports whether there is no page after this one.
func (ul UserList) Last() bool {
	return ul.NextCursor == 0
}
