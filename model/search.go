package model

type SearchType int

const (
	SearchTypeTweets SearchType = iota
	SearchTypeUsers
)

func (typ SearchType) String() string {
	return []string{"tweets", "users"}[typ]
}

func ParseSearchType(s string) (typ SearchType, ok bool) {
	switch s {
	case SearchTypeTweets.String():
		typ, ok = SearchTypeTweets, true
	case SearchTypeUsers.String():
		typ, ok = SearchTypeUsers, true
	}
	return
}

type TweetSearchResults struct {
	Statuses []Tweet        `json:"statuses"`
	Metadata SearchMetadata `json:"search_metadata"`
}

type SearchMetadata struct {
	CompletedIn float64 `json:"completed_in"`
	MaxId       int64   `json:"max_id"`
	MaxIdStr    string  `json:"max_id_str"`
	SinceId     int64   `json:"since_id"`
	SinceIdStr  string  `json:"since_id_str"`
	Count       int     `json:"count"`
	Query       string  `json:"query"`
	NextResults string  `json:"next_results,omitempty"`
	RefreshUrl  string  `json:"refresh_url,omitempty"`
}
