package model

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestTweet_CreatedTime(t *testing.T) {
	cases := map[string]struct {
		in  string
		out time.Time
		err bool
	}{
		"ok": {
			in:  "Wed Aug 27 13:08:45 +0000 2008",
			out: time.Date(2008, time.August, 27, 13, 8, 45, 0, time.UTC),
		},
		"invalid": {
			in:  "2008-08-27",
			err: true,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			out, err := Tweet{CreatedAt: c.in}.CreatedTime()
			if c.err {
				assert.NotNil(t, err)
			} else {
				require.Nil(t, err)
				assert.True(t, c.out.Equal(out))
			}
		})
	}
}

func TestParseSearchType(t *testing.T) {
	typ, ok := ParseSearchType("users")
	assert.True(t, ok)
	assert.Equal(t, SearchTypeUsers, typ)
	typ, ok = ParseSearchType("tweets")
	assert.True(t, ok)
	assert.Equal(t, SearchTypeTweets, typ)
	_, ok = ParseSearchType("lists")
	assert.False(t, ok)
}
