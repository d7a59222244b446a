package model

// Credentials is everything needed to sign a request on behalf of an account.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
	ScreenName     string
}

// RequestToken is the temporary token issued at the start of the 3-legged flow.
type RequestToken struct {
	Token             string
	Secret            string
	CallbackConfirmed bool
}
