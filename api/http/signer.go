package http

import (
	"fmt"
	"github.com/awakari/int-twitter/model"
	"github.com/dghubble/oauth1"
	"github.com/segmentio/ksuid"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	oauthPrefix          = "oauth_"
	oauthConsumerKey     = "oauth_consumer_key"
	oauthNonce           = "oauth_nonce"
	oauthSignature       = "oauth_signature"
	oauthSignatureMethod = "oauth_signature_method"
	oauthTimestamp       = "oauth_timestamp"
	oauthToken           = "oauth_token"
	oauthVersion         = "oauth_version"
	oauthVersionValue    = "1.0"
	authorizationPrefix  = "OAuth "
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Signer wraps the base client so that every request sent through the result is OAuth1 signed.
type Signer interface {
	Signed(client *http.Client, creds model.Credentials) Doer
}

type signerOAuth1 struct {
	noncer oauth1.Noncer
	now    func() time.Time
}

func NewSigner() Signer {
	return signerOAuth1{
		noncer: noncer{},
		now:    time.Now,
	}
}

func (s signerOAuth1) Signed(client *http.Client, creds model.Credentials) Doer {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Transport: transport{
			base:   base,
			signer: s,
			creds:  creds,
		},
		CheckRedirect: client.CheckRedirect,
		Jar:           client.Jar,
		Timeout:       client.Timeout,
	}
}

// header returns the Authorization header value for the request. The oauth_* protocol parameters
// found in the form body are moved into the header, an empty token is omitted.
func (s signerOAuth1) header(req *http.Request, creds model.Credentials) (h string, err error) {
	hmac := &oauth1.HMACSigner{
		ConsumerSecret: creds.ConsumerSecret,
	}
	protocol := map[string]string{
		oauthConsumerKey:     creds.ConsumerKey,
		oauthNonce:           s.noncer.Nonce(),
		oauthSignatureMethod: hmac.Name(),
		oauthTimestamp:       strconv.FormatInt(s.now().Unix(), 10),
		oauthVersion:         oauthVersionValue,
	}
	if creds.Token != "" {
		protocol[oauthToken] = creds.Token
	}
	params := map[string]string{}
	for k, v := range req.URL.Query() {
		params[k] = v[0]
	}
	if req.Body != nil && req.Body != http.NoBody && req.Header.Get("Content-Type") == contentTypeForm {
		var form url.Values
		form, err = extractForm(req)
		if err != nil {
			return
		}
		for k, v := range form {
			if strings.HasPrefix(k, oauthPrefix) {
				protocol[k] = v[0]
			} else {
				params[k] = v[0]
			}
		}
	}
	for k, v := range protocol {
		params[k] = v
	}
	var sig string
	sig, err = hmac.Sign(creds.TokenSecret, signatureBase(req, params))
	if err != nil {
		return
	}
	protocol[oauthSignature] = sig
	h = authorizationPrefix + strings.Join(encodePairs(protocol, `%s="%s"`), ", ")
	return
}

// extractForm reads the form body and replaces it with the non-protocol parameters only.
func extractForm(req *http.Request) (form url.Values, err error) {
	var data []byte
	data, err = io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return
	}
	form, err = url.ParseQuery(string(data))
	if err != nil {
		return
	}
	rest := url.Values{}
	for k, v := range form {
		if !strings.HasPrefix(k, oauthPrefix) {
			rest[k] = v
		}
	}
	body := rest.Encode()
	req.GetBody = nil
	if body == "" {
		req.Body = http.NoBody
		req.ContentLength = 0
		req.Header.Del("Content-Type")
	} else {
		req.Body = io.NopCloser(strings.NewReader(body))
		req.ContentLength = int64(len(body))
	}
	return
}

func signatureBase(req *http.Request, params map[string]string) string {
	host := strings.ToLower(req.URL.Host)
	if h, port, found := strings.Cut(host, ":"); found && (port == "80" || port == "443") {
		host = h
	}
	baseUri := fmt.Sprintf("%s://%s%s", strings.ToLower(req.URL.Scheme), host, req.URL.EscapedPath())
	return strings.Join(
		[]string{
			strings.ToUpper(req.Method),
			oauth1.PercentEncode(baseUri),
			oauth1.PercentEncode(strings.Join(encodePairs(params, "%s=%s"), "&")),
		},
		"&",
	)
}

// encodePairs percent encodes the params and formats them sorted by the encoded key.
func encodePairs(params map[string]string, format string) (pairs []string) {
	encoded := make(map[string]string, len(params))
	keys := make([]string, 0, len(params))
	for k, v := range params {
		ek := oauth1.PercentEncode(k)
		encoded[ek] = oauth1.PercentEncode(v)
		keys = append(keys, ek)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf(format, k, encoded[k]))
	}
	return
}

type transport struct {
	base   http.RoundTripper
	signer signerOAuth1
	creds  model.Credentials
}

func (t transport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	signed := req.Clone(req.Context())
	var h string
	h, err = t.signer.header(signed, t.creds)
	if err != nil {
		return
	}
	signed.Header.Set("Authorization", h)
	return t.base.RoundTrip(signed)
}

type noncer struct{}

func (noncer) Nonce() string {
	return ksuid.New().String()
}
