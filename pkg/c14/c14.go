// Package `c14` is a client for the provider's cold-storage REST API below
// `/storage/c14/`; only what `c14put` uses: resolving safes, creating and
// sealing archives, polling provisioning jobs, and fetching bucket
// credentials.
//
// All requests carry a static bearer token.  There are no retries; a failed
// call surfaces immediately to the caller.
package c14

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

const UserAgent = "c14put"

const httpTimeout = 20 * time.Second

// `DefaultPollInterval` is the sleep between job polls in
// `Client.WaitArchiveReady()`.
const DefaultPollInterval = 10 * time.Second

// `Logger` is the subset of structured logging that package `c14` uses.
type Logger interface {
	Debugw(msg string, kv ...interface{})
	Infow(msg string, kv ...interface{})
}

// `RemoteError` reports a non-success HTTP response.  `Message` is taken
// from the server JSON error body if there was one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error: status %d", e.StatusCode)
	}
	return fmt.Sprintf(
		"remote error: status %d: %s", e.StatusCode, e.Message,
	)
}

type Client struct {
	lg         Logger
	baseURL    string
	token      string
	httpClient *http.Client

	// `PollInterval` can be lowered in tests.
	PollInterval time.Duration
}

func NewClient(apiURL, token string, lg Logger) *Client {
	return &Client{
		lg:           lg,
		baseURL:      strings.TrimRight(apiURL, "/"),
		token:        token,
		httpClient:   &http.Client{Timeout: httpTimeout},
		PollInterval: DefaultPollInterval,
	}
}

// `Get()` and `Post()` take a path relative to `/storage/c14/` and decode
// the JSON response into `out`, which may be nil to discard the body.
func (c *Client) Get(path string, out interface{}) error {
	return c.do("GET", path, nil, out)
}

func (c *Client) Post(path string, body, out interface{}) error {
	return c.do("POST", path, body, out)
}

func (c *Client) do(method, path string, body, out interface{}) error {
	url := fmt.Sprintf("%s/storage/c14/%s", c.baseURL, path)

	iData := new(bytes.Buffer)
	if body != nil {
		if err := json.NewEncoder(iData).Encode(body); err != nil {
			return err
		}
	}
	c.lg.Debugw(
		"API request.",
		"method", method, "url", url, "body", iData.String(),
	)

	i, err := http.NewRequest(method, url, iData)
	if err != nil {
		return err
	}
	if body != nil {
		i.Header.Add("Content-Type", "application/json; charset=utf-8")
	}
	i.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.token))
	i.Header.Add("User-Agent", UserAgent)

	o, err := c.httpClient.Do(i)
	if err != nil {
		return err
	}
	defer o.Body.Close()

	oData, err := ioutil.ReadAll(o.Body)
	if err != nil {
		return err
	}
	c.lg.Debugw(
		"API response.",
		"status", o.StatusCode, "body", string(oData),
	)

	if o.StatusCode < 200 || o.StatusCode > 299 {
		var oErrBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(oData, &oErrBody)
		return &RemoteError{
			StatusCode: o.StatusCode,
			Message:    oErrBody.Error,
		}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(oData, out)
}
