// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anisan-cli/anidex/key"
	"github.com/anisan-cli/anidex/log"
	"github.com/anisan-cli/anidex/network"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// DefaultEndpoint is the public Anilist GraphQL endpoint.
const DefaultEndpoint = "https://graphql.anilist.co"

// Client sends GraphQL queries to Anilist.
type Client struct {
	http      *resty.Client
	endpoint  string
	limiter   ratelimit.Limiter
	gate      *network.Gate
	token     TokenSource
	logger    logrus.FieldLogger
	hideAdult bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the GraphQL endpoint.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient replaces the underlying resty client.
func WithHTTPClient(client *resty.Client) ClientOption {
	return func(c *Client) { c.http = client }
}

// WithLimiter replaces the request limiter.
func WithLimiter(limiter ratelimit.Limiter) ClientOption {
	return func(c *Client) { c.limiter = limiter }
}

// WithToken authenticates requests with tokens from source.
func WithToken(source TokenSource) ClientOption {
	return func(c *Client) { c.token = source }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger logrus.FieldLogger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithHideAdult asks Anilist to leave adult media out of every list.
func WithHideAdult(hide bool) ClientOption {
	return func(c *Client) { c.hideAdult = hide }
}

// NewClient returns a client with the shared HTTP client and limiter unless overridden.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{endpoint: DefaultEndpoint}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = network.New(network.DefaultOptions())
	}
	if c.limiter == nil {
		c.gate = network.SharedGate()
	} else {
		c.gate = network.NewGate(c.limiter)
	}
	if c.logger == nil {
		c.logger = log.Component("anilist")
	}

	return c
}

// Configured returns a client set up from the configuration and the keyring token.
func Configured() *Client {
	return NewClient(
		WithEndpoint(viper.GetString(key.AnilistEndpoint)),
		WithHideAdult(viper.GetBool(key.BrowseHideAdult)),
		WithToken(KeyringToken),
	)
}

// HidesAdult reports whether adult media is excluded from lists.
func (c *Client) HidesAdult() bool {
	return c.hideAdult
}

// GraphQLError is returned when Anilist rejects a query.
type GraphQLError struct {
	StatusCode int
	Messages   []string
}

func (e *GraphQLError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("anilist: status %d", e.StatusCode)
	}
	return fmt.Sprintf("anilist: %s (status %d)", strings.Join(e.Messages, "; "), e.StatusCode)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"errors"`
}

// Do sends query with variables and decodes the data member of the response into out.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	if err := c.gate.Wait(ctx); err != nil {
		return err
	}

	req := c.http.R().
		SetContext(ctx).
		SetBody(graphQLRequest{Query: query, Variables: variables})

	if c.token != nil {
		if token, ok := c.token(); ok {
			req.SetAuthToken(token)
		}
	}

	logger := c.logger.WithField("variables", variables)
	logger.Debug("sending request")

	resp, err := req.Post(c.endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		logger.WithError(err).Error("request failed")
		return fmt.Errorf("anilist request: %w", err)
	}

	var body graphQLResponse
	if err := json.Unmarshal(resp.Bytes(), &body); err != nil {
		if resp.IsError() {
			return &GraphQLError{StatusCode: resp.StatusCode(), Messages: []string{resp.Status()}}
		}
		return fmt.Errorf("decode anilist response: %w", err)
	}

	if len(body.Errors) > 0 || resp.IsError() {
		gqlErr := &GraphQLError{StatusCode: resp.StatusCode()}
		for _, e := range body.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		logger.WithError(gqlErr).Warn("anilist rejected the query")
		return gqlErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body.Data, out); err != nil {
		return fmt.Errorf("decode anilist data: %w", err)
	}

	logger.WithField("duration", resp.Duration()).Debug("got response")
	return nil
}
