package partners

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ImSingee/go-ex/ee"
	"github.com/Khan/genqlient/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/ImSingee/shopify-cli/internal/version"
)

// Operation is a named GraphQL document
type Operation struct {
	Name  string
	Query string
}

// Client executes GraphQL operations against a Shopify API.
//
// out receives the `data` object of the response.
type Client interface {
	Request(ctx context.Context, op Operation, token string, variables map[string]any, out any) error
}

// APIError wraps the `errors` list of a GraphQL response
type APIError struct {
	Operation string
	Errors    gqlerror.List
}

func (e *APIError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Message)
	}

	return e.Operation + ": " + strings.Join(messages, ", ")
}

type GraphQLClient struct {
	endpoint   string
	httpClient *http.Client
	headers    map[string]string
}

type Option func(c *GraphQLClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *GraphQLClient) {
		c.httpClient = hc
	}
}

func WithHeader(key, value string) Option {
	return func(c *GraphQLClient) {
		c.headers[key] = value
	}
}

func NewClient(endpoint string, options ...Option) *GraphQLClient {
	c := &GraphQLClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		headers: map[string]string{
			"User-Agent": version.UserAgent(),
		},
	}

	for _, apply := range options {
		apply(c)
	}

	return c
}

func (c *GraphQLClient) Endpoint() string {
	return c.endpoint
}

func (c *GraphQLClient) Request(ctx context.Context, op Operation, token string, variables map[string]any, out any) error {
	slog.Debug("Sending GraphQL request", "operation", op.Name, "endpoint", c.endpoint)

	gql := graphql.NewClient(c.endpoint, &authDoer{
		token:   token,
		headers: c.headers,
		next:    c.httpClient,
	})

	req := &graphql.Request{
		OpName:    op.Name,
		Query:     op.Query,
		Variables: variables,
	}
	resp := &graphql.Response{Data: out}

	err := gql.MakeRequest(ctx, req, resp)
	if len(resp.Errors) != 0 {
		return &APIError{Operation: op.Name, Errors: resp.Errors}
	}
	if err != nil {
		var list gqlerror.List
		if errors.As(err, &list) {
			return &APIError{Operation: op.Name, Errors: list}
		}

		return ee.Wrapf(err, "request %s failed", op.Name)
	}

	return nil
}

type authDoer struct {
	token   string
	headers map[string]string
	next    graphql.Doer
}

func (d *authDoer) Do(req *http.Request) (*http.Response, error) {
	for k, v := range d.headers {
		req.Header.Set(k, v)
	}
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
		// the admin API authenticates with this header instead
		req.Header.Set("X-Shopify-Access-Token", d.token)
	}

	return d.next.Do(req)
}
