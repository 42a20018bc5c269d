package cloudflare

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	cf "github.com/cloudflare/cloudflare-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
)

const (
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"
	userAgent      = "Multi-Site-Worker/2.0"
)

// Client manages Workers scripts and routes through the Cloudflare v4 API.
type Client struct {
	token      types.CloudflareAPIToken
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.EdgeCompute = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(token types.CloudflareAPIToken, options ...Option) *Client {
	client := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// api builds the SDK client per call. The token may be empty until the use
// case has checked credentials.
func (x *Client) api() (*cf.API, error) {
	api, err := cf.NewWithAPIToken(string(x.token),
		cf.BaseURL(x.baseURL),
		cf.HTTPClient(x.httpClient),
		cf.UserAgent(userAgent),
		cf.UsingRetryPolicy(0, 0, 0),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloudflare API client")
	}
	return api, nil
}

// upstreamError converts SDK errors and unsuccessful envelopes into
// types.UpstreamError so callers can match on types.ErrUpstreamAPI.
func upstreamError(err error, resp *cf.Response) *types.UpstreamError {
	upstream := &types.UpstreamError{Service: "cloudflare"}

	if resp != nil {
		upstream.StatusCode = http.StatusOK
		upstream.Message = "request was not successful"
		for _, info := range resp.Errors {
			if info.Message != "" {
				upstream.Message = info.Message
				break
			}
		}
		return upstream
	}

	upstream.Message = err.Error()

	var cfErr *cf.Error
	if errors.As(err, &cfErr) {
		upstream.StatusCode = cfErr.StatusCode
		if len(cfErr.ErrorMessages) > 0 && cfErr.ErrorMessages[0] != "" {
			upstream.Message = cfErr.ErrorMessages[0]
		}
		return upstream
	}

	var withMessages interface{ ErrorMessages() []string }
	if errors.As(err, &withMessages) {
		if msgs := withMessages.ErrorMessages(); len(msgs) > 0 && msgs[0] != "" {
			upstream.Message = msgs[0]
		}
	}
	return upstream
}

// UploadScript creates or replaces a Workers script. The script is sent as an
// ES module, so the upload is multipart with main_module metadata.
func (x *Client) UploadScript(ctx context.Context, input *interfaces.UploadScriptInput) error {
	api, err := x.api()
	if err != nil {
		return err
	}

	resp, err := api.UploadWorker(ctx, cf.AccountIdentifier(input.AccountID), cf.CreateWorkerParams{
		ScriptName: input.ScriptName,
		Script:     input.Script,
		Module:     true,
	})
	if err != nil {
		return goerr.Wrap(upstreamError(err, nil), "failed to upload worker script",
			goerr.V("script", input.ScriptName),
			goerr.V("cause", err.Error()),
		)
	}
	if !resp.Success {
		return goerr.Wrap(upstreamError(nil, &resp.Response), "failed to upload worker script",
			goerr.V("script", input.ScriptName),
		)
	}

	logging.From(ctx).Info("Uploaded worker script",
		slog.String("script", input.ScriptName),
		slog.Int("size", len(input.Script)),
	)
	return nil
}

// AttachRoute binds a URL pattern to a script. The route is registered on the
// account-scoped script endpoint, which the SDK has no typed call for, so it
// goes through the SDK's raw request path.
func (x *Client) AttachRoute(ctx context.Context, input *interfaces.AttachRouteInput) error {
	api, err := x.api()
	if err != nil {
		return err
	}

	endpoint := "/accounts/" + url.PathEscape(input.AccountID) +
		"/workers/scripts/" + url.PathEscape(input.ScriptName) + "/routes"
	body := map[string]string{
		"pattern": input.Pattern,
		"script":  input.ScriptName,
	}

	resp, err := api.Raw(ctx, http.MethodPost, endpoint, body, nil)
	if err != nil {
		return goerr.Wrap(upstreamError(err, nil), "failed to attach worker route",
			goerr.V("script", input.ScriptName),
			goerr.V("pattern", input.Pattern),
			goerr.V("cause", err.Error()),
		)
	}
	if !resp.Success {
		return goerr.Wrap(upstreamError(nil, &resp.Response), "failed to attach worker route",
			goerr.V("script", input.ScriptName),
			goerr.V("pattern", input.Pattern),
		)
	}

	logging.From(ctx).Info("Attached worker route", slog.String("pattern", input.Pattern))
	return nil
}
