package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const userAgent = "Multi-Site-Worker/2.0"

// Client talks to the GitHub REST API with a personal access token.
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL points the client at a GitHub Enterprise server or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

// New builds a client. An empty token is accepted so that the server can
// start and report the missing credential per request.
func New(token types.GitHubToken, options ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   cfg.transport,
		},
	}

	client := github.NewClient(httpClient)
	client.UserAgent = userAgent

	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

// wrapError converts a GitHub error response into types.UpstreamError so the
// upstream message reaches the caller.
func wrapError(err error, msg string, options ...goerr.Option) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		status := 0
		if ghErr.Response != nil {
			status = ghErr.Response.StatusCode
		}
		return goerr.Wrap(&types.UpstreamError{
			Service:    "github",
			StatusCode: status,
			Message:    ghErr.Message,
		}, msg, options...)
	}
	return goerr.Wrap(err, msg, options...)
}

func (x *Client) GenerateFromTemplate(ctx context.Context, input *interfaces.GenerateFromTemplateInput) (*interfaces.GitHubRepository, error) {
	logging.From(ctx).Info("Generating repository from template",
		slog.String("template", input.TemplateOwner+"/"+input.TemplateRepo),
		slog.String("owner", input.Owner),
		slog.String("name", input.Name),
	)

	// https://docs.github.com/en/rest/repos/repos#create-a-repository-using-a-template
	req := &github.TemplateRepoRequest{
		Name:               github.String(input.Name),
		Description:        github.String(input.Description),
		IncludeAllBranches: github.Bool(false),
		Private:            github.Bool(input.Private),
	}
	if input.Owner != "" {
		req.Owner = github.String(input.Owner)
	}

	repo, _, err := x.client.Repositories.CreateFromTemplate(ctx, input.TemplateOwner, input.TemplateRepo, req)
	if err != nil {
		return nil, wrapError(err, "failed to generate repository from template",
			goerr.V("template_owner", input.TemplateOwner),
			goerr.V("template_repo", input.TemplateRepo),
			goerr.V("name", input.Name),
		)
	}

	return &interfaces.GitHubRepository{
		FullName: repo.GetFullName(),
		HTMLURL:  repo.GetHTMLURL(),
	}, nil
}

func contentsPath(owner, repo, path string) string {
	escaped := (&url.URL{Path: strings.TrimPrefix(path, "/")}).String()
	return fmt.Sprintf("repos/%s/%s/contents/%s", owner, repo, escaped)
}

// GetFileContent fetches the raw bytes of a file.
func (x *Client) GetFileContent(ctx context.Context, input *interfaces.GetFileInput) ([]byte, error) {
	u := contentsPath(input.Owner, input.Repo, input.Path)
	if input.Ref != "" {
		u += "?ref=" + url.QueryEscape(input.Ref)
	}

	req, err := x.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build raw content request", goerr.V("path", input.Path))
	}
	req.Header.Set("Accept", "application/vnd.github.v3.raw")

	var buf bytes.Buffer
	if _, err := x.client.Do(ctx, req, &buf); err != nil {
		return nil, wrapError(err, "failed to get raw file content",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}

	logging.From(ctx).Debug("Fetched raw file content",
		slog.String("path", input.Path),
		slog.Int("size", buf.Len()),
	)

	return buf.Bytes(), nil
}

// GetFileSHA returns the blob SHA needed to update a file safely.
func (x *Client) GetFileSHA(ctx context.Context, input *interfaces.GetFileInput) (string, error) {
	var opts *github.RepositoryContentGetOptions
	if input.Ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: input.Ref}
	}

	file, _, _, err := x.client.Repositories.GetContents(ctx, input.Owner, input.Repo, input.Path, opts)
	if err != nil {
		return "", wrapError(err, "failed to get file metadata",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}
	if file == nil {
		return "", goerr.New("path is not a file",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}

	return file.GetSHA(), nil
}

// PutFile creates a file, or updates it when input.SHA is set. GitHub rejects
// the update if the file changed since SHA was read.
func (x *Client) PutFile(ctx context.Context, input *interfaces.PutFileInput) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Content,
	}
	if input.Branch != "" {
		opts.Branch = github.String(input.Branch)
	}

	var err error
	if input.SHA != "" {
		opts.SHA = github.String(input.SHA)
		_, _, err = x.client.Repositories.UpdateFile(ctx, input.Owner, input.Repo, input.Path, opts)
	} else {
		_, _, err = x.client.Repositories.CreateFile(ctx, input.Owner, input.Repo, input.Path, opts)
	}
	if err != nil {
		return wrapError(err, "failed to put file",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("path", input.Path),
		)
	}

	logging.From(ctx).Info("Committed file",
		slog.String("repo", input.Owner+"/"+input.Repo),
		slog.String("path", input.Path),
	)

	return nil
}

func (x *Client) DispatchWorkflow(ctx context.Context, input *interfaces.DispatchWorkflowInput) error {
	event := github.CreateWorkflowDispatchEventRequest{Ref: input.Ref}
	if _, err := x.client.Actions.CreateWorkflowDispatchEventByFileName(ctx, input.Owner, input.Repo, input.Workflow, event); err != nil {
		return wrapError(err, "failed to dispatch workflow",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("workflow", input.Workflow),
		)
	}
	return nil
}
