package config

import (
	"log/slog"

	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds the token and owner of the account that receives new
// repositories. Both may be empty at start-up; a clone request then fails
// naming the missing variable.
type GitHub struct {
	token   types.GitHubToken `masq:"secret"`
	owner   types.RepoOwner
	baseURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITHUB_TOKEN", "SITECLONER_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "repo-owner",
			Usage:       "GitHub account that owns the template and the new repositories",
			Category:    "GitHub",
			Destination: (*string)(&x.owner),
			Sources:     cli.EnvVars("REPO_OWNER", "SITECLONER_REPO_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("SITECLONER_GITHUB_API_URL"),
		},
	}
}

func (x *GitHub) Token() types.GitHubToken { return x.token }
func (x *GitHub) Owner() types.RepoOwner   { return x.owner }

func (x *GitHub) New() (*github.Client, error) {
	var options []github.Option
	if x.baseURL != "" {
		options = append(options, github.WithBaseURL(x.baseURL))
	}
	return github.New(x.token, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("owner", string(x.owner)),
		slog.String("baseURL", x.baseURL),
	)
}
