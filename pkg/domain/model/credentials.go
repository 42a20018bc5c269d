package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
)

// Names of the required credentials as they are reported to the caller.
const (
	CredGitHubToken         = "GITHUB_TOKEN"
	CredRepoOwner           = "REPO_OWNER"
	CredCloudflareAPIToken  = "CLOUDFLARE_API_TOKEN"
	CredCloudflareAccountID = "CLOUDFLARE_ACCOUNT_ID"
)

type Credentials struct {
	GitHubToken         types.GitHubToken         `masq:"secret"`
	RepoOwner           types.RepoOwner
	CloudflareAPIToken  types.CloudflareAPIToken  `masq:"secret"`
	CloudflareAccountID types.CloudflareAccountID
}

// Missing returns the name of the first absent credential, or "" if all are set.
func (x *Credentials) Missing() string {
	switch {
	case x.GitHubToken == "":
		return CredGitHubToken
	case x.RepoOwner == "":
		return CredRepoOwner
	case x.CloudflareAPIToken == "":
		return CredCloudflareAPIToken
	case x.CloudflareAccountID == "":
		return CredCloudflareAccountID
	}
	return ""
}

func (x *Credentials) Validate() error {
	if name := x.Missing(); name != "" {
		return goerr.Wrap(types.ErrMissingCredential, "missing variable: "+name,
			goerr.V("credential", name),
		)
	}
	return nil
}

func (x Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("GitHubToken.len", len(x.GitHubToken)),
		slog.String("RepoOwner", string(x.RepoOwner)),
		slog.Int("CloudflareAPIToken.len", len(x.CloudflareAPIToken)),
		slog.String("CloudflareAccountID", string(x.CloudflareAccountID)),
	)
}
