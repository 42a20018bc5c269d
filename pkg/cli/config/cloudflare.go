package config

import (
	"log/slog"

	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/infra/cloudflare"
	"github.com/urfave/cli/v3"
)

type Cloudflare struct {
	token     types.CloudflareAPIToken `masq:"secret"`
	accountID types.CloudflareAccountID
	baseURL   string
}

func (x *Cloudflare) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cloudflare-api-token",
			Usage:       "Cloudflare API token with Workers permissions",
			Category:    "Cloudflare",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("CLOUDFLARE_API_TOKEN", "SITECLONER_CLOUDFLARE_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "cloudflare-account-id",
			Usage:       "Cloudflare account ID",
			Category:    "Cloudflare",
			Destination: (*string)(&x.accountID),
			Sources:     cli.EnvVars("CLOUDFLARE_ACCOUNT_ID", "SITECLONER_CLOUDFLARE_ACCOUNT_ID"),
		},
		&cli.StringFlag{
			Name:        "cloudflare-api-url",
			Usage:       "Cloudflare API base URL",
			Category:    "Cloudflare",
			Value:       cloudflare.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("SITECLONER_CLOUDFLARE_API_URL"),
		},
	}
}

func (x *Cloudflare) Token() types.CloudflareAPIToken     { return x.token }
func (x *Cloudflare) AccountID() types.CloudflareAccountID { return x.accountID }

func (x *Cloudflare) New() *cloudflare.Client {
	var options []cloudflare.Option
	if x.baseURL != "" {
		options = append(options, cloudflare.WithBaseURL(x.baseURL))
	}
	return cloudflare.New(x.token, options...)
}

func (x Cloudflare) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("accountID", string(x.accountID)),
		slog.String("baseURL", x.baseURL),
	)
}
