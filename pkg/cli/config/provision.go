package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Provision holds the template and pipeline settings of the clone workflow.
type Provision struct {
	templateOwner string
	templateRepo  string
	branch        string
	configPath    string
	workflowFile  string
	registryKey   string
	settleDelay   time.Duration
}

func (x *Provision) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "template-owner",
			Usage:       "Owner of the template repository (default: repo owner)",
			Category:    "Provision",
			Destination: &x.templateOwner,
			Sources:     cli.EnvVars("SITECLONER_TEMPLATE_OWNER"),
		},
		&cli.StringFlag{
			Name:        "template-repo",
			Usage:       "Template repository name",
			Category:    "Provision",
			Value:       usecase.DefaultTemplateRepo,
			Destination: &x.templateRepo,
			Sources:     cli.EnvVars("SITECLONER_TEMPLATE_REPO"),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch that is patched, built and deployed",
			Category:    "Provision",
			Value:       usecase.DefaultBranch,
			Destination: &x.branch,
			Sources:     cli.EnvVars("SITECLONER_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "config-path",
			Usage:       "Path of the site config file in the repository",
			Category:    "Provision",
			Value:       usecase.DefaultConfigPath,
			Destination: &x.configPath,
			Sources:     cli.EnvVars("SITECLONER_CONFIG_PATH"),
		},
		&cli.StringFlag{
			Name:        "workflow-file",
			Usage:       "File name of the deployment workflow",
			Category:    "Provision",
			Value:       usecase.DefaultWorkflowFile,
			Destination: &x.workflowFile,
			Sources:     cli.EnvVars("SITECLONER_WORKFLOW_FILE"),
		},
		&cli.StringFlag{
			Name:        "registry-key",
			Usage:       "Key of the registry document",
			Category:    "Provision",
			Value:       usecase.DefaultRegistryKey,
			Destination: &x.registryKey,
			Sources:     cli.EnvVars("SITECLONER_REGISTRY_KEY"),
		},
		&cli.DurationFlag{
			Name:        "settle-delay",
			Usage:       "Wait after the repository is created",
			Category:    "Provision",
			Value:       usecase.DefaultSettleDelay,
			Destination: &x.settleDelay,
			Sources:     cli.EnvVars("SITECLONER_SETTLE_DELAY"),
		},
	}
}

func (x *Provision) UseCaseConfig(creds model.Credentials) usecase.Config {
	cfg := usecase.DefaultConfig()
	cfg.Credentials = creds
	cfg.TemplateOwner = x.templateOwner
	cfg.TemplateRepo = x.templateRepo
	cfg.Branch = x.branch
	cfg.ConfigPath = x.configPath
	cfg.WorkflowFile = x.workflowFile
	cfg.RegistryKey = x.registryKey
	cfg.SettleDelay = x.settleDelay
	return cfg
}

func (x Provision) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("templateOwner", x.templateOwner),
		slog.String("templateRepo", x.templateRepo),
		slog.String("branch", x.branch),
		slog.String("configPath", x.configPath),
		slog.String("workflowFile", x.workflowFile),
		slog.String("registryKey", x.registryKey),
		slog.Duration("settleDelay", x.settleDelay),
	)
}
