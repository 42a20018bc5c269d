package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/infra"
)

const (
	DefaultTemplateRepo = "recettes-blog_test"
	DefaultBranch       = "main"
	DefaultConfigPath   = "data/config.yaml"
	DefaultWorkflowFile = "deploy.yml"
	DefaultRegistryKey  = "sites"
	DefaultSettleDelay  = 3 * time.Second
)

// Config is built once at start-up and never modified afterwards.
type Config struct {
	Credentials model.Credentials

	// TemplateOwner defaults to Credentials.RepoOwner when empty.
	TemplateOwner string
	TemplateRepo  string
	Branch        string
	ConfigPath    string
	WorkflowFile  string
	RegistryKey   string

	// SettleDelay is a blind wait after the template is duplicated, giving
	// GitHub time to finish initializing the repository.
	SettleDelay time.Duration

	Policy model.StepPolicy
}

func DefaultConfig() Config {
	return Config{
		TemplateRepo: DefaultTemplateRepo,
		Branch:       DefaultBranch,
		ConfigPath:   DefaultConfigPath,
		WorkflowFile: DefaultWorkflowFile,
		RegistryKey:  DefaultRegistryKey,
		SettleDelay:  DefaultSettleDelay,
		Policy:       model.DefaultStepPolicy,
	}
}

// withDefaults fills empty fields. SettleDelay is kept as is so that zero
// disables the wait.
func (x Config) withDefaults() Config {
	def := DefaultConfig()
	if x.TemplateRepo == "" {
		x.TemplateRepo = def.TemplateRepo
	}
	if x.Branch == "" {
		x.Branch = def.Branch
	}
	if x.ConfigPath == "" {
		x.ConfigPath = def.ConfigPath
	}
	if x.WorkflowFile == "" {
		x.WorkflowFile = def.WorkflowFile
	}
	if x.RegistryKey == "" {
		x.RegistryKey = def.RegistryKey
	}
	if x.Policy == nil {
		x.Policy = def.Policy
	}
	return x
}

func (x Config) templateOwner() string {
	if x.TemplateOwner != "" {
		return x.TemplateOwner
	}
	return string(x.Credentials.RepoOwner)
}

func (x Config) workflowPath() string {
	return ".github/workflows/" + x.WorkflowFile
}

type UseCase struct {
	clients *infra.Clients
	config  Config
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithConfig(cfg Config) Option {
	return func(x *UseCase) {
		x.config = cfg
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		config:  DefaultConfig(),
	}
	for _, opt := range options {
		opt(uc)
	}
	uc.config = uc.config.withDefaults()
	return uc
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
