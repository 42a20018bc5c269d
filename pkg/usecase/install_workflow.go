package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"gopkg.in/yaml.v3"
)

type workflow struct {
	Name        string                 `yaml:"name"`
	On          workflowTriggers       `yaml:"on"`
	Permissions workflowPermissions    `yaml:"permissions"`
	Jobs        map[string]workflowJob `yaml:"jobs"`
}

type workflowTriggers struct {
	Push             workflowPush `yaml:"push"`
	WorkflowDispatch struct{}     `yaml:"workflow_dispatch"`
}

type workflowPush struct {
	Branches []string `yaml:"branches,flow"`
}

type workflowPermissions struct {
	Contents string `yaml:"contents"`
	Pages    string `yaml:"pages"`
	IDToken  string `yaml:"id-token"`
}

type workflowJob struct {
	RunsOn string         `yaml:"runs-on"`
	Steps  []workflowStep `yaml:"steps"`
}

type workflowStep struct {
	Name string         `yaml:"name"`
	ID   string         `yaml:"id,omitempty"`
	Uses string         `yaml:"uses,omitempty"`
	Run  string         `yaml:"run,omitempty"`
	With map[string]any `yaml:"with,omitempty"`
}

// pagesWorkflow builds the Hugo site and publishes it to GitHub Pages on every
// push to branch.
func pagesWorkflow(branch string) *workflow {
	return &workflow{
		Name: "Deploy to GitHub Pages + Cloudflare",
		On: workflowTriggers{
			Push: workflowPush{Branches: []string{branch}},
		},
		Permissions: workflowPermissions{
			Contents: "read",
			Pages:    "write",
			IDToken:  "write",
		},
		Jobs: map[string]workflowJob{
			"build-and-deploy": {
				RunsOn: "ubuntu-latest",
				Steps: []workflowStep{
					{Name: "Checkout", Uses: "actions/checkout@v3"},
					{
						Name: "Setup Node.js",
						Uses: "actions/setup-node@v3",
						With: map[string]any{"node-version": "20", "cache": "npm"},
					},
					{Name: "Install dependencies", Run: "npm ci"},
					{
						Name: "Setup Hugo",
						Uses: "peaceiris/actions-hugo@v3",
						With: map[string]any{"hugo-version": "latest", "extended": true},
					},
					{
						Name: "Build site",
						Run:  "npm run build:css\nnpm run build:js\nhugo --gc --minify\n",
					},
					{Name: "Setup Pages", Uses: "actions/configure-pages@v3"},
					{
						Name: "Upload artifact",
						Uses: "actions/upload-pages-artifact@v2",
						With: map[string]any{"path": "./public"},
					},
					{Name: "Deploy to GitHub Pages", ID: "deployment", Uses: "actions/deploy-pages@v2"},
				},
			},
		},
	}
}

func renderWorkflow(branch string) ([]byte, error) {
	raw, err := yaml.Marshal(pagesWorkflow(branch))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal workflow")
	}
	return raw, nil
}

// installWorkflow commits the Pages workflow into the new repository.
func (x *UseCase) installWorkflow(ctx context.Context, repo string) error {
	content, err := renderWorkflow(x.config.Branch)
	if err != nil {
		return err
	}

	if err := x.clients.GitHub().PutFile(ctx, &interfaces.PutFileInput{
		Owner:   string(x.config.Credentials.RepoOwner),
		Repo:    repo,
		Path:    x.config.workflowPath(),
		Message: "Add GitHub Actions deployment workflow",
		Content: content,
		Branch:  x.config.Branch,
	}); err != nil {
		return goerr.Wrap(err, "failed to install workflow", goerr.V("repo", repo))
	}

	return nil
}
