package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sitecloner/pkg/usecase"
	"gopkg.in/yaml.v3"
)

type parsedStep struct {
	Name string         `yaml:"name"`
	ID   string         `yaml:"id"`
	Uses string         `yaml:"uses"`
	Run  string         `yaml:"run"`
	With map[string]any `yaml:"with"`
}

type parsedWorkflow struct {
	Name string `yaml:"name"`
	On   struct {
		Push struct {
			Branches []string `yaml:"branches"`
		} `yaml:"push"`
		WorkflowDispatch *struct{} `yaml:"workflow_dispatch"`
	} `yaml:"on"`
	Permissions map[string]string `yaml:"permissions"`
	Jobs        map[string]struct {
		RunsOn string       `yaml:"runs-on"`
		Steps  []parsedStep `yaml:"steps"`
	} `yaml:"jobs"`
}

func TestRenderWorkflow(t *testing.T) {
	raw := gt.R1(usecase.RenderWorkflow("main")).NoError(t)

	var wf parsedWorkflow
	gt.NoError(t, yaml.Unmarshal(raw, &wf))

	gt.V(t, wf.Name).Equal("Deploy to GitHub Pages + Cloudflare")
	gt.V(t, wf.On.Push.Branches).Equal([]string{"main"})
	gt.V(t, wf.On.WorkflowDispatch).NotEqual(nil)
	gt.V(t, wf.Permissions).Equal(map[string]string{
		"contents": "read",
		"pages":    "write",
		"id-token": "write",
	})

	job, ok := wf.Jobs["build-and-deploy"]
	gt.True(t, ok)
	gt.V(t, job.RunsOn).Equal("ubuntu-latest")

	names := make([]string, len(job.Steps))
	for i, s := range job.Steps {
		names[i] = s.Name
	}
	gt.V(t, names).Equal([]string{
		"Checkout",
		"Setup Node.js",
		"Install dependencies",
		"Setup Hugo",
		"Build site",
		"Setup Pages",
		"Upload artifact",
		"Deploy to GitHub Pages",
	})

	gt.V(t, job.Steps[0].Uses).Equal("actions/checkout@v3")
	gt.V(t, job.Steps[1].With["node-version"]).Equal("20")
	gt.V(t, job.Steps[1].With["cache"]).Equal("npm")
	gt.V(t, job.Steps[2].Run).Equal("npm ci")
	gt.V(t, job.Steps[3].Uses).Equal("peaceiris/actions-hugo@v3")
	gt.V(t, job.Steps[3].With["extended"]).Equal(true)
	gt.V(t, job.Steps[4].Run).Equal("npm run build:css\nnpm run build:js\nhugo --gc --minify\n")
	gt.V(t, job.Steps[6].With["path"]).Equal("./public")
	gt.V(t, job.Steps[7].ID).Equal("deployment")
	gt.V(t, job.Steps[7].Uses).Equal("actions/deploy-pages@v2")
}
