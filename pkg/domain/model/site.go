package model

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
)

var ptnValidRepoName = regexp.MustCompile(`^[a-z0-9-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("reponame", func(fl validator.FieldLevel) bool {
		return ptnValidRepoName.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// CloneSiteInput is a provisioning request. It is validated once when it
// enters the system and never modified afterwards.
type CloneSiteInput struct {
	SiteName  string `json:"site_name" validate:"required"`
	RepoName  string `json:"repo_name" validate:"required,reponame"`
	HeroLine1 string `json:"hero_line1,omitempty"`
	HeroLine2 string `json:"hero_line2,omitempty"`
}

// Validate checks presence of site_name and repo_name first, then the
// repo_name pattern.
func (x *CloneSiteInput) Validate() error {
	err := validate.Struct(x)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return goerr.Wrap(err, "failed to validate clone site input")
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return goerr.Wrap(types.ErrValidationFailed, "site_name and repo_name are required",
				goerr.V("field", fe.Field()),
			)
		}
	}

	return goerr.Wrap(types.ErrValidationFailed, "repo_name must contain only lowercase letters, digits and hyphens",
		goerr.V("repo_name", x.RepoName),
	)
}

// HasHero reports whether any hero line customization was requested.
func (x *CloneSiteInput) HasHero() bool {
	return x.HeroLine1 != "" || x.HeroLine2 != ""
}

// LogoText is the first letter of the site name, upper-cased.
func (x *CloneSiteInput) LogoText() string {
	for _, r := range x.SiteName {
		return strings.ToUpper(string(r))
	}
	return ""
}

// CloneSiteOutput is returned to the caller after a successful clone.
type CloneSiteOutput struct {
	SiteID         types.SiteID `json:"site_id"`
	PrimaryURL     string       `json:"primary_url"`
	AdminURL       string       `json:"admin_url"`
	GitHubURL      string       `json:"github_url"`
	DeploymentType string       `json:"deployment_type"`
	DeploymentNote *string      `json:"deployment_note"`

	Steps []StepResult `json:"-"`
}

// Site is a registry record, created after a successful deployment.
type Site struct {
	ID             types.SiteID `json:"id"`
	Name           string       `json:"name"`
	Repo           string       `json:"repo"`
	Domain         string       `json:"domain"`
	AdminURL       string       `json:"admin_url"`
	CreatedAt      string       `json:"created_at"`
	Status         string       `json:"status"`
	GitHubURL      string       `json:"github_url"`
	DeploymentType string       `json:"deployment_type"`
	DeploymentURL  string       `json:"deployment_url"`
}

const SiteStatusActive = "active"

// SiteRegistry is the registry document: every site keyed by its ID.
type SiteRegistry map[types.SiteID]Site

// Deployment is the outcome of the edge function deployer.
type Deployment struct {
	ID   string
	Name string
	URL  string
	Type string
	Note *string
}

const DeploymentTypeWorkerAuto = "worker-auto"

// Hostname strips the scheme from the deployment URL.
func (x *Deployment) Hostname() string {
	return strings.TrimPrefix(x.URL, "https://")
}

// AdminURL is the CMS entry point of the deployed site.
func (x *Deployment) AdminURL() string {
	return x.URL + "/admin/"
}
