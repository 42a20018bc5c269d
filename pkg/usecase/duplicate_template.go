package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
)

// duplicateTemplate creates the site repository from the template and returns
// its HTML URL.
func (x *UseCase) duplicateTemplate(ctx context.Context, input *model.CloneSiteInput) (string, error) {
	repo, err := x.clients.GitHub().GenerateFromTemplate(ctx, &interfaces.GenerateFromTemplateInput{
		TemplateOwner: x.config.templateOwner(),
		TemplateRepo:  x.config.TemplateRepo,
		Owner:         string(x.config.Credentials.RepoOwner),
		Name:          input.RepoName,
		Description:   fmt.Sprintf("Site %s - generated automatically", input.SiteName),
		Private:       false,
	})
	if err != nil {
		return "", goerr.Wrap(err, "template duplication failed", goerr.V("repo_name", input.RepoName))
	}

	return repo.HTMLURL, nil
}
