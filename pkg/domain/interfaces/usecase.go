package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/sitecloner/pkg/domain/model"
)

type UseCase interface {
	CloneSite(ctx context.Context, input *model.CloneSiteInput) (*model.CloneSiteOutput, error)
	ListSites(ctx context.Context) (model.SiteRegistry, error)
}
