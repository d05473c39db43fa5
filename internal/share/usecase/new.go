package usecase

import (
	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share"
	"notion-share-sync/internal/share/repository"
	pkgLog "notion-share-sync/pkg/log"
)

// HeadingBlockType is the block type of the toggle heading links are filed under.
const HeadingBlockType = "heading_2"

type implUseCase struct {
	l               pkgLog.Logger
	repo            repository.Repository
	categories      []model.Category
	workspaceDomain string
}

// New creates a new share UseCase instance. categories are run in the given order.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	categories []model.Category,
	workspaceDomain string,
) share.UseCase {
	return &implUseCase{
		l:               l,
		repo:            repo,
		categories:      categories,
		workspaceDomain: workspaceDomain,
	}
}
