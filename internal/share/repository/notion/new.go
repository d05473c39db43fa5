package notion

import (
	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share/repository"
	pkgLog "notion-share-sync/pkg/log"
	pkgNotion "notion-share-sync/pkg/notion"
)

// Properties names the record database properties this repository reads and writes.
type Properties struct {
	Status  string // select
	Trigger string // checkbox
	Project string // relation
}

// Statuses maps share statuses to select option labels.
type Statuses map[model.ShareStatus]string

type implRepository struct {
	client   pkgNotion.INotion
	props    Properties
	statuses Statuses
	l        pkgLog.Logger
}

// New creates a Notion-backed share repository.
func New(client pkgNotion.INotion, props Properties, statuses Statuses, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:   client,
		props:    props,
		statuses: statuses,
		l:        l,
	}
}
