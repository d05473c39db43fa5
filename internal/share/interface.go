package share

import (
	"context"

	"notion-share-sync/internal/model"
)

// UseCase defines the business logic interface for the share domain.
type UseCase interface {
	// Run scans every requested category in order and processes each unshared record.
	Run(ctx context.Context, input RunInput) (RunOutput, error)

	// ProcessDatabase scans one category's database and processes its unshared records sequentially.
	ProcessDatabase(ctx context.Context, category model.Category) (DatabaseOutput, error)

	// ProcessRecord shares one record into every related project and sets its final status.
	ProcessRecord(ctx context.Context, record model.Record, category model.Category) RecordOutput
}
