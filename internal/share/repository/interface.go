package repository

import (
	"context"

	"notion-share-sync/internal/model"
)

// Repository is the data access interface for shareable records and project pages.
type Repository interface {
	// ListRecords returns every record matching opt, following pagination to the end.
	// A failure on any page discards the pages already fetched.
	ListRecords(ctx context.Context, opt ListRecordsOptions) ([]model.Record, error)

	// GetRecordDetail fetches the title and canonical URL of a record.
	GetRecordDetail(ctx context.Context, recordID string) (model.RecordDetail, error)

	// ListChildBlocks returns the direct children of a page or block.
	ListChildBlocks(ctx context.Context, parentID string) ([]model.Block, error)

	// AppendLink appends a paragraph holding link under parentID.
	AppendLink(ctx context.Context, parentID string, link model.Link) error

	// UpdateStatus sets the status and clears the trigger flag in a single write.
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) error
}
