package repository

import "notion-share-sync/internal/model"

// ListRecordsOptions holds the parameters for scanning a record database.
type ListRecordsOptions struct {
	DatabaseID string
	Status     model.ShareStatus
}

// UpdateStatusOptions holds the parameters for finalizing a record.
type UpdateStatusOptions struct {
	RecordID string
	Status   model.ShareStatus
}
