package share

import "notion-share-sync/internal/model"

// CompletionMessage is the fixed reply of the HTTP trigger.
const CompletionMessage = "Notion sync process completed"

// RunInput selects the categories to run. Empty means all configured categories.
type RunInput struct {
	Categories []string
}

// RunOutput summarizes one workflow run.
type RunOutput struct {
	TraceID   string
	Databases []DatabaseOutput
}

// DatabaseOutput summarizes one category's scan and processing.
type DatabaseOutput struct {
	Category   string
	DatabaseID string
	Total      int
	Shared     int
	Failed     int
	Links      int   // link blocks appended
	Err        error // scan error; when set no record was processed
}

// RecordOutput is the result of processing one record.
type RecordOutput struct {
	RecordID string
	Status   model.ShareStatus
	Links    int
	Err      error
}

// ScanFailed reports whether any category scan failed.
func (o RunOutput) ScanFailed() bool {
	for _, db := range o.Databases {
		if db.Err != nil {
			return true
		}
	}
	return false
}
