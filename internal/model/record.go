package model

// ShareStatus is the lifecycle state of a shareable record.
// Transitions only go StatusUnshared -> StatusShared | StatusShareFailed.
type ShareStatus string

const (
	StatusUnshared    ShareStatus = "unshared"
	StatusShared      ShareStatus = "shared"
	StatusShareFailed ShareStatus = "share_failed"
)

// Record is a shareable document row (minutes or manual) owned by Notion.
type Record struct {
	ID             string
	URL            string
	Status         ShareStatus
	ShareRequested bool // trigger checkbox
	Projects       ProjectRelation
}

// ProjectRelation is the decoded project relation property of a record.
type ProjectRelation struct {
	Present bool   // property exists on the record
	Type    string // property type as reported by Notion
	IDs     []string
}

// RecordDetail is what the processor needs to build a share link.
type RecordDetail struct {
	ID    string
	Title string
	URL   string // canonical notion.so URL
}
