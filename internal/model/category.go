package model

const (
	CategoryMinutes = "minutes"
	CategoryManual  = "manual"
)

// Category binds a record database to the heading its links are filed under.
type Category struct {
	Name       string
	DatabaseID string
	Heading    string
}
