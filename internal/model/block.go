package model

// Block is a direct child of a project page.
type Block struct {
	ID         string
	Type       string
	Toggleable bool
	TextRuns   []string // plain text of each rich text run
}

// Link is a labelled hyperlink to insert under a heading.
type Link struct {
	Label string
	URL   string
}
