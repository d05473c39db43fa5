package notion

import "strings"

// QueryDatabaseRequest is the body for POST /v1/databases/{id}/query.
type QueryDatabaseRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}

// Filter is a single property filter.
type Filter struct {
	Property string        `json:"property"`
	Select   *SelectFilter `json:"select,omitempty"`
}

// SelectFilter matches a select property by option name.
type SelectFilter struct {
	Equals string `json:"equals"`
}

// QueryDatabaseResponse is one page of database query results.
type QueryDatabaseResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// Page is a Notion page object.
type Page struct {
	Object     string              `json:"object"`
	ID         string              `json:"id"`
	URL        string              `json:"url"`
	Properties map[string]Property `json:"properties"`
}

// Property is a page property value. Only the field matching Type is populated.
type Property struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Relation []Relation    `json:"relation,omitempty"`
}

// SelectOption is the value of a select property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Relation references a related page.
type Relation struct {
	ID string `json:"id"`
}

// UpdatePageRequest is the body for PATCH /v1/pages/{id}.
type UpdatePageRequest struct {
	Properties map[string]Property `json:"properties"`
}

// RichText is a single rich text run.
type RichText struct {
	Type      string `json:"type,omitempty"`
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
	Href      string `json:"href,omitempty"`
}

// Text is the content of a text run.
type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is a hyperlink target.
type Link struct {
	URL string `json:"url"`
}

// Block is a Notion block object. Only the content field matching Type is populated;
// block types this client does not model decode with just their metadata.
type Block struct {
	Object      string     `json:"object,omitempty"`
	ID          string     `json:"id,omitempty"`
	Type        string     `json:"type"`
	HasChildren bool       `json:"has_children,omitempty"`
	Paragraph   *Paragraph `json:"paragraph,omitempty"`
	Heading1    *Heading   `json:"heading_1,omitempty"`
	Heading2    *Heading   `json:"heading_2,omitempty"`
	Heading3    *Heading   `json:"heading_3,omitempty"`
}

// Heading holds heading_1/2/3 content.
type Heading struct {
	RichText     []RichText `json:"rich_text"`
	IsToggleable bool       `json:"is_toggleable"`
	Color        string     `json:"color,omitempty"`
}

// Paragraph holds paragraph content.
type Paragraph struct {
	RichText []RichText `json:"rich_text"`
}

// BlockList is the response of the block children endpoints.
type BlockList struct {
	Object     string  `json:"object"`
	Results    []Block `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// AppendBlockChildrenRequest is the body for PATCH /v1/blocks/{id}/children.
type AppendBlockChildrenRequest struct {
	Children []Block `json:"children"`
}

// ErrorResponse is the error object returned by the API.
type ErrorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HeadingContent returns the heading content for heading_1/2/3 blocks, or nil.
func (b Block) HeadingContent() *Heading {
	switch b.Type {
	case BlockTypeHeading1:
		return b.Heading1
	case BlockTypeHeading2:
		return b.Heading2
	case BlockTypeHeading3:
		return b.Heading3
	}
	return nil
}

// PlainText concatenates the plain text of every run.
func PlainText(runs []RichText) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.PlainText)
	}
	return sb.String()
}

// NewLinkParagraph builds a paragraph block holding a single linked text run.
func NewLinkParagraph(label, url string) Block {
	return Block{
		Object: ObjectBlock,
		Type:   BlockTypeParagraph,
		Paragraph: &Paragraph{
			RichText: []RichText{{
				Type: RichTextTypeText,
				Text: &Text{
					Content: label,
					Link:    &Link{URL: url},
				},
			}},
		},
	}
}
