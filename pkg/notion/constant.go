package notion

const (
	DefaultBaseURL    = "https://api.notion.com"
	DefaultAPIVersion = "2022-06-28"

	// MaxPageSize is the largest page_size accepted by paginated endpoints.
	MaxPageSize = 100
)

// PropertyType values used by this client.
const (
	PropertyTypeTitle    = "title"
	PropertyTypeRichText = "rich_text"
	PropertyTypeSelect   = "select"
	PropertyTypeCheckbox = "checkbox"
	PropertyTypeRelation = "relation"
)

// BlockType values used by this client.
const (
	BlockTypeParagraph = "paragraph"
	BlockTypeHeading1  = "heading_1"
	BlockTypeHeading2  = "heading_2"
	BlockTypeHeading3  = "heading_3"
)

const (
	ObjectBlock      = "block"
	RichTextTypeText = "text"
)
