package notion

import "context"

// INotion is the subset of the Notion REST API used by the share workflow.
type INotion interface {
	QueryDatabase(ctx context.Context, databaseID string, req QueryDatabaseRequest) (*QueryDatabaseResponse, error)
	GetPage(ctx context.Context, pageID string) (*Page, error)
	UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (*Page, error)
	ListBlockChildren(ctx context.Context, blockID string) (*BlockList, error)
	AppendBlockChildren(ctx context.Context, blockID string, children []Block) (*BlockList, error)
}
