package notion

import (
	"context"
	"fmt"

	"notion-share-sync/internal/model"
	pkgNotion "notion-share-sync/pkg/notion"
)

func (r *implRepository) ListChildBlocks(ctx context.Context, parentID string) ([]model.Block, error) {
	list, err := r.client.ListBlockChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list block children: %w", err)
	}

	blocks := make([]model.Block, 0, len(list.Results))
	for _, b := range list.Results {
		blocks = append(blocks, toBlock(b))
	}
	return blocks, nil
}

func (r *implRepository) AppendLink(ctx context.Context, parentID string, link model.Link) error {
	children := []pkgNotion.Block{pkgNotion.NewLinkParagraph(link.Label, link.URL)}
	if _, err := r.client.AppendBlockChildren(ctx, parentID, children); err != nil {
		return fmt.Errorf("append block children: %w", err)
	}
	return nil
}

func toBlock(b pkgNotion.Block) model.Block {
	block := model.Block{ID: b.ID, Type: b.Type}

	var runs []pkgNotion.RichText
	if h := b.HeadingContent(); h != nil {
		block.Toggleable = h.IsToggleable
		runs = h.RichText
	} else if b.Paragraph != nil {
		runs = b.Paragraph.RichText
	}

	for _, rt := range runs {
		block.TextRuns = append(block.TextRuns, rt.PlainText)
	}
	return block
}
