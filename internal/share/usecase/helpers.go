package usecase

import (
	"strings"

	"notion-share-sync/internal/model"
)

const (
	notionDefaultOrigin = "https://www.notion.so"
	relationType        = "relation"
)

// shareURL rewrites the default notion.so origin to the workspace's public site.
func shareURL(rawURL, workspaceDomain string) string {
	return strings.Replace(rawURL, notionDefaultOrigin, "https://"+workspaceDomain+".notion.site", 1)
}

// findHeading returns the first direct child that is a toggleable heading with a
// text run equal to text.
func findHeading(blocks []model.Block, text string) (model.Block, bool) {
	for _, b := range blocks {
		if b.Type != HeadingBlockType || !b.Toggleable {
			continue
		}
		for _, run := range b.TextRuns {
			if run == text {
				return b, true
			}
		}
	}
	return model.Block{}, false
}

func compactID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
