package usecase

import (
	"context"
	"fmt"

	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share"
	pkgLog "notion-share-sync/pkg/log"
)

// Run processes the selected categories one after another. A scan failure in one
// category is logged and does not stop the next.
func (uc *implUseCase) Run(ctx context.Context, input share.RunInput) (share.RunOutput, error) {
	categories, err := uc.selectCategories(input.Categories)
	if err != nil {
		return share.RunOutput{}, err
	}

	if pkgLog.TraceID(ctx) == "" {
		ctx = pkgLog.WithTraceID(ctx, "")
	}
	out := share.RunOutput{TraceID: pkgLog.TraceID(ctx)}

	uc.l.Info(ctx, "share: run started")
	for _, category := range categories {
		dbOut, err := uc.ProcessDatabase(ctx, category)
		if err != nil {
			uc.l.Warnf(ctx, "share: category %s skipped: %v", category.Name, err)
		}
		out.Databases = append(out.Databases, dbOut)
	}

	for _, db := range out.Databases {
		uc.l.Infof(ctx, "share: category %s done: total=%d shared=%d failed=%d links=%d",
			db.Category, db.Total, db.Shared, db.Failed, db.Links)
	}
	uc.l.Info(ctx, "share: run completed")

	return out, nil
}

func (uc *implUseCase) selectCategories(names []string) ([]model.Category, error) {
	if len(names) == 0 {
		return uc.categories, nil
	}

	selected := make([]model.Category, 0, len(names))
	for _, name := range names {
		found := false
		for _, c := range uc.categories {
			if c.Name == name {
				selected = append(selected, c)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", share.ErrUnknownCategory, name)
		}
	}
	return selected, nil
}
