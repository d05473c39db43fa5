package usecase

import (
	"context"

	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share"
	"notion-share-sync/internal/share/repository"
)

// ProcessDatabase collects every unshared record of the category before processing
// any of them, then processes them in list order.
func (uc *implUseCase) ProcessDatabase(ctx context.Context, category model.Category) (share.DatabaseOutput, error) {
	out := share.DatabaseOutput{
		Category:   category.Name,
		DatabaseID: category.DatabaseID,
	}

	records, err := uc.repo.ListRecords(ctx, repository.ListRecordsOptions{
		DatabaseID: category.DatabaseID,
		Status:     model.StatusUnshared,
	})
	if err != nil {
		shareErr := share.NewError(share.KindAPI, "scan_database", err).WithDatabase(category.DatabaseID)
		uc.logFailure(ctx, shareErr)
		out.Err = shareErr
		return out, shareErr
	}

	out.Total = len(records)
	uc.l.Infof(ctx, "share: database %s (%s) has %d unshared records", category.DatabaseID, category.Name, len(records))

	for _, record := range records {
		recOut := uc.ProcessRecord(ctx, record, category)
		out.Links += recOut.Links
		switch recOut.Status {
		case model.StatusShared:
			out.Shared++
		case model.StatusShareFailed:
			out.Failed++
		}
	}

	return out, nil
}
