package usecase

import (
	"context"

	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share"
	"notion-share-sync/internal/share/repository"
)

// updateStatus sets the final status and clears the trigger flag. Failures are
// logged and never returned.
func (uc *implUseCase) updateStatus(ctx context.Context, recordID string, status model.ShareStatus) {
	err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		RecordID: recordID,
		Status:   status,
	})
	if err != nil {
		uc.logFailure(ctx, share.NewError(share.KindStatusUpdate, "update_status", err).WithRecord(recordID))
		return
	}
	uc.l.Infof(ctx, "share: record %s set to %s, trigger cleared", compactID(recordID), status)
}

// logFailure is the single place share failures are written to the log.
func (uc *implUseCase) logFailure(ctx context.Context, err *share.Error) {
	uc.l.Errorf(ctx, "share: %v", err)
}
