package usecase

import (
	"context"

	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share"
)

// ProcessRecord links the record under the category heading of every related project,
// in relation order. The first failure stops the loop; links appended before it stay.
func (uc *implUseCase) ProcessRecord(ctx context.Context, record model.Record, category model.Category) share.RecordOutput {
	out := share.RecordOutput{RecordID: record.ID}
	uc.l.Infof(ctx, "share: processing record %s", compactID(record.ID))

	fail := func(err *share.Error) share.RecordOutput {
		uc.logFailure(ctx, err.WithDatabase(category.DatabaseID).WithRecord(record.ID))
		uc.updateStatus(ctx, record.ID, model.StatusShareFailed)
		out.Status = model.StatusShareFailed
		out.Err = err
		return out
	}

	detail, err := uc.repo.GetRecordDetail(ctx, record.ID)
	if err != nil {
		return fail(share.NewError(share.KindAPI, "get_record", err))
	}
	link := model.Link{
		Label: detail.Title,
		URL:   shareURL(detail.URL, uc.workspaceDomain),
	}

	projectIDs, err := relatedProjects(record)
	if err != nil {
		return fail(share.NewError(share.KindStructure, "resolve_projects", err))
	}

	for _, projectID := range projectIDs {
		blocks, err := uc.repo.ListChildBlocks(ctx, projectID)
		if err != nil {
			return fail(share.NewError(share.KindAPI, "list_project_blocks", err).WithProject(projectID))
		}

		heading, ok := findHeading(blocks, category.Heading)
		if !ok {
			return fail(share.NewError(share.KindStructure, "find_heading", share.ErrHeadingNotFound).WithProject(projectID))
		}

		if err := uc.repo.AppendLink(ctx, heading.ID, link); err != nil {
			return fail(share.NewError(share.KindAPI, "append_link", err).WithProject(projectID))
		}
		out.Links++
		uc.l.Infof(ctx, "share: linked record %s under %q in project %s", record.ID, category.Heading, projectID)
	}

	uc.updateStatus(ctx, record.ID, model.StatusShared)
	out.Status = model.StatusShared
	return out
}

func relatedProjects(record model.Record) ([]string, error) {
	if !record.Projects.Present {
		return nil, share.ErrRelationMissing
	}
	if record.Projects.Type != relationType {
		return nil, share.ErrRelationType
	}
	return record.Projects.IDs, nil
}
