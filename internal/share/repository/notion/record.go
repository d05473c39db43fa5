package notion

import (
	"context"
	"fmt"

	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share/repository"
	pkgNotion "notion-share-sync/pkg/notion"
)

// UntitledTitle is used when a page has no title text.
const UntitledTitle = "Untitled"

func (r *implRepository) ListRecords(ctx context.Context, opt repository.ListRecordsOptions) ([]model.Record, error) {
	label, err := r.statusLabel(opt.Status)
	if err != nil {
		return nil, err
	}

	req := pkgNotion.QueryDatabaseRequest{
		Filter: &pkgNotion.Filter{
			Property: r.props.Status,
			Select:   &pkgNotion.SelectFilter{Equals: label},
		},
		PageSize: pkgNotion.MaxPageSize,
	}

	var records []model.Record
	for page := 1; ; page++ {
		resp, err := r.client.QueryDatabase(ctx, opt.DatabaseID, req)
		if err != nil {
			return nil, fmt.Errorf("query database page %d: %w", page, err)
		}
		for _, p := range resp.Results {
			records = append(records, r.pageToRecord(p))
		}
		if resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		req.StartCursor = *resp.NextCursor
	}

	r.l.Debugf(ctx, "notion repository: database %s returned %d records", opt.DatabaseID, len(records))
	return records, nil
}

func (r *implRepository) GetRecordDetail(ctx context.Context, recordID string) (model.RecordDetail, error) {
	page, err := r.client.GetPage(ctx, recordID)
	if err != nil {
		return model.RecordDetail{}, fmt.Errorf("get page: %w", err)
	}

	return model.RecordDetail{
		ID:    page.ID,
		Title: pageTitle(page.Properties),
		URL:   page.URL,
	}, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) error {
	label, err := r.statusLabel(opt.Status)
	if err != nil {
		return err
	}

	unchecked := false
	req := pkgNotion.UpdatePageRequest{
		Properties: map[string]pkgNotion.Property{
			r.props.Status:  {Select: &pkgNotion.SelectOption{Name: label}},
			r.props.Trigger: {Checkbox: &unchecked},
		},
	}
	if _, err := r.client.UpdatePage(ctx, opt.RecordID, req); err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

func (r *implRepository) statusLabel(status model.ShareStatus) (string, error) {
	label, ok := r.statuses[status]
	if !ok || label == "" {
		return "", fmt.Errorf("no select option configured for status %q", status)
	}
	return label, nil
}

// pageToRecord decodes the properties the share workflow relies on.
func (r *implRepository) pageToRecord(p pkgNotion.Page) model.Record {
	rec := model.Record{
		ID:  p.ID,
		URL: p.URL,
	}

	if prop, ok := p.Properties[r.props.Status]; ok && prop.Select != nil {
		rec.Status = r.statusFromLabel(prop.Select.Name)
	}
	if prop, ok := p.Properties[r.props.Trigger]; ok && prop.Checkbox != nil {
		rec.ShareRequested = *prop.Checkbox
	}
	if prop, ok := p.Properties[r.props.Project]; ok {
		rec.Projects = model.ProjectRelation{Present: true, Type: prop.Type}
		if prop.Type == pkgNotion.PropertyTypeRelation {
			rec.Projects.IDs = make([]string, 0, len(prop.Relation))
			for _, rel := range prop.Relation {
				rec.Projects.IDs = append(rec.Projects.IDs, rel.ID)
			}
		}
	}
	return rec
}

func (r *implRepository) statusFromLabel(label string) model.ShareStatus {
	for status, l := range r.statuses {
		if l == label {
			return status
		}
	}
	return model.ShareStatus(label)
}

// pageTitle returns the concatenated text of the title property, or UntitledTitle.
func pageTitle(props map[string]pkgNotion.Property) string {
	for _, prop := range props {
		if prop.Type != pkgNotion.PropertyTypeTitle {
			continue
		}
		if title := pkgNotion.PlainText(prop.Title); title != "" {
			return title
		}
	}
	return UntitledTitle
}
