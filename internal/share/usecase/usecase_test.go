package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-share-sync/internal/model"
	"notion-share-sync/internal/share"
	"notion-share-sync/internal/share/repository"
	notionRepo "notion-share-sync/internal/share/repository/notion"
	"notion-share-sync/internal/share/usecase"
	pkgLog "notion-share-sync/pkg/log"
	"notion-share-sync/pkg/notion"
)

var (
	minutes = model.Category{Name: model.CategoryMinutes, DatabaseID: "db-minutes", Heading: "Minutes List"}
	manual  = model.Category{Name: model.CategoryManual, DatabaseID: "db-manual", Heading: "Manual List"}
)

var (
	testProps    = notionRepo.Properties{Status: statusProp, Trigger: triggerProp, Project: projectProp}
	testStatuses = notionRepo.Statuses{
		model.StatusUnshared:    "Unshared",
		model.StatusShared:      "Shared",
		model.StatusShareFailed: "Share Failed",
	}
)

func newUseCase(t *testing.T, f *fakeNotion) share.UseCase {
	t.Helper()
	repo := notionRepo.New(f.start(t), testProps, testStatuses, pkgLog.NewNop())
	return usecase.New(pkgLog.NewNop(), repo, []model.Category{minutes, manual}, "acme")
}

func assertStatus(t *testing.T, f *fakeNotion, recordID, want string) {
	t.Helper()
	req, ok := f.updates[recordID]
	require.True(t, ok, "record %s was not updated", recordID)
	require.NotNil(t, req.Properties[statusProp].Select)
	assert.Equal(t, want, req.Properties[statusProp].Select.Name)
	require.NotNil(t, req.Properties[triggerProp].Checkbox)
	assert.False(t, *req.Properties[triggerProp].Checkbox)
}

func assertLink(t *testing.T, block notion.Block, title, url string) {
	t.Helper()
	require.Equal(t, notion.BlockTypeParagraph, block.Type)
	require.NotNil(t, block.Paragraph)
	require.Len(t, block.Paragraph.RichText, 1)
	run := block.Paragraph.RichText[0]
	assert.Equal(t, title, run.Text.Content)
	require.NotNil(t, run.Text.Link)
	assert.Equal(t, url, run.Text.Link.URL)
}

func TestProcessRecordSharedIntoEveryProject(t *testing.T) {
	f := newFakeNotion()
	f.addRecord(minutes.DatabaseID, recordPage("rec-1", "abc123", "Q1 Report", "proj-1", "proj-2"))
	f.children["proj-1"] = []notion.Block{paragraph("p1-intro", "Intro"), toggleHeading("p1-minutes", "Minutes List")}
	f.children["proj-2"] = []notion.Block{toggleHeading("p2-manual", "Manual List"), toggleHeading("p2-minutes", "Minutes List")}

	out, err := newUseCase(t, f).ProcessDatabase(context.Background(), minutes)
	require.NoError(t, err)

	assert.Equal(t, share.DatabaseOutput{
		Category: "minutes", DatabaseID: "db-minutes", Total: 1, Shared: 1, Links: 2,
	}, out)

	for _, heading := range []string{"p1-minutes", "p2-minutes"} {
		require.Len(t, f.appended[heading], 1)
		assertLink(t, f.appended[heading][0], "Q1 Report", "https://acme.notion.site/abc123")
	}
	assert.Empty(t, f.appended["p2-manual"])
	assertStatus(t, f, "rec-1", "Shared")
}

func TestProcessRecordUntitled(t *testing.T) {
	f := newFakeNotion()
	page := recordPage("rec-1", "abc123", "", "proj-1")
	page.Properties["Name"] = notion.Property{Type: notion.PropertyTypeTitle}
	f.addRecord(minutes.DatabaseID, page)
	f.children["proj-1"] = []notion.Block{toggleHeading("p1-minutes", "Minutes List")}

	_, err := newUseCase(t, f).ProcessDatabase(context.Background(), minutes)
	require.NoError(t, err)

	require.Len(t, f.appended["p1-minutes"], 1)
	assertLink(t, f.appended["p1-minutes"][0], "Untitled", "https://acme.notion.site/abc123")
}

func TestProcessRecordRelationProblems(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(p *notion.Page)
		wantErr error
	}{
		"missing relation": {
			mutate:  func(p *notion.Page) { delete(p.Properties, projectProp) },
			wantErr: share.ErrRelationMissing,
		},
		"not a relation": {
			mutate: func(p *notion.Page) {
				p.Properties[projectProp] = notion.Property{Type: notion.PropertyTypeRichText, RichText: []notion.RichText{{PlainText: "proj-1"}}}
			},
			wantErr: share.ErrRelationType,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			f := newFakeNotion()
			page := recordPage("rec-1", "abc123", "Q1 Report", "proj-1")
			tc.mutate(&page)
			f.addRecord(minutes.DatabaseID, page)
			f.children["proj-1"] = []notion.Block{toggleHeading("p1-minutes", "Minutes List")}
			repo := notionRepo.New(f.start(t), testProps, testStatuses, pkgLog.NewNop())
			uc := usecase.New(pkgLog.NewNop(), repo, []model.Category{minutes, manual}, "acme")

			records, err := repo.ListRecords(context.Background(), repository.ListRecordsOptions{
				DatabaseID: minutes.DatabaseID,
				Status:     model.StatusUnshared,
			})
			require.NoError(t, err)
			require.Len(t, records, 1)

			out := uc.ProcessRecord(context.Background(), records[0], minutes)

			assert.Equal(t, model.StatusShareFailed, out.Status)
			assert.ErrorIs(t, out.Err, tc.wantErr)
			var shareErr *share.Error
			require.True(t, errors.As(out.Err, &shareErr))
			assert.Equal(t, share.KindStructure, shareErr.Kind)
			assert.Zero(t, out.Links)
			assert.Empty(t, f.appended)
			assertStatus(t, f, "rec-1", "Share Failed")
		})
	}
}

func TestProcessRecordHeadingMissingInLaterProject(t *testing.T) {
	f := newFakeNotion()
	f.addRecord(minutes.DatabaseID, recordPage("rec-1", "abc123", "Q1 Report", "proj-1", "proj-2", "proj-3"))
	f.children["proj-1"] = []notion.Block{toggleHeading("p1-minutes", "Minutes List")}
	f.children["proj-2"] = []notion.Block{toggleHeading("p2-manual", "Manual List")}
	f.children["proj-3"] = []notion.Block{toggleHeading("p3-minutes", "Minutes List")}

	uc := newUseCase(t, f)
	rec := model.Record{
		ID:       "rec-1",
		Projects: model.ProjectRelation{Present: true, Type: "relation", IDs: []string{"proj-1", "proj-2", "proj-3"}},
	}

	out := uc.ProcessRecord(context.Background(), rec, minutes)

	assert.Equal(t, model.StatusShareFailed, out.Status)
	assert.Equal(t, 1, out.Links)
	var shareErr *share.Error
	require.True(t, errors.As(out.Err, &shareErr))
	assert.Equal(t, share.KindStructure, shareErr.Kind)
	assert.Equal(t, "proj-2", shareErr.ProjectID)
	assert.ErrorIs(t, out.Err, share.ErrHeadingNotFound)

	// the link appended before the failure persists; later projects are untouched
	require.Len(t, f.appended["p1-minutes"], 1)
	assert.Empty(t, f.appended["p3-minutes"])
	assert.Len(t, f.appended, 1)
	assertStatus(t, f, "rec-1", "Share Failed")

	for _, r := range f.requests {
		assert.NotEqual(t, "GET /v1/blocks/proj-3/children", r)
	}
}

func TestProcessRecordHeadingOnlyMatchesDirectToggleHeadings(t *testing.T) {
	f := newFakeNotion()
	f.addRecord(minutes.DatabaseID, recordPage("rec-1", "abc123", "Q1 Report", "proj-1"))
	flat := toggleHeading("flat", "Minutes List")
	flat.Heading2.IsToggleable = false
	smaller := notion.Block{Type: notion.BlockTypeHeading3, ID: "h3", Heading3: &notion.Heading{
		IsToggleable: true, RichText: []notion.RichText{{PlainText: "Minutes List"}},
	}}
	f.children["proj-1"] = []notion.Block{
		paragraph("para", "Minutes List"),
		flat,
		smaller,
		{Object: "block", ID: "column", Type: "column_list", HasChildren: true},
	}
	f.children["column"] = []notion.Block{toggleHeading("nested", "Minutes List")}

	out, err := newUseCase(t, f).ProcessDatabase(context.Background(), minutes)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Failed)
	assert.Empty(t, f.appended)
	assertStatus(t, f, "rec-1", "Share Failed")
}

func TestProcessRecordAPIErrors(t *testing.T) {
	t.Run("record detail not found", func(t *testing.T) {
		f := newFakeNotion()
		uc := newUseCase(t, f)
		rec := model.Record{ID: "ghost", Projects: model.ProjectRelation{Present: true, Type: "relation", IDs: []string{"proj-1"}}}

		out := uc.ProcessRecord(context.Background(), rec, minutes)

		assert.Equal(t, model.StatusShareFailed, out.Status)
		var shareErr *share.Error
		require.True(t, errors.As(out.Err, &shareErr))
		assert.Equal(t, share.KindAPI, shareErr.Kind)
		assert.Equal(t, "ghost", shareErr.RecordID)
		assert.Equal(t, "db-minutes", shareErr.DatabaseID)
		assert.Contains(t, shareErr.Payload, "object_not_found")
		assertStatus(t, f, "ghost", "Share Failed")
	})

	t.Run("project page not found", func(t *testing.T) {
		f := newFakeNotion()
		f.addRecord(minutes.DatabaseID, recordPage("rec-1", "abc123", "Q1 Report", "proj-missing"))

		out, err := newUseCase(t, f).ProcessDatabase(context.Background(), minutes)
		require.NoError(t, err)
		assert.Equal(t, 1, out.Failed)
		assertStatus(t, f, "rec-1", "Share Failed")
	})
}

func TestStatusUpdateFailureIsNotPropagated(t *testing.T) {
	f := newFakeNotion()
	f.failUpdate = true
	f.addRecord(minutes.DatabaseID, recordPage("rec-1", "abc123", "Q1 Report", "proj-1"))
	f.children["proj-1"] = []notion.Block{toggleHeading("p1-minutes", "Minutes List")}

	out, err := newUseCase(t, f).ProcessDatabase(context.Background(), minutes)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Shared)
	assert.Len(t, f.appended["p1-minutes"], 1)
	assert.Empty(t, f.updates)
}

func TestProcessDatabasePaginationCollectsBeforeProcessing(t *testing.T) {
	f := newFakeNotion()
	for i := 0; i < 250; i++ {
		f.addRecord(minutes.DatabaseID, recordPage(fmt.Sprintf("rec-%03d", i), fmt.Sprintf("slug%03d", i), "Doc", "proj-1"))
	}
	// a shared record must not be picked up by the filter
	done := recordPage("rec-done", "done", "Done", "proj-1")
	done.Properties[statusProp] = notion.Property{Type: notion.PropertyTypeSelect, Select: &notion.SelectOption{Name: "Shared"}}
	f.addRecord(minutes.DatabaseID, done)
	f.children["proj-1"] = []notion.Block{toggleHeading("p1-minutes", "Minutes List")}

	out, err := newUseCase(t, f).ProcessDatabase(context.Background(), minutes)
	require.NoError(t, err)

	assert.Equal(t, 250, out.Total)
	assert.Equal(t, 250, out.Shared)
	assert.Len(t, f.appended["p1-minutes"], 250)
	assert.Len(t, f.updates, 250)
	assert.NotContains(t, f.updates, "rec-done")

	var queries int
	for i, r := range f.requests {
		if strings.HasPrefix(r, "POST /v1/databases/") {
			queries++
			continue
		}
		assert.Equal(t, 3, queries, "request %d (%s) issued before pagination finished", i, r)
		break
	}
	assert.Equal(t, 3, queries)

	// records are processed in list order
	first := f.appended["p1-minutes"][0].Paragraph.RichText[0].Text.Link.URL
	last := f.appended["p1-minutes"][249].Paragraph.RichText[0].Text.Link.URL
	assert.Equal(t, "https://acme.notion.site/slug000", first)
	assert.Equal(t, "https://acme.notion.site/slug249", last)
}

func TestRun(t *testing.T) {
	t.Run("both categories in order", func(t *testing.T) {
		f := newFakeNotion()
		f.addRecord(minutes.DatabaseID, recordPage("min-1", "m1", "Weekly sync", "proj-1"))
		f.addRecord(manual.DatabaseID, recordPage("man-1", "h1", "Onboarding", "proj-1"))
		f.children["proj-1"] = []notion.Block{toggleHeading("p1-minutes", "Minutes List"), toggleHeading("p1-manual", "Manual List")}

		out, err := newUseCase(t, f).Run(context.Background(), share.RunInput{})
		require.NoError(t, err)

		require.Len(t, out.Databases, 2)
		assert.Equal(t, "minutes", out.Databases[0].Category)
		assert.Equal(t, "manual", out.Databases[1].Category)
		assert.NotEmpty(t, out.TraceID)
		assert.False(t, out.ScanFailed())

		assertLink(t, f.appended["p1-minutes"][0], "Weekly sync", "https://acme.notion.site/m1")
		assertLink(t, f.appended["p1-manual"][0], "Onboarding", "https://acme.notion.site/h1")

		var firstManual, lastMinutes int
		for i, r := range f.requests {
			if strings.Contains(r, "min-1") {
				lastMinutes = i
			}
			if firstManual == 0 && r == "POST /v1/databases/db-manual/query" {
				firstManual = i
			}
		}
		assert.Less(t, lastMinutes, firstManual)
	})

	t.Run("scan failure does not stop the other category", func(t *testing.T) {
		f := newFakeNotion()
		f.failQuery[minutes.DatabaseID] = true
		f.addRecord(minutes.DatabaseID, recordPage("min-1", "m1", "Weekly sync", "proj-1"))
		f.addRecord(manual.DatabaseID, recordPage("man-1", "h1", "Onboarding", "proj-1"))
		f.children["proj-1"] = []notion.Block{toggleHeading("p1-minutes", "Minutes List"), toggleHeading("p1-manual", "Manual List")}

		out, err := newUseCase(t, f).Run(context.Background(), share.RunInput{})
		require.NoError(t, err)

		require.Len(t, out.Databases, 2)
		assert.True(t, out.ScanFailed())
		var shareErr *share.Error
		require.True(t, errors.As(out.Databases[0].Err, &shareErr))
		assert.Equal(t, "db-minutes", shareErr.DatabaseID)
		assert.Contains(t, shareErr.Payload, "query exploded")

		assert.Equal(t, 1, out.Databases[1].Shared)
		assert.NotContains(t, f.updates, "min-1")
		assertStatus(t, f, "man-1", "Shared")
	})

	t.Run("selected category", func(t *testing.T) {
		f := newFakeNotion()
		f.addRecord(manual.DatabaseID, recordPage("man-1", "h1", "Onboarding", "proj-1"))
		f.children["proj-1"] = []notion.Block{toggleHeading("p1-manual", "Manual List")}

		out, err := newUseCase(t, f).Run(context.Background(), share.RunInput{Categories: []string{"manual"}})
		require.NoError(t, err)
		require.Len(t, out.Databases, 1)
		assert.Equal(t, "manual", out.Databases[0].Category)
		for _, r := range f.requests {
			assert.NotContains(t, r, "db-minutes")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := newUseCase(t, newFakeNotion()).Run(context.Background(), share.RunInput{Categories: []string{"memos"}})
		assert.ErrorIs(t, err, share.ErrUnknownCategory)
	})

	t.Run("keeps caller trace id", func(t *testing.T) {
		ctx := pkgLog.WithTraceID(context.Background(), "trace-42")
		out, err := newUseCase(t, newFakeNotion()).Run(ctx, share.RunInput{})
		require.NoError(t, err)
		assert.Equal(t, "trace-42", out.TraceID)
	})
}
