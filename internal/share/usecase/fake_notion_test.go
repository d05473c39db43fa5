package usecase_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"notion-share-sync/pkg/notion"
)

const (
	statusProp  = "Share Status"
	triggerProp = "Share"
	projectProp = "Project"
)

// fakeNotion is an in-memory stand-in for the Notion REST API.
type fakeNotion struct {
	mu sync.Mutex

	databases map[string][]notion.Page
	pages     map[string]notion.Page
	children  map[string][]notion.Block

	failQuery  map[string]bool
	failUpdate bool

	appended map[string][]notion.Block
	updates  map[string]notion.UpdatePageRequest
	requests []string
}

func newFakeNotion() *fakeNotion {
	return &fakeNotion{
		databases: map[string][]notion.Page{},
		pages:     map[string]notion.Page{},
		children:  map[string][]notion.Block{},
		failQuery: map[string]bool{},
		appended:  map[string][]notion.Block{},
		updates:   map[string]notion.UpdatePageRequest{},
	}
}

func (f *fakeNotion) start(t *testing.T) *notion.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/databases/{id}/query", f.queryDatabase)
	mux.HandleFunc("GET /v1/pages/{id}", f.getPage)
	mux.HandleFunc("PATCH /v1/pages/{id}", f.updatePage)
	mux.HandleFunc("GET /v1/blocks/{id}/children", f.listChildren)
	mux.HandleFunc("PATCH /v1/blocks/{id}/children", f.appendChildren)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	client, err := notion.New("test-token")
	if err != nil {
		t.Fatalf("notion.New: %v", err)
	}
	return client.WithBaseURL(ts.URL)
}

// addRecord registers a record in a database and its page detail.
func (f *fakeNotion) addRecord(databaseID string, page notion.Page) {
	f.databases[databaseID] = append(f.databases[databaseID], page)
	f.pages[page.ID] = page
}

func (f *fakeNotion) queryDatabase(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	if f.failQuery[id] {
		writeError(w, http.StatusInternalServerError, "internal_server_error", "query exploded")
		return
	}

	var req notion.QueryDatabaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	var matching []notion.Page
	for _, p := range f.databases[id] {
		if req.Filter == nil {
			matching = append(matching, p)
			continue
		}
		if prop, ok := p.Properties[req.Filter.Property]; ok && prop.Select != nil && prop.Select.Name == req.Filter.Select.Equals {
			matching = append(matching, p)
		}
	}

	offset := 0
	if req.StartCursor != "" {
		offset, _ = strconv.Atoi(req.StartCursor)
	}
	size := req.PageSize
	if size <= 0 || size > notion.MaxPageSize {
		size = notion.MaxPageSize
	}
	end := min(offset+size, len(matching))

	resp := notion.QueryDatabaseResponse{Object: "list", Results: matching[offset:end]}
	if end < len(matching) {
		next := strconv.Itoa(end)
		resp.NextCursor = &next
		resp.HasMore = true
	}
	writeJSON(w, resp)
}

func (f *fakeNotion) getPage(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	page, ok := f.pages[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "object_not_found", "Could not find page")
		return
	}
	writeJSON(w, page)
}

func (f *fakeNotion) updatePage(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failUpdate {
		writeError(w, http.StatusConflict, "conflict_error", "update conflict")
		return
	}

	var req notion.UpdatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	id := r.PathValue("id")
	f.updates[id] = req
	writeJSON(w, notion.Page{Object: "page", ID: id})
}

func (f *fakeNotion) listChildren(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	blocks, ok := f.children[id]
	if !ok {
		writeError(w, http.StatusNotFound, "object_not_found", "Could not find block")
		return
	}
	writeJSON(w, notion.BlockList{Object: "list", Results: blocks})
}

func (f *fakeNotion) appendChildren(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req notion.AppendBlockChildrenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	id := r.PathValue("id")
	f.appended[id] = append(f.appended[id], req.Children...)
	writeJSON(w, notion.BlockList{Object: "list", Results: req.Children})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(notion.ErrorResponse{Object: "error", Status: status, Code: code, Message: message})
}

// ── Fixtures ───────────────────────────────────────────────────────────────

func recordPage(id, slug, title string, projectIDs ...string) notion.Page {
	checked := true
	relations := make([]notion.Relation, 0, len(projectIDs))
	for _, pid := range projectIDs {
		relations = append(relations, notion.Relation{ID: pid})
	}
	return notion.Page{
		Object: "page",
		ID:     id,
		URL:    "https://www.notion.so/" + slug,
		Properties: map[string]notion.Property{
			"Name":      {Type: notion.PropertyTypeTitle, Title: []notion.RichText{{Type: "text", PlainText: title}}},
			statusProp:  {Type: notion.PropertyTypeSelect, Select: &notion.SelectOption{Name: "Unshared"}},
			triggerProp: {Type: notion.PropertyTypeCheckbox, Checkbox: &checked},
			projectProp: {Type: notion.PropertyTypeRelation, Relation: relations},
		},
	}
}

func toggleHeading(id, text string) notion.Block {
	return notion.Block{
		Object:      "block",
		ID:          id,
		Type:        notion.BlockTypeHeading2,
		HasChildren: true,
		Heading2: &notion.Heading{
			IsToggleable: true,
			RichText:     []notion.RichText{{Type: "text", PlainText: text}},
		},
	}
}

func paragraph(id, text string) notion.Block {
	return notion.Block{
		Object:    "block",
		ID:        id,
		Type:      notion.BlockTypeParagraph,
		Paragraph: &notion.Paragraph{RichText: []notion.RichText{{Type: "text", PlainText: text}}},
	}
}
