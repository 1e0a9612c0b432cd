package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"

	"labels-tracker/gen/ent"
	"labels-tracker/internal/labels"
	"labels-tracker/internal/pdf"
	"labels-tracker/internal/repository"
	"labels-tracker/internal/storage"
)

// memRepo is a minimal in-memory LabelRepository for handler tests.
type memRepo struct {
	rows   map[int]*ent.ShippingLabel
	nextID int
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[int]*ent.ShippingLabel), nextID: 1}
}

func (m *memRepo) Create(_ context.Context, orderID int, moduleName string, trackingNumber, storedFilename *string) (*ent.ShippingLabel, error) {
	row := &ent.ShippingLabel{
		ID:             m.nextID,
		OrderID:        orderID,
		ModuleName:     moduleName,
		TrackingNumber: trackingNumber,
		StoredFilename: storedFilename,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	m.rows[row.ID] = row
	m.nextID++
	return row, nil
}

func (m *memRepo) GetByID(_ context.Context, id int) (*ent.ShippingLabel, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (m *memRepo) Update(_ context.Context, id int, patch repository.UpdatePatch) (bool, error) {
	row, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	if patch.TrackingNumber != nil {
		row.TrackingNumber = patch.TrackingNumber
	}
	if patch.ModuleName != nil {
		row.ModuleName = *patch.ModuleName
	}
	if patch.StoredFilename != nil {
		row.StoredFilename = patch.StoredFilename
	}
	return true, nil
}

func (m *memRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memRepo) ListByOrder(_ context.Context, orderID int) ([]*ent.ShippingLabel, error) {
	var out []*ent.ShippingLabel
	for id := 1; id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok && row.OrderID == orderID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memRepo) ListByTracking(context.Context, string) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (m *memRepo) ListByModule(context.Context, string) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func (m *memRepo) List(context.Context, repository.ListFilter) ([]*ent.ShippingLabel, error) {
	return nil, nil
}

func newTestServer(t *testing.T) (*HTTPServer, *labels.Store) {
	t.Helper()
	resolver, err := storage.NewResolver(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store := labels.NewStore(newMemRepo(), resolver, storage.NewValidator(0), nil)
	printer := labels.NewPrinter(store, pdf.NewMerger(nil), nil)
	srv, err := NewHTTPServer(store, printer, nil)
	if err != nil {
		t.Fatalf("NewHTTPServer: %v", err)
	}
	return srv, store
}

func seedLabel(t *testing.T, store *labels.Store, orderID int) int {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(40, 10, fmt.Sprintf("order %d", orderID))
	path := filepath.Join(t.TempDir(), "label.pdf")
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}
	id, err := store.Create(context.Background(), labels.CreateRequest{
		OrderID:           orderID,
		ModuleName:        "carrier_dhl",
		CandidateFilePath: path,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestDownloadLabel(t *testing.T) {
	srv, store := newTestServer(t)
	id := seedLabel(t, store, 1)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/labels/%d/download", id), nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, fmt.Sprintf("label_%d.pdf", id)) {
		t.Fatalf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}
}

func TestDownloadLabelNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels/404/download", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("missing error message")
	}
}

func TestDownloadLabelBadID(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels/0/download", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBulkDownloadAttachment(t *testing.T) {
	srv, store := newTestServer(t)
	id1 := seedLabel(t, store, 1)
	id2 := seedLabel(t, store, 2)

	payload := fmt.Sprintf(`{"label_ids":[%d,%d]}`, id1, id2)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/labels/bulk-download", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "shipping_labels_merged_") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}
}

func TestBulkPrintContract(t *testing.T) {
	srv, store := newTestServer(t)
	id1 := seedLabel(t, store, 1)
	id2 := seedLabel(t, store, 2)

	payload := fmt.Sprintf(`{"label_ids":[%d,%d],"mode":"print"}`, id1, id2)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/labels/bulk-print", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		PDF         string   `json:"pdf"`
		Filename    string   `json:"filename"`
		LabelsCount int      `json:"labelsCount"`
		Errors      []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.LabelsCount != 2 {
		t.Fatalf("labelsCount = %d, want 2", resp.LabelsCount)
	}
	if !strings.HasPrefix(resp.Filename, "shipping_labels_") {
		t.Fatalf("filename = %q", resp.Filename)
	}
	if resp.Errors == nil {
		t.Fatal("errors must be an empty array, not null")
	}
	raw, err := base64.StdEncoding.DecodeString(resp.PDF)
	if err != nil {
		t.Fatalf("pdf field is not base64: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatal("decoded payload is not a PDF")
	}
}

func TestBulkPrintSingleLabelKeepsName(t *testing.T) {
	srv, store := newTestServer(t)
	id := seedLabel(t, store, 1)

	payload := fmt.Sprintf(`{"label_ids":[%d]}`, id)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/labels/bulk-print", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp bulkPrintResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Filename != fmt.Sprintf("label_%d.pdf", id) {
		t.Fatalf("filename = %q", resp.Filename)
	}
	if resp.LabelsCount != 1 {
		t.Fatalf("labelsCount = %d, want 1", resp.LabelsCount)
	}
}

func TestBulkPrintEmptySelection(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/labels/bulk-print", strings.NewReader(`{"label_ids":[]}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "You must select at least one item.") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestBulkPrintRejectsMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"not json", "label_ids=1"},
		{"wrong type", `{"label_ids":["1"]}`},
		{"unknown field", `{"label_ids":[1],"extra":true}`},
		{"negative id", `{"label_ids":[-1]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/labels/bulk-print", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestBulkPrintNoUsableFiles(t *testing.T) {
	srv, store := newTestServer(t)
	id, err := store.Create(context.Background(), labels.CreateRequest{OrderID: 1, ModuleName: "carrier_dhl"})
	if err != nil {
		t.Fatal(err)
	}

	payload := fmt.Sprintf(`{"label_ids":[%d]}`, id)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/labels/bulk-print", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels/1/download", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("missing X-Request-Id header")
	}
}
