package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"labels-tracker/internal/common"
	"labels-tracker/internal/labels"
)

// bulkRequestSchema pins the observed AJAX contract: a set of ids plus a
// mode flag. Unknown fields are rejected up front instead of being ignored.
const bulkRequestSchema = `{
  "type": "object",
  "properties": {
    "label_ids": {"type": "array", "items": {"type": "integer", "minimum": 1}},
    "order_ids": {"type": "array", "items": {"type": "integer", "minimum": 1}},
    "mode": {"type": "string"}
  },
  "additionalProperties": false
}`

type bulkRequest struct {
	LabelIDs []int  `json:"label_ids"`
	OrderIDs []int  `json:"order_ids"`
	Mode     string `json:"mode"`
}

type bulkPrintResponse struct {
	PDF         string   `json:"pdf"`
	Filename    string   `json:"filename"`
	LabelsCount int      `json:"labelsCount"`
	Errors      []string `json:"errors"`
}

// HTTPServer is the file delivery boundary: attachments and the bulk-print
// AJAX contract live here, while record CRUD stays on gRPC.
type HTTPServer struct {
	store   *labels.Store
	printer *labels.Printer
	schema  *jsonschema.Schema
	logger  *slog.Logger
}

func NewHTTPServer(store *labels.Store, printer *labels.Printer, logger *slog.Logger) (*HTTPServer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bulk_request.json", strings.NewReader(bulkRequestSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("bulk_request.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &HTTPServer{
		store:   store,
		printer: printer,
		schema:  schema,
		logger:  logger,
	}, nil
}

// Router wires all delivery routes with CORS and request-id logging.
func (s *HTTPServer) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"labels-tracker"}`))
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.requestIDMiddleware)
	api.HandleFunc("/labels/{id}/download", s.DownloadLabel).Methods("GET")
	api.HandleFunc("/labels/bulk-download", s.BulkDownload).Methods("POST")
	api.HandleFunc("/labels/bulk-print", s.BulkPrint).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
	})

	return c.Handler(router)
}

func (s *HTTPServer) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := common.WithRequestID(r.Context(), reqID)
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DownloadLabel streams a single label file as an attachment.
func (s *HTTPServer) DownloadLabel(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	path, err := s.store.ResolveFileForDownload(r.Context(), id)
	if err != nil {
		s.writeMappedError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	// Delete racing this read is a known best-effort case; a failed stream
	// here must not affect any other record's file.
	http.ServeFile(w, r, path)
}

// BulkDownload merges the selected labels (and orders' labels) into one
// attachment.
func (s *HTTPServer) BulkDownload(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBulkRequest(w, r)
	if !ok {
		return
	}

	doc, err := s.printer.BulkDownload(r.Context(), req.LabelIDs, req.OrderIDs)
	if err != nil {
		s.writeMappedError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.PDF)
}

// BulkPrint answers the AJAX print contract with a base64 document.
func (s *HTTPServer) BulkPrint(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBulkRequest(w, r)
	if !ok {
		return
	}

	doc, err := s.printer.BulkPrint(r.Context(), req.LabelIDs)
	if err != nil {
		s.writeMappedError(w, r, err)
		return
	}

	resp := bulkPrintResponse{
		PDF:         base64.StdEncoding.EncodeToString(doc.PDF),
		Filename:    doc.Filename,
		LabelsCount: doc.LabelsCount,
		Errors:      doc.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("writing bulk print response", "error", err)
	}
}

func (s *HTTPServer) decodeBulkRequest(w http.ResponseWriter, r *http.Request) (*bulkRequest, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read request body")
		return nil, false
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON")
		return nil, false
	}
	if err := s.schema.Validate(raw); err != nil {
		writeError(w, http.StatusBadRequest, "request does not match the expected shape")
		return nil, false
	}

	var req bulkRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON")
		return nil, false
	}
	return &req, true
}

func (s *HTTPServer) writeMappedError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := common.RequestIDFromContext(r.Context())
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "You must select at least one item.")
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "Cannot find shipping label.")
	case errors.Is(err, common.ErrNoFile):
		writeError(w, http.StatusNotFound, "No file associated with this shipping label.")
	case errors.Is(err, common.ErrFileMissing):
		writeError(w, http.StatusNotFound, "Label file not found.")
	case errors.Is(err, common.ErrNoLabelFiles):
		writeError(w, http.StatusNotFound, "No valid label files found for the selected items.")
	case errors.Is(err, common.ErrPathRejected), errors.Is(err, common.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid request.")
	case errors.Is(err, common.ErrCorruptSource):
		s.logger.Error("merge failed", "request_id", reqID, "error", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while merging PDFs.")
	default:
		s.logger.Error("request failed", "request_id", reqID, "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
