// Package labels owns the mapping between shipping-label records and the
// physical PDF files that back them.
package labels

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"labels-tracker/constants"
	"labels-tracker/gen/ent"
	"labels-tracker/internal/common"
	"labels-tracker/internal/entity"
	"labels-tracker/internal/repository"
	"labels-tracker/internal/storage"
	"labels-tracker/internal/utils"
)

// Store coordinates the repository, the path resolver and the PDF validator.
// It is the sole owner of the file lifecycle: files enter through Create or
// AttachFile and leave through Delete.
type Store struct {
	repo      repository.LabelRepository
	resolver  *storage.Resolver
	validator *storage.Validator
	logger    *slog.Logger
}

func NewStore(repo repository.LabelRepository, resolver *storage.Resolver, validator *storage.Validator, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		repo:      repo,
		resolver:  resolver,
		validator: validator,
		logger:    logger,
	}
}

// CreateRequest carries the fields a label-producing collaborator reports.
// CandidateFilePath, when set, points at the PDF the collaborator generated;
// its bytes are copied into the labels root under an id-derived name.
type CreateRequest struct {
	OrderID           int
	ModuleName        string
	TrackingNumber    string
	CandidateFilePath string
}

// Create validates and persists a new label record. On any validation
// failure nothing is persisted; on a file-placement failure the freshly
// inserted row is removed again so no partial state remains.
func (s *Store) Create(ctx context.Context, req CreateRequest) (int, error) {
	v := common.NewValidator()
	v.Field("order_id", req.OrderID, common.UnsignedID)
	v.Field("module_name", req.ModuleName, common.Required, common.ModuleName)
	v.Field("module_name", req.ModuleName, maxLen(constants.MaxModuleNameLen))
	v.Field("tracking_number", req.TrackingNumber, maxLen(constants.MaxTrackingNumberLen))
	if err := v.Error(); err != nil {
		return 0, common.NewAppError("VALIDATION_ERROR", err.Error(), common.ErrInvalidInput)
	}

	var candidate string
	if req.CandidateFilePath != "" {
		abs, err := filepath.Abs(req.CandidateFilePath)
		if err != nil {
			return 0, common.NewAppError("VALIDATION_ERROR", "resolving candidate path", common.ErrInvalidInput)
		}
		if err := s.validator.Validate(abs); err != nil {
			s.logger.Warn("label file rejected", "order_id", req.OrderID, "path", abs, "error", err)
			return 0, err
		}
		candidate = abs
	}

	var tracking *string
	if req.TrackingNumber != "" {
		tracking = &req.TrackingNumber
	}

	row, err := s.repo.Create(ctx, req.OrderID, req.ModuleName, tracking, nil)
	if err != nil {
		return 0, common.NewAppError("STORAGE_ERROR", "creating label record", common.ErrStorageIO)
	}

	if candidate != "" {
		name := constants.StoredFilename(row.ID)
		if _, err := s.resolver.Place(candidate, name); err != nil {
			s.rollbackCreate(ctx, row.ID)
			return 0, err
		}
		ok, err := s.repo.Update(ctx, row.ID, repository.UpdatePatch{StoredFilename: &name})
		if err != nil || !ok {
			if rmErr := s.resolver.Remove(name); rmErr != nil {
				s.logger.Warn("orphaned label file left behind", "label_id", row.ID, "error", rmErr)
			}
			s.rollbackCreate(ctx, row.ID)
			return 0, common.NewAppError("STORAGE_ERROR", "attaching label file", common.ErrStorageIO)
		}
	}

	s.logger.Info("label created",
		"label_id", row.ID,
		"order_id", req.OrderID,
		"module_name", req.ModuleName,
		"has_file", candidate != "",
	)
	return row.ID, nil
}

func (s *Store) rollbackCreate(ctx context.Context, id int) {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to roll back label record", "label_id", id, "error", err)
	}
}

// Update applies an allow-listed patch to an existing record. A stored
// filename in the patch must pass the resolver before it is accepted.
// Returns false when no record with id exists.
func (s *Store) Update(ctx context.Context, id int, patch repository.UpdatePatch) (bool, error) {
	if patch.IsEmpty() {
		return false, common.NewAppError("VALIDATION_ERROR", "empty update patch", common.ErrInvalidInput)
	}
	if patch.ModuleName != nil {
		v := common.NewValidator()
		v.Field("module_name", *patch.ModuleName, common.Required, common.ModuleName)
		v.Field("module_name", *patch.ModuleName, maxLen(constants.MaxModuleNameLen))
		if err := v.Error(); err != nil {
			return false, common.NewAppError("VALIDATION_ERROR", err.Error(), common.ErrInvalidInput)
		}
	}
	if patch.TrackingNumber != nil {
		if e := common.MaxLength("tracking_number", *patch.TrackingNumber, constants.MaxTrackingNumberLen); e != nil {
			return false, common.NewAppError("VALIDATION_ERROR", e.Error(), common.ErrInvalidInput)
		}
	}
	if patch.StoredFilename != nil {
		if _, err := s.resolver.Resolve(*patch.StoredFilename); err != nil {
			return false, err
		}
	}

	ok, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return false, common.NewAppError("STORAGE_ERROR", "updating label record", common.ErrStorageIO)
	}
	return ok, nil
}

// DeleteResult reports a delete outcome. FileWarning is set when the backing
// file could not be removed; the record row is removed regardless.
type DeleteResult struct {
	Removed     bool
	FileWarning string
}

// Delete removes a record and its backing file. A missing or stubborn file
// downgrades to a warning and never blocks row removal.
func (s *Store) Delete(ctx context.Context, id int) (DeleteResult, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return DeleteResult{}, nil
		}
		return DeleteResult{}, common.NewAppError("STORAGE_ERROR", "loading label record", common.ErrStorageIO)
	}

	var warning string
	if row.StoredFilename != nil && *row.StoredFilename != "" {
		if err := s.resolver.Remove(*row.StoredFilename); err != nil {
			if os.IsNotExist(err) {
				warning = fmt.Sprintf("label file %q already missing", *row.StoredFilename)
			} else {
				warning = fmt.Sprintf("could not remove label file %q: %v", *row.StoredFilename, err)
			}
			s.logger.Warn("label file cleanup failed", "label_id", id, "warning", warning)
		}
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return DeleteResult{FileWarning: warning}, common.NewAppError("STORAGE_ERROR", "deleting label record", common.ErrStorageIO)
	}
	if removed {
		s.logger.Info("label deleted", "label_id", id)
	}
	return DeleteResult{Removed: removed, FileWarning: warning}, nil
}

// BulkDelete deletes each id independently; one failure does not abort the
// rest. Returns the number of record rows actually removed plus any
// per-label warnings.
func (s *Store) BulkDelete(ctx context.Context, ids []int) (int, []string) {
	deleted := 0
	var warnings []string
	for _, id := range ids {
		res, err := s.Delete(ctx, id)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("shipping label %d: %v", id, err))
			continue
		}
		if res.Removed {
			deleted++
		}
		if res.FileWarning != "" {
			warnings = append(warnings, fmt.Sprintf("shipping label %d: %s", id, res.FileWarning))
		}
	}
	return deleted, warnings
}

// GetByID fetches one record, ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id int) (*entity.ShippingLabel, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewAppError("STORAGE_ERROR", "loading label record", common.ErrStorageIO)
	}
	return utils.ToShippingLabel(row), nil
}

func (s *Store) ListByOrder(ctx context.Context, orderID int) ([]*entity.ShippingLabel, error) {
	rows, err := s.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "listing labels by order", common.ErrStorageIO)
	}
	return utils.ToShippingLabels(rows), nil
}

func (s *Store) ListByTracking(ctx context.Context, trackingNumber string) ([]*entity.ShippingLabel, error) {
	rows, err := s.repo.ListByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "listing labels by tracking number", common.ErrStorageIO)
	}
	return utils.ToShippingLabels(rows), nil
}

func (s *Store) ListByModule(ctx context.Context, moduleName string) ([]*entity.ShippingLabel, error) {
	rows, err := s.repo.ListByModule(ctx, moduleName)
	if err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "listing labels by module", common.ErrStorageIO)
	}
	return utils.ToShippingLabels(rows), nil
}

func (s *Store) List(ctx context.Context, filter repository.ListFilter) ([]*entity.ShippingLabel, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "listing labels", common.ErrStorageIO)
	}
	return utils.ToShippingLabels(rows), nil
}

// ResolveFileForDownload is the only sanctioned way to turn a record into a
// deliverable path. Distinct failures: ErrNotFound (no record), ErrNoFile
// (record has no file), ErrFileMissing (file gone from disk), ErrPathRejected.
func (s *Store) ResolveFileForDownload(ctx context.Context, id int) (string, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", common.ErrNotFound
		}
		return "", common.NewAppError("STORAGE_ERROR", "loading label record", common.ErrStorageIO)
	}
	if row.StoredFilename == nil || *row.StoredFilename == "" {
		return "", common.ErrNoFile
	}
	full, err := s.resolver.Resolve(*row.StoredFilename)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", common.ErrFileMissing
	}
	return full, nil
}

// CollectFiles resolves download paths for a set of label ids, in order.
// Labels that cannot be resolved end up in the failed list instead of
// aborting the whole batch.
func (s *Store) CollectFiles(ctx context.Context, ids []int) (files []string, failed []int) {
	for _, id := range ids {
		path, err := s.ResolveFileForDownload(ctx, id)
		if err != nil {
			failed = append(failed, id)
			continue
		}
		files = append(files, path)
	}
	return files, failed
}

// LabelIDsForOrders flattens the labels of the given orders into ids.
func (s *Store) LabelIDsForOrders(ctx context.Context, orderIDs []int) ([]int, error) {
	var ids []int
	for _, orderID := range orderIDs {
		rows, err := s.repo.ListByOrder(ctx, orderID)
		if err != nil {
			return nil, common.NewAppError("STORAGE_ERROR", "listing labels by order", common.ErrStorageIO)
		}
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}

func maxLen(max int) common.ValidationRule {
	return func(fieldName string, value interface{}) *common.ValidationError {
		return common.MaxLength(fieldName, value, max)
	}
}
