package server

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	labelsv1 "labels-tracker/gen/proto/labels/v1"
	"labels-tracker/internal/common"
	"labels-tracker/internal/export"
	"labels-tracker/internal/generator"
	"labels-tracker/internal/labels"
	"labels-tracker/internal/repository"
	"labels-tracker/internal/utils"
)

type LabelsService struct {
	labelsv1.UnimplementedLabelsServiceServer
	store    *labels.Store
	registry *generator.Registry
	exporter *export.Service
	logger   *zap.Logger
}

func NewLabelsService(store *labels.Store, registry *generator.Registry, exporter *export.Service, logger *zap.Logger) *LabelsService {
	return &LabelsService{
		store:    store,
		registry: registry,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *LabelsService) CreateLabel(ctx context.Context, req *labelsv1.CreateLabelRequest) (*labelsv1.CreateLabelResponse, error) {
	if req.GetOrderId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	module := strings.TrimSpace(req.GetModuleName())
	if module == "" {
		return nil, status.Error(codes.InvalidArgument, "module_name is required")
	}

	id, err := s.store.Create(ctx, labels.CreateRequest{
		OrderID:           int(req.GetOrderId()),
		ModuleName:        module,
		TrackingNumber:    strings.TrimSpace(req.GetTrackingNumber()),
		CandidateFilePath: strings.TrimSpace(req.GetLabelFilePath()),
	})
	if err != nil {
		s.logger.Warn("create label failed", zap.Int64("order_id", req.GetOrderId()), zap.Error(err))
		return nil, toStatus(err)
	}
	return &labelsv1.CreateLabelResponse{Id: int64(id)}, nil
}

func (s *LabelsService) UpdateLabel(ctx context.Context, req *labelsv1.UpdateLabelRequest) (*labelsv1.UpdateLabelResponse, error) {
	if req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	patch := repository.UpdatePatch{
		TrackingNumber: req.TrackingNumber,
		ModuleName:     req.ModuleName,
		StoredFilename: req.StoredFilename,
	}
	ok, err := s.store.Update(ctx, int(req.GetId()), patch)
	if err != nil {
		s.logger.Warn("update label failed", zap.Int64("label_id", req.GetId()), zap.Error(err))
		return nil, toStatus(err)
	}
	return &labelsv1.UpdateLabelResponse{Updated: ok}, nil
}

func (s *LabelsService) DeleteLabel(ctx context.Context, req *labelsv1.DeleteLabelRequest) (*labelsv1.DeleteLabelResponse, error) {
	if req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	res, err := s.store.Delete(ctx, int(req.GetId()))
	if err != nil {
		s.logger.Warn("delete label failed", zap.Int64("label_id", req.GetId()), zap.Error(err))
		return nil, toStatus(err)
	}
	return &labelsv1.DeleteLabelResponse{
		Deleted:     res.Removed,
		FileWarning: res.FileWarning,
	}, nil
}

func (s *LabelsService) BulkDeleteLabels(ctx context.Context, req *labelsv1.BulkDeleteLabelsRequest) (*labelsv1.BulkDeleteLabelsResponse, error) {
	if len(req.GetIds()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one id is required")
	}
	ids := make([]int, 0, len(req.GetIds()))
	for _, id := range req.GetIds() {
		ids = append(ids, int(id))
	}
	deleted, warnings := s.store.BulkDelete(ctx, ids)
	return &labelsv1.BulkDeleteLabelsResponse{
		DeletedCount: int64(deleted),
		Warnings:     warnings,
	}, nil
}

func (s *LabelsService) GetLabel(ctx context.Context, req *labelsv1.GetLabelRequest) (*labelsv1.GetLabelResponse, error) {
	if req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	rec, err := s.store.GetByID(ctx, int(req.GetId()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &labelsv1.GetLabelResponse{Label: utils.ToPBShippingLabel(rec)}, nil
}

func (s *LabelsService) ListLabels(ctx context.Context, req *labelsv1.ListLabelsRequest) (*labelsv1.ListLabelsResponse, error) {
	filter := repository.ListFilter{
		TrackingNumber: strings.TrimSpace(req.GetTrackingNumber()),
		ModuleName:     strings.TrimSpace(req.GetModuleName()),
		Limit:          int(req.GetLimit()),
		Offset:         int(req.GetOffset()),
	}
	if req.Id != nil {
		id := int(req.GetId())
		filter.ID = &id
	}
	if req.OrderId != nil {
		orderID := int(req.GetOrderId())
		filter.OrderID = &orderID
	}
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		filter.CreatedFrom = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		// inclusive end of day
		end := t.AddDate(0, 0, 1)
		filter.CreatedTo = &end
	}

	recs, err := s.store.List(ctx, filter)
	if err != nil {
		s.logger.Warn("list labels failed", zap.Error(err))
		return nil, toStatus(err)
	}

	out := make([]*labelsv1.ShippingLabel, 0, len(recs))
	for _, rec := range recs {
		out = append(out, utils.ToPBShippingLabel(rec))
	}
	return &labelsv1.ListLabelsResponse{Labels: out}, nil
}

func (s *LabelsService) GenerateLabels(ctx context.Context, req *labelsv1.GenerateLabelsRequest) (*labelsv1.GenerateLabelsResponse, error) {
	if len(req.GetOrderIds()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one order id is required")
	}
	orderIDs := make([]int, 0, len(req.GetOrderIds()))
	for _, id := range req.GetOrderIds() {
		orderIDs = append(orderIDs, int(id))
	}
	generated, errs := s.registry.GenerateForOrders(ctx, orderIDs)
	return &labelsv1.GenerateLabelsResponse{
		GeneratedCount: int64(generated),
		Errors:         errs,
	}, nil
}

func (s *LabelsService) ExportLabels(ctx context.Context, req *labelsv1.ExportLabelsRequest) (*labelsv1.ExportLabelsResponse, error) {
	filter := repository.ListFilter{
		ModuleName: strings.TrimSpace(req.GetModuleName()),
	}
	if req.OrderId != nil {
		orderID := int(req.GetOrderId())
		filter.OrderID = &orderID
	}
	xlsx, err := s.exporter.ExportLabelsXLSX(ctx, filter)
	if err != nil {
		s.logger.Warn("export labels failed", zap.Error(err))
		return nil, toStatus(err)
	}
	return &labelsv1.ExportLabelsResponse{Xlsx: xlsx}, nil
}

// toStatus maps the error taxonomy onto gRPC codes so callers can tell
// "fix your input" from "not found" from "try again".
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrNoFile), errors.Is(err, common.ErrFileMissing):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrPathRejected), errors.Is(err, common.ErrInvalidPDF),
		errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrEmptyInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNoLabelFiles):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
