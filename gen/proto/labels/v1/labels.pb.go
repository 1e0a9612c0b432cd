// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/labels/v1/labels.proto

package labelsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ShippingLabel struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	OrderId        int64                  `protobuf:"varint,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	TrackingNumber string                 `protobuf:"bytes,3,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	ModuleName     string                 `protobuf:"bytes,4,opt,name=module_name,json=moduleName,proto3" json:"module_name,omitempty"`
	StoredFilename string                 `protobuf:"bytes,5,opt,name=stored_filename,json=storedFilename,proto3" json:"stored_filename,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ShippingLabel) Reset() {
	*x = ShippingLabel{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShippingLabel) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShippingLabel) ProtoMessage() {}

func (x *ShippingLabel) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShippingLabel.ProtoReflect.Descriptor instead.
func (*ShippingLabel) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{0}
}

func (x *ShippingLabel) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *ShippingLabel) GetOrderId() int64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

func (x *ShippingLabel) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

func (x *ShippingLabel) GetModuleName() string {
	if x != nil {
		return x.ModuleName
	}
	return ""
}

func (x *ShippingLabel) GetStoredFilename() string {
	if x != nil {
		return x.StoredFilename
	}
	return ""
}

func (x *ShippingLabel) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ShippingLabel) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateLabelRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrderId        int64                  `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	ModuleName     string                 `protobuf:"bytes,2,opt,name=module_name,json=moduleName,proto3" json:"module_name,omitempty"`
	TrackingNumber string                 `protobuf:"bytes,3,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	// path to a generated PDF; validated and copied into the labels root
	LabelFilePath string `protobuf:"bytes,4,opt,name=label_file_path,json=labelFilePath,proto3" json:"label_file_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLabelRequest) Reset() {
	*x = CreateLabelRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLabelRequest) ProtoMessage() {}

func (x *CreateLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLabelRequest.ProtoReflect.Descriptor instead.
func (*CreateLabelRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{1}
}

func (x *CreateLabelRequest) GetOrderId() int64 {
	if x != nil {
		return x.OrderId
	}
	return 0
}

func (x *CreateLabelRequest) GetModuleName() string {
	if x != nil {
		return x.ModuleName
	}
	return ""
}

func (x *CreateLabelRequest) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

func (x *CreateLabelRequest) GetLabelFilePath() string {
	if x != nil {
		return x.LabelFilePath
	}
	return ""
}

type CreateLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLabelResponse) Reset() {
	*x = CreateLabelResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLabelResponse) ProtoMessage() {}

func (x *CreateLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLabelResponse.ProtoReflect.Descriptor instead.
func (*CreateLabelResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{2}
}

func (x *CreateLabelResponse) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type UpdateLabelRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	TrackingNumber *string                `protobuf:"bytes,2,opt,name=tracking_number,json=trackingNumber,proto3,oneof" json:"tracking_number,omitempty"`
	ModuleName     *string                `protobuf:"bytes,3,opt,name=module_name,json=moduleName,proto3,oneof" json:"module_name,omitempty"`
	StoredFilename *string                `protobuf:"bytes,4,opt,name=stored_filename,json=storedFilename,proto3,oneof" json:"stored_filename,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UpdateLabelRequest) Reset() {
	*x = UpdateLabelRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLabelRequest) ProtoMessage() {}

func (x *UpdateLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLabelRequest.ProtoReflect.Descriptor instead.
func (*UpdateLabelRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{3}
}

func (x *UpdateLabelRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *UpdateLabelRequest) GetTrackingNumber() string {
	if x != nil && x.TrackingNumber != nil {
		return *x.TrackingNumber
	}
	return ""
}

func (x *UpdateLabelRequest) GetModuleName() string {
	if x != nil && x.ModuleName != nil {
		return *x.ModuleName
	}
	return ""
}

func (x *UpdateLabelRequest) GetStoredFilename() string {
	if x != nil && x.StoredFilename != nil {
		return *x.StoredFilename
	}
	return ""
}

type UpdateLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updated       bool                   `protobuf:"varint,1,opt,name=updated,proto3" json:"updated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateLabelResponse) Reset() {
	*x = UpdateLabelResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLabelResponse) ProtoMessage() {}

func (x *UpdateLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLabelResponse.ProtoReflect.Descriptor instead.
func (*UpdateLabelResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateLabelResponse) GetUpdated() bool {
	if x != nil {
		return x.Updated
	}
	return false
}

type DeleteLabelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLabelRequest) Reset() {
	*x = DeleteLabelRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLabelRequest) ProtoMessage() {}

func (x *DeleteLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLabelRequest.ProtoReflect.Descriptor instead.
func (*DeleteLabelRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteLabelRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type DeleteLabelResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Deleted bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	// set when the backing file could not be removed; row removal still counts
	FileWarning   string `protobuf:"bytes,2,opt,name=file_warning,json=fileWarning,proto3" json:"file_warning,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLabelResponse) Reset() {
	*x = DeleteLabelResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLabelResponse) ProtoMessage() {}

func (x *DeleteLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLabelResponse.ProtoReflect.Descriptor instead.
func (*DeleteLabelResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteLabelResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

func (x *DeleteLabelResponse) GetFileWarning() string {
	if x != nil {
		return x.FileWarning
	}
	return ""
}

type BulkDeleteLabelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []int64                `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkDeleteLabelsRequest) Reset() {
	*x = BulkDeleteLabelsRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkDeleteLabelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkDeleteLabelsRequest) ProtoMessage() {}

func (x *BulkDeleteLabelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkDeleteLabelsRequest.ProtoReflect.Descriptor instead.
func (*BulkDeleteLabelsRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{7}
}

func (x *BulkDeleteLabelsRequest) GetIds() []int64 {
	if x != nil {
		return x.Ids
	}
	return nil
}

type BulkDeleteLabelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeletedCount  int64                  `protobuf:"varint,1,opt,name=deleted_count,json=deletedCount,proto3" json:"deleted_count,omitempty"`
	Warnings      []string               `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkDeleteLabelsResponse) Reset() {
	*x = BulkDeleteLabelsResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkDeleteLabelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkDeleteLabelsResponse) ProtoMessage() {}

func (x *BulkDeleteLabelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkDeleteLabelsResponse.ProtoReflect.Descriptor instead.
func (*BulkDeleteLabelsResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{8}
}

func (x *BulkDeleteLabelsResponse) GetDeletedCount() int64 {
	if x != nil {
		return x.DeletedCount
	}
	return 0
}

func (x *BulkDeleteLabelsResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type GetLabelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLabelRequest) Reset() {
	*x = GetLabelRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLabelRequest) ProtoMessage() {}

func (x *GetLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLabelRequest.ProtoReflect.Descriptor instead.
func (*GetLabelRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{9}
}

func (x *GetLabelRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type GetLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         *ShippingLabel         `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLabelResponse) Reset() {
	*x = GetLabelResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLabelResponse) ProtoMessage() {}

func (x *GetLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLabelResponse.ProtoReflect.Descriptor instead.
func (*GetLabelResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{10}
}

func (x *GetLabelResponse) GetLabel() *ShippingLabel {
	if x != nil {
		return x.Label
	}
	return nil
}

type ListLabelsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             *int64                 `protobuf:"varint,1,opt,name=id,proto3,oneof" json:"id,omitempty"`
	OrderId        *int64                 `protobuf:"varint,2,opt,name=order_id,json=orderId,proto3,oneof" json:"order_id,omitempty"`
	TrackingNumber string                 `protobuf:"bytes,3,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	ModuleName     string                 `protobuf:"bytes,4,opt,name=module_name,json=moduleName,proto3" json:"module_name,omitempty"`
	FromDate       string                 `protobuf:"bytes,5,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate         string                 `protobuf:"bytes,6,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	Limit          int32                  `protobuf:"varint,7,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset         int32                  `protobuf:"varint,8,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListLabelsRequest) Reset() {
	*x = ListLabelsRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLabelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLabelsRequest) ProtoMessage() {}

func (x *ListLabelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLabelsRequest.ProtoReflect.Descriptor instead.
func (*ListLabelsRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{11}
}

func (x *ListLabelsRequest) GetId() int64 {
	if x != nil && x.Id != nil {
		return *x.Id
	}
	return 0
}

func (x *ListLabelsRequest) GetOrderId() int64 {
	if x != nil && x.OrderId != nil {
		return *x.OrderId
	}
	return 0
}

func (x *ListLabelsRequest) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

func (x *ListLabelsRequest) GetModuleName() string {
	if x != nil {
		return x.ModuleName
	}
	return ""
}

func (x *ListLabelsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListLabelsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListLabelsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListLabelsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListLabelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Labels        []*ShippingLabel       `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLabelsResponse) Reset() {
	*x = ListLabelsResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLabelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLabelsResponse) ProtoMessage() {}

func (x *ListLabelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLabelsResponse.ProtoReflect.Descriptor instead.
func (*ListLabelsResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{12}
}

func (x *ListLabelsResponse) GetLabels() []*ShippingLabel {
	if x != nil {
		return x.Labels
	}
	return nil
}

type GenerateLabelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderIds      []int64                `protobuf:"varint,1,rep,packed,name=order_ids,json=orderIds,proto3" json:"order_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateLabelsRequest) Reset() {
	*x = GenerateLabelsRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateLabelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateLabelsRequest) ProtoMessage() {}

func (x *GenerateLabelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateLabelsRequest.ProtoReflect.Descriptor instead.
func (*GenerateLabelsRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{13}
}

func (x *GenerateLabelsRequest) GetOrderIds() []int64 {
	if x != nil {
		return x.OrderIds
	}
	return nil
}

type GenerateLabelsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	GeneratedCount int64                  `protobuf:"varint,1,opt,name=generated_count,json=generatedCount,proto3" json:"generated_count,omitempty"`
	Errors         []string               `protobuf:"bytes,2,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GenerateLabelsResponse) Reset() {
	*x = GenerateLabelsResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateLabelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateLabelsResponse) ProtoMessage() {}

func (x *GenerateLabelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateLabelsResponse.ProtoReflect.Descriptor instead.
func (*GenerateLabelsResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{14}
}

func (x *GenerateLabelsResponse) GetGeneratedCount() int64 {
	if x != nil {
		return x.GeneratedCount
	}
	return 0
}

func (x *GenerateLabelsResponse) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

type ExportLabelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       *int64                 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3,oneof" json:"order_id,omitempty"`
	ModuleName    string                 `protobuf:"bytes,2,opt,name=module_name,json=moduleName,proto3" json:"module_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLabelsRequest) Reset() {
	*x = ExportLabelsRequest{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLabelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLabelsRequest) ProtoMessage() {}

func (x *ExportLabelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLabelsRequest.ProtoReflect.Descriptor instead.
func (*ExportLabelsRequest) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{15}
}

func (x *ExportLabelsRequest) GetOrderId() int64 {
	if x != nil && x.OrderId != nil {
		return *x.OrderId
	}
	return 0
}

func (x *ExportLabelsRequest) GetModuleName() string {
	if x != nil {
		return x.ModuleName
	}
	return ""
}

type ExportLabelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLabelsResponse) Reset() {
	*x = ExportLabelsResponse{}
	mi := &file_proto_labels_v1_labels_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLabelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLabelsResponse) ProtoMessage() {}

func (x *ExportLabelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_labels_v1_labels_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLabelsResponse.ProtoReflect.Descriptor instead.
func (*ExportLabelsResponse) Descriptor() ([]byte, []int) {
	return file_proto_labels_v1_labels_proto_rawDescGZIP(), []int{16}
}

func (x *ExportLabelsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_proto_labels_v1_labels_proto protoreflect.FileDescriptor

const file_proto_labels_v1_labels_proto_rawDesc = "" +
	"\n" +
	"\x1cproto/labels/v1/labels.proto\x12\tlabels.v1\"\xeb\x01\n" +
	"\rShippingLabel\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x19\n" +
	"\border_id\x18\x02 \x01(\x03R\aorderId\x12'\n" +
	"\x0ftracking_number\x18\x03 \x01(\tR\x0etrackingNumber\x12\x1f\n" +
	"\vmodule_name\x18\x04 \x01(\tR\n" +
	"moduleName\x12'\n" +
	"\x0fstored_filename\x18\x05 \x01(\tR\x0estoredFilename\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\xa1\x01\n" +
	"\x12CreateLabelRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\x03R\aorderId\x12\x1f\n" +
	"\vmodule_name\x18\x02 \x01(\tR\n" +
	"moduleName\x12'\n" +
	"\x0ftracking_number\x18\x03 \x01(\tR\x0etrackingNumber\x12&\n" +
	"\x0flabel_file_path\x18\x04 \x01(\tR\rlabelFilePath\"%\n" +
	"\x13CreateLabelResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\"\xde\x01\n" +
	"\x12UpdateLabelRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12,\n" +
	"\x0ftracking_number\x18\x02 \x01(\tH\x00R\x0etrackingNumber\x88\x01\x01\x12$\n" +
	"\vmodule_name\x18\x03 \x01(\tH\x01R\n" +
	"moduleName\x88\x01\x01\x12,\n" +
	"\x0fstored_filename\x18\x04 \x01(\tH\x02R\x0estoredFilename\x88\x01\x01B\x12\n" +
	"\x10_tracking_numberB\x0e\n" +
	"\f_module_nameB\x12\n" +
	"\x10_stored_filename\"/\n" +
	"\x13UpdateLabelResponse\x12\x18\n" +
	"\aupdated\x18\x01 \x01(\bR\aupdated\"$\n" +
	"\x12DeleteLabelRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\"R\n" +
	"\x13DeleteLabelResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\x12!\n" +
	"\ffile_warning\x18\x02 \x01(\tR\vfileWarning\"+\n" +
	"\x17BulkDeleteLabelsRequest\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\x03R\x03ids\"[\n" +
	"\x18BulkDeleteLabelsResponse\x12#\n" +
	"\rdeleted_count\x18\x01 \x01(\x03R\fdeletedCount\x12\x1a\n" +
	"\bwarnings\x18\x02 \x03(\tR\bwarnings\"!\n" +
	"\x0fGetLabelRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\"B\n" +
	"\x10GetLabelResponse\x12.\n" +
	"\x05label\x18\x01 \x01(\v2\x18.labels.v1.ShippingLabelR\x05label\"\x8a\x02\n" +
	"\x11ListLabelsRequest\x12\x13\n" +
	"\x02id\x18\x01 \x01(\x03H\x00R\x02id\x88\x01\x01\x12\x1e\n" +
	"\border_id\x18\x02 \x01(\x03H\x01R\aorderId\x88\x01\x01\x12'\n" +
	"\x0ftracking_number\x18\x03 \x01(\tR\x0etrackingNumber\x12\x1f\n" +
	"\vmodule_name\x18\x04 \x01(\tR\n" +
	"moduleName\x12\x1b\n" +
	"\tfrom_date\x18\x05 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x06 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\a \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\b \x01(\x05R\x06offsetB\x05\n" +
	"\x03_idB\v\n" +
	"\t_order_id\"F\n" +
	"\x12ListLabelsResponse\x120\n" +
	"\x06labels\x18\x01 \x03(\v2\x18.labels.v1.ShippingLabelR\x06labels\"4\n" +
	"\x15GenerateLabelsRequest\x12\x1b\n" +
	"\torder_ids\x18\x01 \x03(\x03R\borderIds\"Y\n" +
	"\x16GenerateLabelsResponse\x12'\n" +
	"\x0fgenerated_count\x18\x01 \x01(\x03R\x0egeneratedCount\x12\x16\n" +
	"\x06errors\x18\x02 \x03(\tR\x06errors\"c\n" +
	"\x13ExportLabelsRequest\x12\x1e\n" +
	"\border_id\x18\x01 \x01(\x03H\x00R\aorderId\x88\x01\x01\x12\x1f\n" +
	"\vmodule_name\x18\x02 \x01(\tR\n" +
	"moduleNameB\v\n" +
	"\t_order_id\"*\n" +
	"\x14ExportLabelsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x8e\x05\n" +
	"\rLabelsService\x12L\n" +
	"\vCreateLabel\x12\x1d.labels.v1.CreateLabelRequest\x1a\x1e.labels.v1.CreateLabelResponse\x12L\n" +
	"\vUpdateLabel\x12\x1d.labels.v1.UpdateLabelRequest\x1a\x1e.labels.v1.UpdateLabelResponse\x12L\n" +
	"\vDeleteLabel\x12\x1d.labels.v1.DeleteLabelRequest\x1a\x1e.labels.v1.DeleteLabelResponse\x12[\n" +
	"\x10BulkDeleteLabels\x12\".labels.v1.BulkDeleteLabelsRequest\x1a#.labels.v1.BulkDeleteLabelsResponse\x12C\n" +
	"\bGetLabel\x12\x1a.labels.v1.GetLabelRequest\x1a\x1b.labels.v1.GetLabelResponse\x12I\n" +
	"\n" +
	"ListLabels\x12\x1c.labels.v1.ListLabelsRequest\x1a\x1d.labels.v1.ListLabelsResponse\x12U\n" +
	"\x0eGenerateLabels\x12 .labels.v1.GenerateLabelsRequest\x1a!.labels.v1.GenerateLabelsResponse\x12O\n" +
	"\fExportLabels\x12\x1e.labels.v1.ExportLabelsRequest\x1a\x1f.labels.v1.ExportLabelsResponseB-Z+labels-tracker/gen/proto/labels/v1;labelsv1b\x06proto3"

var (
	file_proto_labels_v1_labels_proto_rawDescOnce sync.Once
	file_proto_labels_v1_labels_proto_rawDescData []byte
)

func file_proto_labels_v1_labels_proto_rawDescGZIP() []byte {
	file_proto_labels_v1_labels_proto_rawDescOnce.Do(func() {
		file_proto_labels_v1_labels_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_labels_v1_labels_proto_rawDesc), len(file_proto_labels_v1_labels_proto_rawDesc)))
	})
	return file_proto_labels_v1_labels_proto_rawDescData
}

var file_proto_labels_v1_labels_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_proto_labels_v1_labels_proto_goTypes = []any{
	(*ShippingLabel)(nil),            // 0: labels.v1.ShippingLabel
	(*CreateLabelRequest)(nil),       // 1: labels.v1.CreateLabelRequest
	(*CreateLabelResponse)(nil),      // 2: labels.v1.CreateLabelResponse
	(*UpdateLabelRequest)(nil),       // 3: labels.v1.UpdateLabelRequest
	(*UpdateLabelResponse)(nil),      // 4: labels.v1.UpdateLabelResponse
	(*DeleteLabelRequest)(nil),       // 5: labels.v1.DeleteLabelRequest
	(*DeleteLabelResponse)(nil),      // 6: labels.v1.DeleteLabelResponse
	(*BulkDeleteLabelsRequest)(nil),  // 7: labels.v1.BulkDeleteLabelsRequest
	(*BulkDeleteLabelsResponse)(nil), // 8: labels.v1.BulkDeleteLabelsResponse
	(*GetLabelRequest)(nil),          // 9: labels.v1.GetLabelRequest
	(*GetLabelResponse)(nil),         // 10: labels.v1.GetLabelResponse
	(*ListLabelsRequest)(nil),        // 11: labels.v1.ListLabelsRequest
	(*ListLabelsResponse)(nil),       // 12: labels.v1.ListLabelsResponse
	(*GenerateLabelsRequest)(nil),    // 13: labels.v1.GenerateLabelsRequest
	(*GenerateLabelsResponse)(nil),   // 14: labels.v1.GenerateLabelsResponse
	(*ExportLabelsRequest)(nil),      // 15: labels.v1.ExportLabelsRequest
	(*ExportLabelsResponse)(nil),     // 16: labels.v1.ExportLabelsResponse
}
var file_proto_labels_v1_labels_proto_depIdxs = []int32{
	0,  // 0: labels.v1.GetLabelResponse.label:type_name -> labels.v1.ShippingLabel
	0,  // 1: labels.v1.ListLabelsResponse.labels:type_name -> labels.v1.ShippingLabel
	1,  // 2: labels.v1.LabelsService.CreateLabel:input_type -> labels.v1.CreateLabelRequest
	3,  // 3: labels.v1.LabelsService.UpdateLabel:input_type -> labels.v1.UpdateLabelRequest
	5,  // 4: labels.v1.LabelsService.DeleteLabel:input_type -> labels.v1.DeleteLabelRequest
	7,  // 5: labels.v1.LabelsService.BulkDeleteLabels:input_type -> labels.v1.BulkDeleteLabelsRequest
	9,  // 6: labels.v1.LabelsService.GetLabel:input_type -> labels.v1.GetLabelRequest
	11, // 7: labels.v1.LabelsService.ListLabels:input_type -> labels.v1.ListLabelsRequest
	13, // 8: labels.v1.LabelsService.GenerateLabels:input_type -> labels.v1.GenerateLabelsRequest
	15, // 9: labels.v1.LabelsService.ExportLabels:input_type -> labels.v1.ExportLabelsRequest
	2,  // 10: labels.v1.LabelsService.CreateLabel:output_type -> labels.v1.CreateLabelResponse
	4,  // 11: labels.v1.LabelsService.UpdateLabel:output_type -> labels.v1.UpdateLabelResponse
	6,  // 12: labels.v1.LabelsService.DeleteLabel:output_type -> labels.v1.DeleteLabelResponse
	8,  // 13: labels.v1.LabelsService.BulkDeleteLabels:output_type -> labels.v1.BulkDeleteLabelsResponse
	10, // 14: labels.v1.LabelsService.GetLabel:output_type -> labels.v1.GetLabelResponse
	12, // 15: labels.v1.LabelsService.ListLabels:output_type -> labels.v1.ListLabelsResponse
	14, // 16: labels.v1.LabelsService.GenerateLabels:output_type -> labels.v1.GenerateLabelsResponse
	16, // 17: labels.v1.LabelsService.ExportLabels:output_type -> labels.v1.ExportLabelsResponse
	10, // [10:18] is the sub-list for method output_type
	2,  // [2:10] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_proto_labels_v1_labels_proto_init() }
func file_proto_labels_v1_labels_proto_init() {
	if File_proto_labels_v1_labels_proto != nil {
		return
	}
	file_proto_labels_v1_labels_proto_msgTypes[3].OneofWrappers = []any{}
	file_proto_labels_v1_labels_proto_msgTypes[11].OneofWrappers = []any{}
	file_proto_labels_v1_labels_proto_msgTypes[15].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_labels_v1_labels_proto_rawDesc), len(file_proto_labels_v1_labels_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_labels_v1_labels_proto_goTypes,
		DependencyIndexes: file_proto_labels_v1_labels_proto_depIdxs,
		MessageInfos:      file_proto_labels_v1_labels_proto_msgTypes,
	}.Build()
	File_proto_labels_v1_labels_proto = out.File
	file_proto_labels_v1_labels_proto_goTypes = nil
	file_proto_labels_v1_labels_proto_depIdxs = nil
}
