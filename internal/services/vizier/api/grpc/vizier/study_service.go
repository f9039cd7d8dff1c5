package vizier

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/platform/grpc/pagination"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/names"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

// CreateStudy stores a new study under the owner. When a study with the same
// display name already exists the existing study is returned unchanged, so
// clients can treat creation as a load-or-create.
func (s *Service) CreateStudy(ctx context.Context, in *vizierv1.CreateStudyRequest) (*vizierv1.Study, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create study request is required")
	}
	owner, err := names.ParseOwner(in.GetParent())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid parent: %v", err)
	}
	study := in.GetStudy()
	if study == nil {
		return nil, status.Error(codes.InvalidArgument, "study is required")
	}
	if study.GetDisplayName() == "" {
		return nil, status.Error(codes.InvalidArgument, "study display name is required")
	}
	spec := study.GetStudySpec()
	if spec == nil {
		return nil, status.Error(codes.InvalidArgument, "study spec is required")
	}
	if len(spec.GetParameters()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "study spec needs at least one parameter")
	}
	if len(spec.GetMetrics()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "study spec needs at least one metric")
	}

	record := storage.StudyRecord{
		Name:        names.FormatStudy(owner, study.GetDisplayName()),
		Owner:       in.GetParent(),
		StudyID:     study.GetDisplayName(),
		DisplayName: study.GetDisplayName(),
		State:       storage.StudyStateActive,
		Spec:        spec,
		CreateTime:  s.clock().UTC(),
	}
	if err := s.store.CreateStudy(ctx, record); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			existing, getErr := s.store.GetStudy(ctx, record.Name)
			if getErr != nil {
				return nil, handleStorageError(getErr, "study")
			}
			return studyToProto(existing), nil
		}
		return nil, handleStorageError(err, "study")
	}
	return studyToProto(record), nil
}

// GetStudy returns a study by resource name.
func (s *Service) GetStudy(ctx context.Context, in *vizierv1.GetStudyRequest) (*vizierv1.Study, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get study request is required")
	}
	if _, _, err := names.ParseStudy(in.GetName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid name: %v", err)
	}
	record, err := s.store.GetStudy(ctx, in.GetName())
	if err != nil {
		return nil, handleStorageError(err, "study")
	}
	return studyToProto(record), nil
}

// ListStudies returns a page of the owner's studies.
func (s *Service) ListStudies(ctx context.Context, in *vizierv1.ListStudiesRequest) (*vizierv1.ListStudiesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list studies request is required")
	}
	if _, err := names.ParseOwner(in.GetParent()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid parent: %v", err)
	}
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})
	cursor, err := pagination.DecodePageToken(in.GetPageToken())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	page, err := s.store.ListStudies(ctx, in.GetParent(), pageSize, cursor)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list studies: %v", err)
	}

	response := &vizierv1.ListStudiesResponse{
		NextPageToken: pagination.EncodePageToken(page.NextCursor),
	}
	for _, record := range page.Studies {
		response.Studies = append(response.Studies, studyToProto(record))
	}
	return response, nil
}

// DeleteStudy removes a study and all of its trials.
func (s *Service) DeleteStudy(ctx context.Context, in *vizierv1.DeleteStudyRequest) (*emptypb.Empty, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete study request is required")
	}
	if _, _, err := names.ParseStudy(in.GetName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid name: %v", err)
	}
	if err := s.store.DeleteStudy(ctx, in.GetName()); err != nil {
		return nil, handleStorageError(err, "study")
	}
	return &emptypb.Empty{}, nil
}
