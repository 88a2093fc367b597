package services

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/filestorage"
	"github.com/yigit/studentregistry/internal/pkg/logger"
	"github.com/yigit/studentregistry/internal/pkg/metrics"
)

// StudentStore is the persistence the student service needs.
// *repositories.StudentRepository satisfies it.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Ping(ctx context.Context) error
}

// StudentService defines the interface for student registration operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, peerIP string) (*models.Student, error)
	CheckHealth(ctx context.Context) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	store StudentStore
	files filestorage.FileStorage
	now   func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(store StudentStore, files filestorage.FileStorage) StudentService {
	return &studentServiceImpl{
		store: store,
		files: files,
		now:   time.Now,
	}
}

// ListStudents returns every registered student
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("Failed to list students", err)
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// GetStudent returns one student by id
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrResourceNotFound, "Student not found")
		}
		return nil, apperrors.NewDatabaseError("Failed to get student", err)
	}
	return student, nil
}

// CreateStudent stores the attached document (if any), then inserts the row.
// If the insert fails the stored document is removed again.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, peerIP string) (*models.Student, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	var document *filestorage.FileInfo
	if req.PDFFile != nil {
		if s.files == nil {
			return nil, apperrors.NewFileStorageError("Failed to store document", errors.New("no file storage configured"))
		}
		info, err := s.files.SaveFile(ctx, req.PDFFile)
		if err != nil {
			return nil, apperrors.NewFileStorageError("Failed to store document", err)
		}
		document = info
	}

	student := newStudentRecord(req, peerIP, document, s.now())

	id, err := s.store.Create(ctx, student)
	if err != nil {
		if document != nil {
			s.discardDocument(ctx, document.Path)
		}
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, apperrors.NewDatabaseError("Failed to add student", err)
	}
	student.ID = id

	if document != nil {
		metrics.DocumentStored()
	}
	logger.Info().
		Int64("id", id).
		Str("created_by", string(student.CreatedBy)).
		Bool("document", document != nil).
		Msg("Student registered")

	return student, nil
}

// CheckHealth reports whether the record store is reachable
func (s *studentServiceImpl) CheckHealth(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// discardDocument removes a document whose row was never written.
// It outlives a cancelled request context so the file is not orphaned.
func (s *studentServiceImpl) discardDocument(ctx context.Context, path string) {
	if err := s.files.DeleteFile(context.WithoutCancel(ctx), path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to remove document after insert failure")
	}
}

// newStudentRecord is the only place a Student is built for insertion.
// reg_time, ip_address and the created_by label are always derived here.
func newStudentRecord(req *dto.CreateStudentRequest, peerIP string, document *filestorage.FileInfo, now time.Time) *models.Student {
	student := &models.Student{
		FullName:  req.FullName,
		Email:     req.Email,
		Course:    req.Course,
		Age:       *req.Age,
		RegTime:   now,
		CreatedBy: models.CreatorRoleFromCode(*req.CreatedBy),
	}
	if peerIP != "" {
		ip := peerIP
		student.IPAddress = &ip
	}
	if document != nil {
		path, name := document.Path, document.Filename
		student.PDFFile = &path
		student.PDFFileName = &name
	}
	return student
}

func validateCreateRequest(req *dto.CreateStudentRequest) error {
	if req == nil {
		return apperrors.NewBadRequestError("Invalid request format")
	}

	details := map[string]interface{}{}
	for field, value := range map[string]string{
		"full_name": req.FullName,
		"email":     req.Email,
		"course":    req.Course,
	} {
		if value == "" {
			details[field] = field + " is required"
		}
	}
	if req.Age == nil {
		details["age"] = "age is required"
	}
	if req.CreatedBy == nil {
		details["created_by"] = "created_by is required"
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("Validation failed", details)
	}
	return nil
}
