package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/filestorage"
)

type fakeStore struct {
	mu        sync.Mutex
	students  []models.Student
	createErr error
	listErr   error
	pingErr   error
}

func (f *fakeStore) Create(_ context.Context, student *models.Student) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return 0, f.createErr
	}
	s := *student
	s.ID = int64(len(f.students) + 1)
	f.students = append(f.students, s)
	return s.ID, nil
}

func (f *fakeStore) List(context.Context) ([]models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Student(nil), f.students...), nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	for i := range f.students {
		if f.students[i].ID == id {
			s := f.students[i]
			return &s, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeStore) Ping(context.Context) error {
	return f.pingErr
}

type fakeFiles struct {
	saveErr error
	saved   []string
	deleted []string
}

func (f *fakeFiles) SaveFile(_ context.Context, fh *multipart.FileHeader) (*filestorage.FileInfo, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	path := fmt.Sprintf("uploads/stored-%d.pdf", len(f.saved)+1)
	f.saved = append(f.saved, path)
	return &filestorage.FileInfo{Path: path, Filename: filestorage.DisplayName(fh.Filename), FileSize: fh.Size}, nil
}

func (f *fakeFiles) DeleteFile(_ context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func int32Ptr(v int32) *int32 { return &v }
func intPtr(v int) *int       { return &v }

func adaRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FullName:  "Ada Lovelace",
		Email:     "ada@example.com",
		Course:    "CS",
		Age:       int32Ptr(30),
		CreatedBy: intPtr(2),
	}
}

func pdfHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf_file"; filename="%s"`, filename))
	h.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(content)
	_ = writer.Close()

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["pdf_file"][0]
}

func TestNewStudentRecordDerivesServerFields(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	doc := &filestorage.FileInfo{Path: "uploads/abc.pdf", Filename: "transcript.pdf"}

	student := newStudentRecord(adaRequest(), "10.0.0.7", doc, now)

	if !student.RegTime.Equal(now) {
		t.Fatalf("expected reg_time %v, got %v", now, student.RegTime)
	}
	if student.IPAddress == nil || *student.IPAddress != "10.0.0.7" {
		t.Fatalf("unexpected ip %v", student.IPAddress)
	}
	if student.CreatedBy != models.CreatorSuperAdmin {
		t.Fatalf("expected SuperAdmin, got %s", student.CreatedBy)
	}
	if student.Age != 30 {
		t.Fatalf("expected age 30, got %d", student.Age)
	}
	if *student.PDFFile != "uploads/abc.pdf" || *student.PDFFileName != "transcript.pdf" {
		t.Fatalf("unexpected document fields %s %s", *student.PDFFile, *student.PDFFileName)
	}
}

func TestNewStudentRecordWithoutPeerOrDocument(t *testing.T) {
	req := adaRequest()
	req.CreatedBy = intPtr(7)

	student := newStudentRecord(req, "", nil, time.Now())

	if student.IPAddress != nil {
		t.Fatalf("expected nil ip, got %s", *student.IPAddress)
	}
	if student.PDFFile != nil || student.PDFFileName != nil {
		t.Fatalf("expected no document fields")
	}
	if student.CreatedBy != models.CreatorUnknown {
		t.Fatalf("expected Unknown, got %s", student.CreatedBy)
	}
}

func TestCreateStudentWithoutDocument(t *testing.T) {
	store := &fakeStore{}
	files := &fakeFiles{}
	svc := NewStudentService(store, files)

	before := time.Now()
	student, err := svc.CreateStudent(context.Background(), adaRequest(), "192.0.2.1")
	after := time.Now()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if student.ID != 1 {
		t.Fatalf("expected id 1, got %d", student.ID)
	}
	if student.RegTime.Before(before) || student.RegTime.After(after) {
		t.Fatalf("reg_time %v outside request window", student.RegTime)
	}
	if len(files.saved) != 0 {
		t.Fatalf("expected no stored files, got %v", files.saved)
	}
	if student.HasDocument() {
		t.Fatalf("expected no document")
	}
}

func TestCreateStudentAcceptsZeroValues(t *testing.T) {
	store := &fakeStore{}
	svc := NewStudentService(store, &fakeFiles{})

	req := adaRequest()
	req.Age = int32Ptr(0)
	req.CreatedBy = intPtr(0)

	student, err := svc.CreateStudent(context.Background(), req, "192.0.2.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if student.Age != 0 || student.CreatedBy != models.CreatorUnknown {
		t.Fatalf("unexpected student %+v", student)
	}
}

func TestCreateStudentWithDocument(t *testing.T) {
	store := &fakeStore{}
	files := &fakeFiles{}
	svc := NewStudentService(store, files)

	req := adaRequest()
	req.PDFFile = pdfHeader(t, "transcript.pdf", []byte("%PDF"))

	student, err := svc.CreateStudent(context.Background(), req, "192.0.2.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !student.HasDocument() || *student.PDFFile != "uploads/stored-1.pdf" {
		t.Fatalf("unexpected document path %v", student.PDFFile)
	}
	if *student.PDFFileName != "transcript.pdf" {
		t.Fatalf("unexpected display name %s", *student.PDFFileName)
	}
	if len(files.deleted) != 0 {
		t.Fatalf("expected nothing deleted, got %v", files.deleted)
	}
}

func TestCreateStudentFileFailureInsertsNoRow(t *testing.T) {
	store := &fakeStore{}
	files := &fakeFiles{saveErr: errors.New("disk full")}
	svc := NewStudentService(store, files)

	req := adaRequest()
	req.PDFFile = pdfHeader(t, "transcript.pdf", []byte("%PDF"))

	_, err := svc.CreateStudent(context.Background(), req, "192.0.2.1")
	if !errors.Is(err, apperrors.ErrFileStorage) {
		t.Fatalf("expected file storage error, got %v", err)
	}
	if len(store.students) != 0 {
		t.Fatalf("expected no rows, got %d", len(store.students))
	}
}

func TestCreateStudentInsertFailureRemovesDocument(t *testing.T) {
	store := &fakeStore{createErr: apperrors.NewDatabaseError("insert student", errors.New("connection refused"))}
	files := &fakeFiles{}
	svc := NewStudentService(store, files)

	req := adaRequest()
	req.PDFFile = pdfHeader(t, "transcript.pdf", []byte("%PDF"))

	_, err := svc.CreateStudent(context.Background(), req, "192.0.2.1")
	if !errors.Is(err, apperrors.ErrDatabase) {
		t.Fatalf("expected database error, got %v", err)
	}
	var custom *apperrors.CustomError
	if !errors.As(err, &custom) || custom.Message != "Failed to add student" {
		t.Fatalf("unexpected error message: %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != files.saved[0] {
		t.Fatalf("expected stored file %v to be deleted, deleted %v", files.saved, files.deleted)
	}
}

func TestCreateStudentInsertFailureWithLocalStorage(t *testing.T) {
	dir := t.TempDir()
	local, err := filestorage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	store := &fakeStore{createErr: errors.New("boom")}
	svc := NewStudentService(store, local)

	req := adaRequest()
	req.PDFFile = pdfHeader(t, "transcript.pdf", []byte("%PDF"))

	if _, err := svc.CreateStudent(context.Background(), req, "192.0.2.1"); err == nil {
		t.Fatalf("expected an error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no orphaned files, found %d", len(entries))
	}
}

func TestCreateStudentMissingFields(t *testing.T) {
	svc := NewStudentService(&fakeStore{}, &fakeFiles{})

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{FullName: "Ada"}, "192.0.2.1")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("expected custom error")
	}
	for _, field := range []string{"email", "course", "age", "created_by"} {
		if _, ok := custom.Details[field]; !ok {
			t.Fatalf("expected %s in details %v", field, custom.Details)
		}
	}
	if _, ok := custom.Details["full_name"]; ok {
		t.Fatalf("full_name was supplied")
	}

	if _, err := svc.CreateStudent(context.Background(), nil, ""); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request for nil request, got %v", err)
	}
}

func TestListStudents(t *testing.T) {
	store := &fakeStore{}
	svc := NewStudentService(store, &fakeFiles{})

	empty, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", empty)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateStudent(context.Background(), adaRequest(), "192.0.2.1"); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	students, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students, got %d", len(students))
	}
}

func TestListStudentsStoreFailure(t *testing.T) {
	svc := NewStudentService(&fakeStore{listErr: errors.New("connection refused")}, &fakeFiles{})

	students, err := svc.ListStudents(context.Background())
	if !errors.Is(err, apperrors.ErrDatabase) {
		t.Fatalf("expected database error, got %v", err)
	}
	if students != nil {
		t.Fatalf("expected no students alongside the error")
	}
}

func TestCheckHealth(t *testing.T) {
	if err := NewStudentService(&fakeStore{}, nil).CheckHealth(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	down := errors.New("down")
	if err := NewStudentService(&fakeStore{pingErr: down}, nil).CheckHealth(context.Background()); !errors.Is(err, down) {
		t.Fatalf("expected ping error, got %v", err)
	}
}

func TestGetStudent(t *testing.T) {
	store := &fakeStore{}
	svc := NewStudentService(store, &fakeFiles{})
	created, err := svc.CreateStudent(context.Background(), adaRequest(), "192.0.2.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetStudent(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected student %+v", got)
	}

	if _, err := svc.GetStudent(context.Background(), 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	store.listErr = errors.New("connection refused")
	if _, err := svc.GetStudent(context.Background(), created.ID); !errors.Is(err, apperrors.ErrDatabase) {
		t.Fatalf("expected database error, got %v", err)
	}
}
