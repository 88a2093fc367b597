package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/dberrors"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

const studentsTable = "students"

var studentColumns = []string{
	"id", "full_name", "email", "course", "age",
	"reg_time", "ip_address", "created_by", "pdf_file", "pdf_file_name",
}

// StudentRepository handles database operations for student records.
type StudentRepository struct {
	DB *pgxpool.Pool
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{DB: db}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// scanStudent scans a row selected with studentColumns.
func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	var createdBy string
	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.Course, &s.Age,
		&s.RegTime, &s.IPAddress, &createdBy, &s.PDFFile, &s.PDFFileName,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedBy = models.CreatorRole(createdBy)
	return &s, nil
}

// Create inserts a student row and returns the id assigned by the database.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := psql().Insert(studentsTable).
		Columns("full_name", "email", "course", "age", "reg_time", "ip_address", "created_by", "pdf_file", "pdf_file_name").
		Values(
			student.FullName, student.Email, student.Course, student.Age, student.RegTime,
			student.IPAddress, string(student.CreatedBy), student.PDFFile, student.PDFFileName,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, apperrors.NewDatabaseError("build insert", err)
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if constraint, ok := dberrors.IsCheckViolation(err); ok {
			logger.Warn().Err(err).Str("constraint", constraint).Msg("Student row rejected by check constraint")
			return 0, apperrors.NewValidationError("Student record violates a table constraint", map[string]interface{}{
				"constraint": constraint,
			})
		}
		if column, ok := dberrors.IsNotNullViolation(err); ok {
			return 0, apperrors.NewValidationError("Student record is missing a required column", map[string]interface{}{
				column: column + " is required",
			})
		}
		return 0, apperrors.NewDatabaseError("insert student", err)
	}

	return id, nil
}

// List returns every student row, ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	sql, args, err := psql().Select(studentColumns...).
		From(studentsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build select", err)
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewDatabaseError("query students", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan student", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("iterate students", err)
	}

	return students, nil
}

// GetByID returns a single student or apperrors.ErrResourceNotFound.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := psql().Select(studentColumns...).
		From(studentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build select", err)
	}

	s, err := scanStudent(r.DB.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, apperrors.NewDatabaseError("get student", err)
	}
	return s, nil
}

// Ping checks that the pool can reach the database.
func (r *StudentRepository) Ping(ctx context.Context) error {
	if err := r.DB.Ping(ctx); err != nil {
		return apperrors.NewDatabaseError("ping database", err)
	}
	return nil
}
