package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/app/services"
	"github.com/yigit/studentregistry/internal/middleware"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/filestorage"
)

const pdfFileField = "pdf_file"

// numberFields are bound from text form values
var numberFields = []string{"age", "created_by"}

// parseIDParam parses an ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(paramName), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", paramName)
	}
	return id, nil
}

// StudentController handles student registration endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents godoc
// @Summary List students
// @Description Returns every registered student. The array is empty when there are none.
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary Get a student
// @Description Returns a single student by id
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid student ID"))
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent godoc
// @Summary Register a student
// @Description Creates a student record from a JSON object, or from a multipart form with an optional pdf_file document.
// @Description reg_time, ip_address and the created_by label are set by the server.
// @Tags students
// @Accept json,mpfd
// @Produce plain
// @Param request body dto.CreateStudentRequest false "Student (application/json)"
// @Param full_name formData string false "Full name (multipart/form-data)"
// @Param email formData string false "Email (multipart/form-data)"
// @Param course formData string false "Course (multipart/form-data)"
// @Param age formData int false "Age (multipart/form-data)"
// @Param created_by formData int false "1 = Admin, 2 = SuperAdmin, anything else = Unknown (multipart/form-data)"
// @Param pdf_file formData file false "Document to attach (multipart/form-data)"
// @Success 200 {string} string "Student added"
// @Header 200 {string} Location "/students/{id}"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 415 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	req, err := bindCreateStudentRequest(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req, ctx.RemoteIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := dto.MessageStudentAdded
	if student.HasDocument() {
		message = dto.MessageStudentAddedWithFile
	}
	ctx.Header("Location", fmt.Sprintf("/students/%d", student.ID))
	ctx.String(http.StatusOK, message)
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports whether the database is reachable
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /health [get]
func (c *StudentController) HealthCheck(ctx *gin.Context) {
	if err := c.studentService.CheckHealth(ctx.Request.Context()); err != nil {
		middleware.HandleServiceUnavailable(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// bindCreateStudentRequest decodes the body according to its content type.
// Both encodings go through the same binding validation.
func bindCreateStudentRequest(ctx *gin.Context) (*dto.CreateStudentRequest, error) {
	var req dto.CreateStudentRequest

	switch ctx.ContentType() {
	case binding.MIMEJSON:
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, bindError(err)
		}
	case binding.MIMEMultipartPOSTForm:
		if err := ctx.ShouldBindWith(&req, binding.FormMultipart); err != nil {
			return nil, bindError(err)
		}
		if details := blankNumberFields(ctx); len(details) > 0 {
			return nil, apperrors.NewValidationError("Validation failed", details)
		}
		file, err := multipartDocument(ctx)
		if err != nil {
			return nil, err
		}
		req.PDFFile = file
	default:
		return nil, apperrors.NewCustomError(apperrors.ErrUnsupportedMediaType,
			"Content-Type must be application/json or multipart/form-data")
	}

	return &req, nil
}

// bindError separates rule violations, which carry per-field details, from
// bodies that could not be decoded at all.
func bindError(err error) error {
	if details, ok := dto.ValidationDetails(err); ok {
		return apperrors.NewValidationError("Validation failed", details)
	}
	return apperrors.NewBadRequestError("Invalid request format")
}

// blankNumberFields reports number fields that were sent empty. Form binding
// would otherwise store them as 0.
func blankNumberFields(ctx *gin.Context) map[string]interface{} {
	details := map[string]interface{}{}
	for _, field := range numberFields {
		if value, ok := ctx.GetPostForm(field); ok && strings.TrimSpace(value) == "" {
			details[field] = field + " is required"
		}
	}
	return details
}

// multipartDocument returns the pdf_file part, or nil when none was sent.
// A part without a filename arrives as a plain value; its bytes are kept
// under the placeholder name. An empty one counts as no document.
func multipartDocument(ctx *gin.Context) (*multipart.FileHeader, error) {
	file, err := ctx.FormFile(pdfFileField)
	switch {
	case err == nil:
		return file, nil
	case !errors.Is(err, http.ErrMissingFile):
		return nil, apperrors.NewBadRequestError("Invalid request format")
	}

	content, ok := ctx.GetPostForm(pdfFileField)
	if !ok || content == "" {
		return nil, nil
	}
	file, err = filestorage.PlaceholderUpload([]byte(content))
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid request format")
	}
	return file, nil
}
