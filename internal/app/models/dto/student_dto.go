package dto

import "mime/multipart"

// CreateStudentRequest is the body of POST /students.
// The same struct is bound from a JSON object or a multipart form, so both
// encodings share one set of validation rules. Server-derived fields
// (reg_time, ip_address, the created_by label) have no place here.
type CreateStudentRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"required" example:"Ada Lovelace"`
	Email    string `json:"email" form:"email" binding:"required" example:"ada@example.com"`
	Course   string `json:"course" form:"course" binding:"required" example:"CS"`
	// Age and CreatedBy are pointers so that an explicit 0 passes "required"
	Age       *int32 `json:"age" form:"age" binding:"required" example:"30"`
	CreatedBy *int   `json:"created_by" form:"created_by" binding:"required" example:"2"`

	// PDFFile is read from the "pdf_file" part of a multipart form by the
	// controller. It is never bound from JSON.
	PDFFile *multipart.FileHeader `json:"-" form:"-" swaggerignore:"true"`
}
