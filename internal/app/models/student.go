package models

import "time"

// Student is a row of the 'students' table
type Student struct {
	ID          int64       `json:"id" db:"id" example:"1"`
	FullName    string      `json:"full_name" db:"full_name" example:"Ada Lovelace"`
	Email       string      `json:"email" db:"email" example:"ada@example.com"`
	Course      string      `json:"course" db:"course" example:"CS"`
	Age         int32       `json:"age" db:"age" example:"30"`
	RegTime     time.Time   `json:"reg_time" db:"reg_time" example:"2026-10-19T12:00:00Z"`
	IPAddress   *string     `json:"ip_address" db:"ip_address" example:"127.0.0.1"`
	CreatedBy   CreatorRole `json:"created_by" db:"created_by" example:"SuperAdmin"`
	PDFFile     *string     `json:"pdf_file" db:"pdf_file" example:"uploads/0b6d2c1e-5d0f-4b47-9a55-0f4b8f3d2a10.pdf"`
	PDFFileName *string     `json:"pdf_file_name" db:"pdf_file_name" example:"transcript.pdf"`
}

// HasDocument reports whether a document is attached to the record
func (s *Student) HasDocument() bool {
	return s.PDFFile != nil && *s.PDFFile != ""
}
