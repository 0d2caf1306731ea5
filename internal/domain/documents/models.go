package documents

import (
	"time"

	"hrms/internal/domain/authz"
)

type Document struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employeeId"`
	Title       string            `json:"title"`
	FileName    string            `json:"fileName"`
	ContentType string            `json:"contentType"`
	AccessLevel authz.AccessLevel `json:"accessLevel"`
	UploadedBy  string            `json:"uploadedBy"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type UploadInput struct {
	EmployeeID  string
	Title       string
	FileName    string
	ContentType string
	AccessLevel authz.AccessLevel
}
