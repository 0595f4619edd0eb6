package dto

import (
	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/app/services"
)

// LoginRequest is the body of a student login attempt
type LoginRequest struct {
	Code     string `json:"code" binding:"required" example:"K7TQ2M9A"`
	DeviceID string `json:"deviceId" binding:"required" example:"a3f1c2d4-phone"`
}

// LoginStudent carries the student's standing after a successful login
type LoginStudent struct {
	ID         int64  `json:"id" example:"1"`
	FullName   string `json:"fullName" example:"Ayşe Kaya"`
	SecretCode string `json:"secretCode" example:"K7TQ2M9A"`
	Status     string `json:"status" example:"PENDING" enums:"PENDING,APPROVED,REJECTED"`
	Message    string `json:"message,omitempty" example:"late payment"`
}

// LoginResponse is returned on a successful login attempt. A successful
// attempt does not imply an unlocked view; Status carries the standing.
type LoginResponse struct {
	Success bool         `json:"success" example:"true"`
	Student LoginStudent `json:"student"`
}

// NewLoginResponse maps a service login result to the response shape
func NewLoginResponse(result *services.LoginResult) *LoginResponse {
	student := LoginStudent{
		ID:         result.Student.ID,
		FullName:   result.Student.FullName,
		SecretCode: result.Student.Code,
		Status:     string(result.Status),
	}
	if result.Status == models.StatusRejected && result.Message != nil {
		student.Message = *result.Message
	}
	return &LoginResponse{
		Success: true,
		Student: student,
	}
}
