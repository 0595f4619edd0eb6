package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baris/okulport/internal/app/models/dto"
	"github.com/baris/okulport/internal/app/services"
	"github.com/baris/okulport/internal/middleware"
)

// StudentController serves the visibility-gated student view
type StudentController struct {
	accessService services.AccessService
}

// NewStudentController creates a new StudentController
func NewStudentController(accessService services.AccessService) *StudentController {
	return &StudentController{
		accessService: accessService,
	}
}

// GetStudentView retrieves the gated data set for a student
// @Summary Get student view
// @Description Returns absences and notifications unconditionally; grades only when the access request is APPROVED. While not approved the view carries locked=true, and a REJECTED request additionally carries the rejection reason.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.StudentViewResponse "Student view retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/view [get]
func (c *StudentController) GetStudentView(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	view, err := c.accessService.GetStudentView(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentViewResponse(view))
}
