package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/app/models/dto"
	"github.com/baris/okulport/internal/app/services"
	"github.com/baris/okulport/internal/middleware"
)

// AdminController handles the admin surface: access request decisions,
// roster import and record inserts.
type AdminController struct {
	accessService services.AccessService
	rosterService services.RosterService
	recordService services.RecordService
	logger        zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	accessService services.AccessService,
	rosterService services.RosterService,
	recordService services.RecordService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		accessService: accessService,
		rosterService: rosterService,
		recordService: recordService,
		logger:        logger,
	}
}

// studentIDParam parses the :id path parameter, answering 400 on garbage
func studentIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListRequests lists access requests, most recent first
// @Summary List access requests
// @Description Lists access requests joined with student name and code, most recent first. Filter with ?status=PENDING|APPROVED|REJECTED.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} dto.APIResponse{data=[]models.AccessRequestInfo} "Access requests retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown status value"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/requests [get]
func (c *AdminController) ListRequests(ctx *gin.Context) {
	status := models.RequestStatus(ctx.Query("status"))

	requests, err := c.accessService.ListRequests(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if requests == nil {
		requests = []*models.AccessRequestInfo{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// ApproveRequest approves a student's access request
// @Summary Approve access request
// @Description Sets the request status to APPROVED and clears any rejection message. Idempotent; approving an already approved request changes nothing.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Access request approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 404 {object} dto.ErrorResponse "Student or access request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/requests/{id}/approve [post]
func (c *AdminController) ApproveRequest(ctx *gin.Context) {
	id, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	if err := c.accessService.Approve(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// RejectRequest rejects a student's access request with a reason
// @Summary Reject access request
// @Description Sets the request status to REJECTED with the given reason, overwriting any prior status including APPROVED.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.SuccessResponse "Access request rejected"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID or missing reason"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 404 {object} dto.ErrorResponse "Student or access request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/requests/{id}/reject [post]
func (c *AdminController) RejectRequest(ctx *gin.Context) {
	id, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rejection data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.accessService.Reject(ctx, id, req.Reason); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ResetRequest deletes a student's access request, releasing the binding
// @Summary Reset device binding
// @Description Deletes the access request row, returning the student to the never-attempted state. The next login binds whatever device initiates it. Idempotent.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Device binding released"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/requests/{id} [delete]
func (c *AdminController) ResetRequest(ctx *gin.Context) {
	id, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	if err := c.accessService.Reset(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ImportRoster imports students from an uploaded spreadsheet
// @Summary Import student roster
// @Description Reads student names from the first column of an uploaded .xlsx file and creates one student per row with a generated access code. The batch is all-or-nothing.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security AdminKeyAuth
// @Param file formData file true "Roster spreadsheet (.xlsx)"
// @Success 201 {object} dto.APIResponse{data=services.ImportResult} "Roster imported successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing, empty or unsupported roster file"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/import [post]
func (c *AdminController) ImportRoster(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Roster file is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded roster")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to read uploaded file")))
		return
	}
	defer file.Close()

	result, err := c.rosterService.ImportRoster(ctx, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ListStudents lists the full roster
// @Summary List students
// @Description Lists every imported student with their access code.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.rosterService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if students == nil {
		students = []*models.Student{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// AddGrade records a grade for a student
// @Summary Record a grade
// @Description Inserts a grade row for the student. Grades become visible to the student only once their access request is APPROVED.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.GradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id}/grades [post]
func (c *AdminController) AddGrade(ctx *gin.Context) {
	id, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade := &models.Grade{
		StudentID: id,
		Course:    req.Course,
		Term:      req.Term,
		Score:     req.Score,
	}
	if err := c.recordService.AddGrade(ctx, grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// AddAbsence records an absence for a student
// @Summary Record an absence
// @Description Inserts an absence row for the student. Absences are visible regardless of access request status.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.AbsenceRequest true "Absence information"
// @Success 201 {object} dto.APIResponse{data=models.Absence} "Absence recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid absence data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id}/absences [post]
func (c *AdminController) AddAbsence(ctx *gin.Context) {
	id, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AbsenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid absence data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	absence := &models.Absence{
		StudentID:   id,
		AbsenceDate: req.AbsenceDate,
		Lesson:      req.Lesson,
		Excused:     req.Excused,
	}
	if err := c.recordService.AddAbsence(ctx, absence); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      absence,
		Timestamp: time.Now(),
	})
}

// AddNotification records a notification for a student
// @Summary Record a notification
// @Description Inserts a notification row for the student. Notifications are visible regardless of access request status.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminKeyAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.NotificationRequest true "Notification information"
// @Success 201 {object} dto.APIResponse{data=models.Notification} "Notification recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid notification data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid admin key"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id}/notifications [post]
func (c *AdminController) AddNotification(ctx *gin.Context) {
	id, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notification data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notification := &models.Notification{
		StudentID: id,
		Title:     req.Title,
		Body:      req.Body,
	}
	if err := c.recordService.AddNotification(ctx, notification); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      notification,
		Timestamp: time.Now(),
	})
}
