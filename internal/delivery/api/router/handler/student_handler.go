package handler

import (
	"log/slog"
	"net/http"

	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/response"
	"recruit/internal/domain/entity"
	"recruit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const resumeFormField = "resume"

// StudentHandlerParams holds dependencies for StudentHandler, injected by Fx.
type StudentHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	HiringUC  usecase.HiringUsecase
	Logger    *slog.Logger
}

// StudentHandler serves the student's own profile and resume.
type StudentHandler struct {
	profileUC usecase.ProfileUsecase
	hiringUC  usecase.HiringUsecase
	logger    *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler
func NewStudentHandler(params StudentHandlerParams) *StudentHandler {
	return &StudentHandler{
		profileUC: params.ProfileUC,
		hiringUC:  params.HiringUC,
		logger:    params.Logger,
	}
}

// UploadResumeRequest describes a resume when it is not sent as multipart form data.
type UploadResumeRequest struct {
	FileName string `json:"file_name" validate:"required"`
	Size     int64  `json:"size" validate:"gte=0"`
}

// HiringStatusResponse tells a student whether a hire stands under their email.
type HiringStatusResponse struct {
	Hired   bool                   `json:"hired"`
	Records []*entity.HiringRecord `json:"records"`
}

// GetProfile returns the student's profile.
func (h *StudentHandler) GetProfile(c echo.Context) error {
	student, ok := middleware.GetStudent(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	profile, err := h.profileUC.GetStudentProfile(c.Request().Context(), student.User.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the student's profile.
func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	student, ok := middleware.GetStudent(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req usecase.UpdateStudentProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.UpdateStudentProfile(c.Request().Context(), student.User.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadResume records a resume. Multipart uploads use the "resume" field;
// otherwise the body names the file and its size.
func (h *StudentHandler) UploadResume(c echo.Context) error {
	student, ok := middleware.GetStudent(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req UploadResumeRequest
	if file, err := c.FormFile(resumeFormField); err == nil {
		req.FileName = file.Filename
		req.Size = file.Size
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resume input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.UploadResume(c.Request().Context(), student.User.ID, req.FileName, req.Size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// ResumeQRCode renders the resume link as a PNG QR code.
func (h *StudentHandler) ResumeQRCode(c echo.Context) error {
	student, ok := middleware.GetStudent(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	png, err := h.profileUC.ResumeQRCode(c.Request().Context(), student.User.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// HiringStatus lists the hiring records filed under the student's email.
func (h *StudentHandler) HiringStatus(c echo.Context) error {
	student, ok := middleware.GetStudent(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	records, err := h.hiringUC.ListByStudent(c.Request().Context(), student.User.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := HiringStatusResponse{Records: records}
	for _, record := range records {
		if record.Status == entity.HiringStatusHired {
			status.Hired = true

			break
		}
	}

	return response.Success(c, http.StatusOK, status)
}
