package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/response"
	"recruit/internal/domain/directory"
	"recruit/internal/domain/entity"
	"recruit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecruiterHandlerParams holds dependencies for RecruiterHandler, injected by Fx.
type RecruiterHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	HiringUC    usecase.HiringUsecase
	Logger      *slog.Logger
}

// RecruiterHandler serves the candidate directory and the hiring ledger.
type RecruiterHandler struct {
	directoryUC usecase.DirectoryUsecase
	hiringUC    usecase.HiringUsecase
	logger      *slog.Logger
}

// NewRecruiterHandler is the constructor for RecruiterHandler
func NewRecruiterHandler(params RecruiterHandlerParams) *RecruiterHandler {
	return &RecruiterHandler{
		directoryUC: params.DirectoryUC,
		hiringUC:    params.HiringUC,
		logger:      params.Logger,
	}
}

// SearchCandidatesRequest holds the directory query parameters. Visa
// statuses may repeat or be comma separated.
type SearchCandidatesRequest struct {
	Name           string   `query:"name"`
	Search         string   `query:"search"`
	Major          string   `query:"major"`
	GraduationYear string   `query:"graduationYear"`
	School         string   `query:"school"`
	VisaStatus     []string `query:"visa"`
	SortBy         string   `query:"sortBy"`
	SortOrder      string   `query:"sortOrder"`
	Page           int      `query:"page" validate:"gte=0"`
	PageSize       int      `query:"pageSize" validate:"gte=0"`
}

// CandidatesResponse is one page of the directory.
type CandidatesResponse struct {
	Candidates   []entity.Candidate `json:"candidates"`
	MatchedCount int                `json:"matched_count"`
	TotalCount   int                `json:"total_count"`
	Page         int                `json:"page"`
	PageSize     int                `json:"page_size"`
}

// RecordHireRequest is the body for a new hiring record.
type RecordHireRequest struct {
	StudentEmail  string `json:"student_email" validate:"required"`
	StudentName   string `json:"student_name"`
	PositionTitle string `json:"position_title"`
	Cycle         string `json:"cycle" validate:"required"`
	Notes         string `json:"notes"`
}

// UpdateHireRequest is a partial update of a hiring record.
type UpdateHireRequest struct {
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=hired offer_extended declined withdrawn"`
	PositionTitle *string `json:"position_title,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// HireStatusRequest asks whether an email has been hired.
type HireStatusRequest struct {
	Email string `query:"email" validate:"required"`
}

// HireStatusResponse answers HireStatusRequest.
type HireStatusResponse struct {
	Email string `json:"email"`
	Hired bool   `json:"hired"`
}

// SearchCandidates filters, sorts and pages the student directory.
func (h *RecruiterHandler) SearchCandidates(c echo.Context) error {
	var req SearchCandidatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid candidate query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.directoryUC.Search(c.Request().Context(), &usecase.SearchCandidatesInput{
		Filter: directory.Filter{
			Name:           req.Name,
			Search:         req.Search,
			Major:          req.Major,
			GraduationYear: req.GraduationYear,
			School:         req.School,
			VisaStatuses:   splitValues(req.VisaStatus),
		},
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CandidatesResponse{
		Candidates:   out.Candidates,
		MatchedCount: out.MatchedCount,
		TotalCount:   out.TotalCount,
		Page:         out.Page,
		PageSize:     out.PageSize,
	})
}

// RecordHire appends a hire under the recruiter's company.
func (h *RecruiterHandler) RecordHire(c echo.Context) error {
	recruiter, ok := middleware.GetRecruiter(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req RecordHireRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hire input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.hiringUC.RecordHire(c.Request().Context(), &usecase.RecordHireInput{
		RecruiterID:   recruiter.User.ID,
		Company:       recruiter.Profile.Company,
		StudentEmail:  req.StudentEmail,
		StudentName:   req.StudentName,
		PositionTitle: req.PositionTitle,
		Cycle:         req.Cycle,
		Notes:         req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// ListHires returns the recruiter's hiring records, newest first.
func (h *RecruiterHandler) ListHires(c echo.Context) error {
	recruiter, ok := middleware.GetRecruiter(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	records, err := h.hiringUC.ListByRecruiter(c.Request().Context(), recruiter.User.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// HireStatus reports whether the recruiter has hired the given email.
func (h *RecruiterHandler) HireStatus(c echo.Context) error {
	recruiter, ok := middleware.GetRecruiter(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var req HireStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	hired, err := h.hiringUC.IsHired(c.Request().Context(), recruiter.User.ID, req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HireStatusResponse{Email: req.Email, Hired: hired})
}

// UpdateHire changes a record owned by the recruiter.
func (h *RecruiterHandler) UpdateHire(c echo.Context) error {
	recruiter, ok := middleware.GetRecruiter(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hiring record ID")
	}

	var req UpdateHireRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hire update")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateHiringInput{
		PositionTitle: req.PositionTitle,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		status := entity.HiringStatus(*req.Status)
		input.Status = &status
	}

	record, err := h.hiringUC.UpdateStatus(c.Request().Context(), recruiter.User.ID, recordID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

func splitValues(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// MajorCountResponse is one row of the major breakdown.
type MajorCountResponse struct {
	Major      string  `json:"major"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatsResponse is the recruiter's analytics view.
type StatsResponse struct {
	TotalStudents int                  `json:"total_students"`
	StudentsHired int                  `json:"students_hired"`
	HiringRate    float64              `json:"hiring_rate"`
	Majors        []MajorCountResponse `json:"majors"`
	Undeclared    int                  `json:"undeclared"`
}

// Stats returns directory and hiring totals for the recruiter.
func (h *RecruiterHandler) Stats(c echo.Context) error {
	recruiter, ok := middleware.GetRecruiter(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	stats, err := h.hiringUC.Stats(c.Request().Context(), recruiter.User.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	majors := make([]MajorCountResponse, 0, len(stats.Majors))
	for _, m := range stats.Majors {
		majors = append(majors, MajorCountResponse(m))
	}

	return response.Success(c, http.StatusOK, StatsResponse{
		TotalStudents: stats.TotalStudents,
		StudentsHired: stats.StudentsHired,
		HiringRate:    stats.HiringRate,
		Majors:        majors,
		Undeclared:    stats.Undeclared,
	})
}
