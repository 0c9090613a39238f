package impl

import (
	"context"
	"log/slog"

	"recruit/config"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/directory"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/errors"
	"recruit/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/text/language"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type directoryService struct {
	userRepo        repository.UserRepository
	engine          *directory.Engine
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDirectoryService builds the candidate directory. An unparsable
// collation tag falls back to English ordering.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	srv := &directoryService{
		userRepo:        params.UserRepo,
		engine:          directory.NewEngine(language.English),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}

	if cfg := params.Config; cfg != nil && cfg.Directory != nil {
		if cfg.Directory.Collation != "" {
			tag, err := language.Parse(cfg.Directory.Collation)
			if err != nil {
				params.Logger.Warn("Invalid directory collation, using English",
					slog.String("collation", cfg.Directory.Collation), slog.Any("error", err))
			} else {
				srv.engine = directory.NewEngine(tag)
			}
		}
		if cfg.Directory.MaxPageSize > 0 {
			srv.maxPageSize = cfg.Directory.MaxPageSize
		}
		if cfg.Directory.DefaultPageSize > 0 {
			srv.defaultPageSize = min(cfg.Directory.DefaultPageSize, srv.maxPageSize)
		}
	}

	return srv
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search loads every student, runs the query and then cuts the requested
// page, so the counts always describe the whole result.
func (srv *directoryService) Search(ctx context.Context, input *usecase.SearchCandidatesInput) (*usecase.SearchCandidatesOutput, error) {
	order, err := directory.ParseSort(input.SortBy, input.SortOrder)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	students, err := srv.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	candidates := make([]entity.Candidate, 0, len(students))
	for _, student := range students {
		candidates = append(candidates, entity.NewCandidate(student))
	}

	result := srv.engine.Query(candidates, input.Filter, order)

	page, pageSize := srv.pagination(input.Page, input.PageSize)
	start := len(result.Candidates)
	// Compare in pages first so huge page numbers cannot overflow the offset
	if page-1 < (len(result.Candidates)+pageSize-1)/pageSize {
		start = (page - 1) * pageSize
	}
	end := min(start+pageSize, len(result.Candidates))

	srv.log(ctx).Debug("Directory search",
		slog.Int("matched", result.MatchedCount),
		slog.Int("total", result.TotalCount),
		slog.Int("page", page),
	)

	return &usecase.SearchCandidatesOutput{
		Candidates:   result.Candidates[start:end],
		MatchedCount: result.MatchedCount,
		TotalCount:   result.TotalCount,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

func (srv *directoryService) pagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = srv.defaultPageSize
	}

	return page, min(pageSize, srv.maxPageSize)
}
