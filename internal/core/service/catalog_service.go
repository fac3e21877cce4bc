package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/core/ports"
)

// CatalogService exposes the read-only browse endpoints: courses,
// categories, the user's enrollments and certificates, and landing
// slides. These are thin pipeline consumers with no local state.
type CatalogService struct {
	api ports.API
	log zerolog.Logger
}

func NewCatalogService(api ports.API, log zerolog.Logger) *CatalogService {
	return &CatalogService{api: api, log: log}
}

// CourseFilter narrows a course listing. Zero values mean "no filter".
type CourseFilter struct {
	Page       int
	CategoryID int
	Search     string
}

func (f CourseFilter) query() string {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.CategoryID > 0 {
		q.Set("category_id", strconv.Itoa(f.CategoryID))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (s *CatalogService) Courses(ctx context.Context, filter CourseFilter) (*domain.Paginated[domain.Course], error) {
	var res domain.Paginated[domain.Course]
	if err := s.api.Get(ctx, "/courses"+filter.query(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *CatalogService) Course(ctx context.Context, id int) (*domain.Course, error) {
	var res domain.Response[domain.Course]
	if err := s.api.Get(ctx, fmt.Sprintf("/courses/%d", id), &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	var res domain.Response[[]domain.Category]
	if err := s.api.Get(ctx, "/categories", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *CatalogService) Enrollments(ctx context.Context, page int) (*domain.Paginated[domain.Enrollment], error) {
	path := "/enrollments"
	if page > 0 {
		path += "?page=" + strconv.Itoa(page)
	}
	var res domain.Paginated[domain.Enrollment]
	if err := s.api.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *CatalogService) Certificates(ctx context.Context, page int) (*domain.Paginated[domain.Certificate], error) {
	path := "/certificates"
	if page > 0 {
		path += "?page=" + strconv.Itoa(page)
	}
	var res domain.Paginated[domain.Certificate]
	if err := s.api.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *CatalogService) Slides(ctx context.Context) ([]domain.Slide, error) {
	var res domain.Response[[]domain.Slide]
	if err := s.api.Get(ctx, "/slides", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}
