package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/actuallystonmai/course-finder/internal/catalog"
	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/actuallystonmai/course-finder/internal/inflight"
	"github.com/actuallystonmai/course-finder/internal/logger"
	"github.com/actuallystonmai/course-finder/internal/model"
	"github.com/actuallystonmai/course-finder/internal/youtube"
)

// Searcher is the external video search. A nil Searcher selects static mode.
type Searcher interface {
	Search(ctx context.Context, interest string) ([]domain.Course, error)
}

type Service struct {
	catalog  *catalog.Catalog
	searcher Searcher
	guard    inflight.Guard
	log      *logger.Logger
}

func NewService(cat *catalog.Catalog, searcher Searcher, guard inflight.Guard, log *logger.Logger) *Service {
	return &Service{
		catalog:  cat,
		searcher: searcher,
		guard:    guard,
		log:      log.Component("service"),
	}
}

func (s *Service) ExternalMode() bool {
	return s.searcher != nil
}

// Recommend turns free-text interests into a course list. A session may
// only have one submission outstanding; overlapping ones are rejected with
// domain.ErrSubmissionInFlight.
func (s *Service) Recommend(ctx context.Context, session, interest string) (*domain.Recommendation, error) {
	interest = strings.TrimSpace(interest)
	if interest == "" {
		return nil, domain.ErrEmptyInterest
	}

	release, err := s.acquire(ctx, session)
	if err != nil {
		return nil, err
	}
	defer release()

	if s.searcher == nil {
		return s.recommendStatic(interest)
	}
	return s.recommendExternal(ctx, interest)
}

func (s *Service) recommendStatic(interest string) (*domain.Recommendation, error) {
	category := model.Classify(interest)
	courses, err := s.catalog.Courses(category)
	if err != nil {
		return nil, err
	}

	s.log.Debug("classified interest", "interest", interest, "category", category)
	return &domain.Recommendation{
		Category: category,
		Source:   domain.SourceStatic,
		Courses:  courses,
	}, nil
}

func (s *Service) recommendExternal(ctx context.Context, interest string) (*domain.Recommendation, error) {
	courses, err := s.searcher.Search(ctx, interest)
	if err == nil {
		return &domain.Recommendation{
			Source:  domain.SourceExternal,
			Courses: courses,
		}, nil
	}

	// Degrade to the curated general list and tell the user why.
	s.log.Warn("external search failed, serving general courses", "interest", interest, "error", err)
	fallback, lookupErr := s.catalog.Courses(domain.CategoryGeneral)
	if lookupErr != nil {
		return nil, fmt.Errorf("fallback after search error %v: %w", err, lookupErr)
	}
	return &domain.Recommendation{
		Category: domain.CategoryGeneral,
		Source:   domain.SourceStatic,
		Courses:  fallback,
		Notice:   youtube.UserMessage(err),
	}, nil
}

// Popular returns the curated general list without classifying anything.
func (s *Service) Popular(_ context.Context) (*domain.Recommendation, error) {
	courses, err := s.catalog.Courses(domain.CategoryGeneral)
	if err != nil {
		return nil, err
	}
	return &domain.Recommendation{
		Category: domain.CategoryGeneral,
		Source:   domain.SourcePopular,
		Courses:  courses,
	}, nil
}

// ByCategory returns the curated list for an explicitly named category.
func (s *Service) ByCategory(_ context.Context, name string) (*domain.Recommendation, error) {
	category, err := domain.ParseCategory(name)
	if err != nil {
		return nil, err
	}
	courses, err := s.catalog.Courses(category)
	if err != nil {
		return nil, err
	}
	return &domain.Recommendation{
		Category: category,
		Source:   domain.SourceStatic,
		Courses:  courses,
	}, nil
}

// acquire takes the session's in-flight slot. If the guard backend itself
// fails the submission goes ahead unguarded.
func (s *Service) acquire(ctx context.Context, session string) (func(), error) {
	token, err := s.guard.Acquire(ctx, session)
	if errors.Is(err, domain.ErrSubmissionInFlight) {
		return nil, err
	}
	if err != nil {
		s.log.Error("in-flight guard unavailable", "session", session, "error", err)
		return func() {}, nil
	}

	return func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), session, token); err != nil {
			s.log.Error("release in-flight slot", "session", session, "error", err)
		}
	}, nil
}
