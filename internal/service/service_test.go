package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/actuallystonmai/course-finder/internal/catalog"
	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/actuallystonmai/course-finder/internal/inflight"
	"github.com/actuallystonmai/course-finder/internal/logger"
	"github.com/actuallystonmai/course-finder/internal/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	mu      sync.Mutex
	calls   []string
	courses []domain.Course
	err     error
	entered chan struct{}
	unblock chan struct{}
}

func (s *stubSearcher) Search(ctx context.Context, interest string) ([]domain.Course, error) {
	s.mu.Lock()
	s.calls = append(s.calls, interest)
	s.mu.Unlock()

	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.unblock != nil {
		<-s.unblock
	}
	return s.courses, s.err
}

type brokenGuard struct{}

func (brokenGuard) Acquire(context.Context, string) (string, error) {
	return "", errors.New("redis: connection refused")
}

func (brokenGuard) Release(context.Context, string, string) error { return nil }

func newStatic() *Service {
	return NewService(catalog.Builtin(), nil, inflight.NewMemoryGuard(time.Minute), logger.Discard())
}

func general(t *testing.T) []domain.Course {
	t.Helper()
	list, err := catalog.Builtin().Courses(domain.CategoryGeneral)
	require.NoError(t, err)
	return list
}

func TestRecommendStatic(t *testing.T) {
	svc := newStatic()
	assert.False(t, svc.ExternalMode())

	rec, err := svc.Recommend(context.Background(), "s1", "I want to learn react and webdev")
	require.NoError(t, err)

	want, err := catalog.Builtin().Courses(domain.CategoryProgramming)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryProgramming, rec.Category)
	assert.Equal(t, domain.SourceStatic, rec.Source)
	assert.Len(t, rec.Courses, 5)
	assert.Equal(t, want, rec.Courses)
	assert.Empty(t, rec.Notice)
}

func TestRecommendStaticCategories(t *testing.T) {
	svc := newStatic()
	tests := map[string]domain.Category{
		"learning data structures": domain.CategoryProgramming,
		"figma":                    domain.CategoryDesign,
		"marketing":                domain.CategoryBusiness,
		"sql":                      domain.CategoryData,
		"woodworking":              domain.CategoryGeneral,
	}
	for interest, want := range tests {
		rec, err := svc.Recommend(context.Background(), "s1", interest)
		require.NoError(t, err, interest)
		assert.Equal(t, want, rec.Category, interest)
		assert.NotEmpty(t, rec.Courses, interest)
	}
}

func TestRecommendEmptyInterest(t *testing.T) {
	_, err := newStatic().Recommend(context.Background(), "s1", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyInterest)
}

func TestRecommendExternal(t *testing.T) {
	found := []domain.Course{{
		Title:       "Rust Crash Course",
		Channel:     "Traversy Media",
		Description: "Rust...",
		URL:         "https://www.youtube.com/watch?v=zF34dRivLOw",
		Duration:    "1h 30m",
		Level:       domain.LevelIntermediate,
	}}
	searcher := &stubSearcher{courses: found}
	svc := NewService(catalog.Builtin(), searcher, inflight.NewMemoryGuard(time.Minute), logger.Discard())
	assert.True(t, svc.ExternalMode())

	rec, err := svc.Recommend(context.Background(), "s1", "  rust  ")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceExternal, rec.Source)
	assert.Equal(t, found, rec.Courses)
	assert.Empty(t, rec.Category)
	assert.Equal(t, []string{"rust"}, searcher.calls)
}

func TestRecommendExternalFailureFallsBack(t *testing.T) {
	searcher := &stubSearcher{err: &youtube.UpstreamError{Msg: "quota exceeded", Err: errors.New("403")}}
	svc := NewService(catalog.Builtin(), searcher, inflight.NewMemoryGuard(time.Minute), logger.Discard())

	rec, err := svc.Recommend(context.Background(), "s1", "rust")
	require.NoError(t, err)
	assert.Equal(t, general(t), rec.Courses)
	assert.Equal(t, domain.CategoryGeneral, rec.Category)
	assert.Equal(t, "quota exceeded", rec.Notice)
}

func TestRecommendExternalGenericFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("dial tcp: i/o timeout")}
	svc := NewService(catalog.Builtin(), searcher, inflight.NewMemoryGuard(time.Minute), logger.Discard())

	rec, err := svc.Recommend(context.Background(), "s1", "rust")
	require.NoError(t, err)
	assert.Equal(t, general(t), rec.Courses)
	assert.Equal(t, "Failed to fetch courses from YouTube", rec.Notice)
}

func TestRecommendRejectsOverlappingSubmission(t *testing.T) {
	searcher := &stubSearcher{
		entered: make(chan struct{}, 1),
		unblock: make(chan struct{}),
	}
	svc := NewService(catalog.Builtin(), searcher, inflight.NewMemoryGuard(time.Minute), logger.Discard())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Recommend(context.Background(), "s1", "go")
		done <- err
	}()
	<-searcher.entered

	_, err := svc.Recommend(context.Background(), "s1", "rust")
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)

	close(searcher.unblock)
	require.NoError(t, <-done)

	// slot is free again once the first submission settled
	_, err = svc.Recommend(context.Background(), "s1", "rust")
	assert.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, searcher.calls)
}

func TestRecommendProceedsWhenGuardBroken(t *testing.T) {
	svc := NewService(catalog.Builtin(), nil, brokenGuard{}, logger.Discard())

	rec, err := svc.Recommend(context.Background(), "s1", "figma")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryDesign, rec.Category)
}

func TestPopular(t *testing.T) {
	rec, err := newStatic().Popular(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourcePopular, rec.Source)
	assert.Equal(t, general(t), rec.Courses)
}

func TestByCategory(t *testing.T) {
	svc := newStatic()

	rec, err := svc.ByCategory(context.Background(), "Design")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryDesign, rec.Category)
	assert.Len(t, rec.Courses, 2)

	_, err = svc.ByCategory(context.Background(), "cooking")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestEmptyCatalogSurfacesEmptyCategory(t *testing.T) {
	empty, err := catalog.New(map[domain.Category][]domain.Course{})
	require.NoError(t, err)
	svc := NewService(empty, nil, inflight.NewMemoryGuard(time.Minute), logger.Discard())

	_, err = svc.Recommend(context.Background(), "s1", "figma")
	assert.ErrorIs(t, err, domain.ErrEmptyCategory)
}
