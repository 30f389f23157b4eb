// Package youtube searches the YouTube Data API for long-form course videos
// and normalizes the hits into course records.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/actuallystonmai/course-finder/internal/logger"
	"github.com/actuallystonmai/course-finder/internal/model"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const (
	querySuffix     = " full course tutorial"
	maxResults      = 9
	defaultTimeout  = 10 * time.Second
	fallbackMessage = "Failed to fetch courses from YouTube"
)

var (
	searchParts  = []string{"snippet"}
	detailsParts = []string{"contentDetails", "snippet"}
)

type Config struct {
	APIKey string
	// Endpoint overrides the API base URL; empty means the public endpoint.
	Endpoint string
	Timeout  time.Duration
}

type Client struct {
	service *yt.Service
	timeout time.Duration
	log     *logger.Logger
}

func NewClient(ctx context.Context, cfg Config, log *logger.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingCredential
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		service: svc,
		timeout: cfg.Timeout,
		log:     log.Component("youtube"),
	}, nil
}

// UpstreamError reports a failed search. Msg is safe to show to end users.
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube: %s: %v", e.Msg, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func IsUpstreamError(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// UserMessage extracts the user-facing message from err, falling back to a
// generic one.
func UserMessage(err error) string {
	var target *UpstreamError
	if errors.As(err, &target) && target.Msg != "" {
		return target.Msg
	}
	return fallbackMessage
}

// Search runs the keyword search and then one batched details lookup.
// Either call failing fails the whole search.
func (c *Client) Search(ctx context.Context, interest string) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ids, err := c.searchVideoIDs(ctx, interest)
	if err != nil {
		return nil, upstream(err)
	}
	if len(ids) == 0 {
		c.log.Info("search returned no videos", "interest", interest)
		return []domain.Course{}, nil
	}

	videos, err := c.service.Videos.List(detailsParts).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstream(err)
	}

	courses := make([]domain.Course, 0, len(videos.Items))
	for _, v := range videos.Items {
		courses = append(courses, model.NormalizeVideo(metadata(v)))
	}

	c.log.Debug("search complete", "interest", interest, "candidates", len(ids), "courses", len(courses))
	return courses, nil
}

func (c *Client) searchVideoIDs(ctx context.Context, interest string) ([]string, error) {
	resp, err := c.service.Search.List(searchParts).
		Q(interest + querySuffix).
		Type("video").
		VideoDuration("long").
		MaxResults(maxResults).
		Order("relevance").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}
	return ids, nil
}

func metadata(v *yt.Video) model.VideoMetadata {
	m := model.VideoMetadata{ID: v.Id}
	if v.Snippet != nil {
		m.Title = v.Snippet.Title
		m.Channel = v.Snippet.ChannelTitle
		m.Description = v.Snippet.Description
	}
	if v.ContentDetails != nil {
		m.Duration = v.ContentDetails.Duration
	}
	return m
}

func upstream(err error) error {
	msg := fallbackMessage
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return &UpstreamError{Msg: msg, Err: err}
}
