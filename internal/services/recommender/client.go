package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/moodflix/moodflix/internal/config"
	"github.com/moodflix/moodflix/internal/models"
	"github.com/sirupsen/logrus"
)

// StatusError is returned when the recommendation service answers with a
// non-2xx status. Body holds the response body text, read best-effort.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("recommendation service returned status %d: %s", e.StatusCode, e.Body)
}

// Client handles communication with the recommendation service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new recommendation service client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.APIBase == "" {
		return nil, fmt.Errorf("API base URL is required")
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.APIBase, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}, nil
}

// doRequest performs an HTTP request against the recommendation service and
// decodes the JSON response into result when result is non-nil
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	fullURL := c.baseURL + path
	c.logger.WithFields(logrus.Fields{
		"method": method,
		"url":    fullURL,
	}).Debug("Making recommendation service request")

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Non-2xx carries the status code and body text back to the caller
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Recommendations requests a page of movie recommendations
func (c *Client) Recommendations(ctx context.Context, request models.RecommendationRequest) ([]models.Recommendation, error) {
	c.logger.WithFields(logrus.Fields{
		"user": request.UserExternalID,
		"page": request.Page,
	}).Debug("Requesting recommendations")

	var recommendations []models.Recommendation
	if err := c.doRequest(ctx, http.MethodPost, "/recommendations", request, &recommendations); err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(recommendations)).Debug("Recommendations received")
	return recommendations, nil
}

// History retrieves one page of previously served recommendations
func (c *Client) History(ctx context.Context, externalID string, page, size int) (*models.HistoryPage, error) {
	params := url.Values{}
	params.Set("userExternalId", externalID)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var history models.HistoryPage
	if err := c.doRequest(ctx, http.MethodGet, "/history?"+params.Encode(), nil, &history); err != nil {
		return nil, err
	}

	return &history, nil
}

// Profile retrieves the user profile stored by the recommendation service
func (c *Client) Profile(ctx context.Context, externalID string) (*models.UserProfile, error) {
	params := url.Values{}
	params.Set("externalId", externalID)

	var profile models.UserProfile
	if err := c.doRequest(ctx, http.MethodGet, "/user?"+params.Encode(), nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// SaveProfile stores the user profile on the recommendation service
func (c *Client) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	return c.doRequest(ctx, http.MethodPost, "/user", profile, nil)
}

// Ping checks whether the recommendation service is reachable. Any HTTP
// response counts as reachable, only transport failures do not.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("recommendation service unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return nil
}
