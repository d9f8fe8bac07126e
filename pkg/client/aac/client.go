// Package aac provides the client for the Analytics Cloud current (v4) API.
// It covers the schedule, plan, workspace and person resource families.
package aac

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aac-tools/aac-mcp-server/pkg/config"
)

// Client provides methods for interacting with the Analytics Cloud v4 API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new v4 API client from the static configuration.
func NewClient(cfg *config.StaticConfig) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.APIURL, "/"),
		token:      cfg.APIToken,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// do performs one API request and decodes the response body.
// A 404 response or an empty success body yields (nil, nil): the platform
// reports missing resources both ways and callers treat them identically.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (Resource, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s %s failed: %s: %s", method, path, resp.Status, strings.TrimSpace(string(data)))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var result Resource
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (Resource, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// ListSchedules returns all schedules in the workspace.
func (c *Client) ListSchedules(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v4/schedules", nil)
}

// GetSchedule returns a specific schedule, or nil if it does not exist.
func (c *Client) GetSchedule(ctx context.Context, scheduleID string) (*Schedule, error) {
	raw, err := c.get(ctx, "/v4/schedules/"+url.PathEscape(scheduleID), nil)
	if err != nil || raw == nil {
		return nil, err
	}
	return newSchedule(scheduleID, raw), nil
}

// CreateSchedule creates a new schedule.
func (c *Client) CreateSchedule(ctx context.Context, req *ScheduleCreateRequest) (Resource, error) {
	return c.do(ctx, http.MethodPost, "/v4/schedules", nil, req)
}

// UpdateSchedule updates an existing schedule.
func (c *Client) UpdateSchedule(ctx context.Context, req *ScheduleUpdateRequest, scheduleID string) (Resource, error) {
	return c.do(ctx, http.MethodPut, "/v4/schedules/"+url.PathEscape(scheduleID), nil, req)
}

// DeleteSchedule deletes a schedule.
func (c *Client) DeleteSchedule(ctx context.Context, scheduleID string) (Resource, error) {
	return c.do(ctx, http.MethodDelete, "/v4/schedules/"+url.PathEscape(scheduleID), nil, nil)
}

// EnableSchedule enables a schedule.
func (c *Client) EnableSchedule(ctx context.Context, scheduleID string) (Resource, error) {
	return c.do(ctx, http.MethodPost, "/v4/schedules/"+url.PathEscape(scheduleID)+"/enable", nil, nil)
}

// DisableSchedule disables a schedule.
func (c *Client) DisableSchedule(ctx context.Context, scheduleID string) (Resource, error) {
	return c.do(ctx, http.MethodPost, "/v4/schedules/"+url.PathEscape(scheduleID)+"/disable", nil, nil)
}

// CountSchedules returns the schedule count for the workspace.
func (c *Client) CountSchedules(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v4/schedules/count", nil)
}

// ListPlans returns all plans.
func (c *Client) ListPlans(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v4/plans", nil)
}

// CountPlans returns the plan count.
func (c *Client) CountPlans(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v4/plans/count", nil)
}

// ReadPlan returns a plan with its full definition, or nil if it does not
// exist.
func (c *Client) ReadPlan(ctx context.Context, planID string) (*Plan, error) {
	raw, err := c.get(ctx, "/v4/plans/"+url.PathEscape(planID)+"/full", nil)
	if err != nil || raw == nil {
		return nil, err
	}
	return &Plan{ID: planID, raw: raw}, nil
}

// GetSchedulesForPlan returns the schedules attached to a plan.
func (c *Client) GetSchedulesForPlan(ctx context.Context, planID string) (Resource, error) {
	return c.get(ctx, "/v4/plans/"+url.PathEscape(planID)+"/schedules", nil)
}

// DeletePlan deletes a plan.
func (c *Client) DeletePlan(ctx context.Context, planID string) (Resource, error) {
	return c.do(ctx, http.MethodDelete, "/v4/plans/"+url.PathEscape(planID), nil, nil)
}

// RunPlan triggers a plan run.
func (c *Client) RunPlan(ctx context.Context, planID string) (Resource, error) {
	return c.do(ctx, http.MethodPost, "/v4/plans/"+url.PathEscape(planID)+"/run", nil, nil)
}

// ReadCurrentWorkspace returns the workspace of the authenticated user.
func (c *Client) ReadCurrentWorkspace(ctx context.Context) (Resource, error) {
	return c.get(ctx, "/v4/workspaces/current", nil)
}

// GetWorkspace returns a specific workspace, or nil if it does not exist.
func (c *Client) GetWorkspace(ctx context.Context, workspaceID string) (Resource, error) {
	return c.get(ctx, "/v4/workspaces/"+url.PathEscape(workspaceID), nil)
}

// GetConfigurationForWorkspace returns the configuration of a workspace, or
// nil if the workspace does not exist.
func (c *Client) GetConfigurationForWorkspace(ctx context.Context, workspaceID string) (Resource, error) {
	return c.get(ctx, "/v4/workspaces/"+url.PathEscape(workspaceID)+"/configuration", nil)
}

// ListWorkspaceUsers returns the users of a workspace.
func (c *Client) ListWorkspaceUsers(ctx context.Context, workspaceID string) (Resource, error) {
	return c.get(ctx, "/v4/workspaces/"+url.PathEscape(workspaceID)+"/users", nil)
}

// ListWorkspaceAdmins returns the admins of a workspace via the person API.
func (c *Client) ListWorkspaceAdmins(ctx context.Context, workspaceID string) (Resource, error) {
	query := url.Values{}
	query.Set("workspaceId", workspaceID)
	query.Set("role", "admin")
	return c.get(ctx, "/v4/people", query)
}

// GetPerson returns a specific person, or nil if they do not exist.
func (c *Client) GetPerson(ctx context.Context, userID string) (Resource, error) {
	return c.get(ctx, "/v4/people/"+url.PathEscape(userID), nil)
}
