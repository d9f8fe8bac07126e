package scheduling

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// Toolset implements the schedule and plan toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "scheduling"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Schedule and plan operations for the Analytics Cloud scheduling surface"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "list_schedules",
				Description: "List all schedules in the workspace",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: listSchedulesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_schedule",
				Description: "Get details of a specific schedule by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"schedule_id": map[string]any{
							"type":        "string",
							"description": "The ID of the schedule to retrieve",
						},
					},
					Required: []string{"schedule_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: getScheduleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "create_schedule",
				Description: "Create a new schedule",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"schedule_data": map[string]any{
							"type":        "object",
							"description": "Schedule configuration data; unknown keys are ignored",
						},
					},
					Required: []string{"schedule_data"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(false),
			},
			Handler: createScheduleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "update_schedule",
				Description: "Update an existing schedule",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"schedule_id": map[string]any{
							"type":        "string",
							"description": "The ID of the schedule to update",
						},
						"schedule_data": map[string]any{
							"type":        "object",
							"description": "Updated schedule data; unknown keys are ignored",
						},
					},
					Required: []string{"schedule_id", "schedule_data"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(false),
			},
			Handler: updateScheduleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "delete_schedule",
				Description: "Delete a schedule by ID; enabled schedules cannot be deleted",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"schedule_id": map[string]any{
							"type":        "string",
							"description": "The ID of the schedule to delete",
						},
					},
					Required: []string{"schedule_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:    paramutil.BoolPtr(false),
				DestructiveHint: paramutil.BoolPtr(true),
			},
			Handler: deleteScheduleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "enable_schedule",
				Description: "Enable a schedule by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"schedule_id": map[string]any{
							"type":        "string",
							"description": "The ID of the schedule to enable",
						},
					},
					Required: []string{"schedule_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(false),
			},
			Handler: enableScheduleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "disable_schedule",
				Description: "Disable a schedule by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"schedule_id": map[string]any{
							"type":        "string",
							"description": "The ID of the schedule to disable",
						},
					},
					Required: []string{"schedule_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(false),
			},
			Handler: disableScheduleHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "count_schedules",
				Description: "Get the count of schedules in the workspace",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: countSchedulesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_plans",
				Description: "List all plans with their details",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: listPlansHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "count_plans",
				Description: "Get the count of plans",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: countPlansHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_plan",
				Description: "Get a plan by ID with its full definition",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"plan_id": map[string]any{
							"type":        "string",
							"description": "The ID of the plan to retrieve",
						},
					},
					Required: []string{"plan_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: getPlanHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_plan_schedules",
				Description: "Get the schedules attached to a plan by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"plan_id": map[string]any{
							"type":        "string",
							"description": "The ID of the plan to get the schedules for",
						},
					},
					Required: []string{"plan_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: getPlanSchedulesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "delete_plan",
				Description: "Delete a plan by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"plan_id": map[string]any{
							"type":        "string",
							"description": "The ID of the plan to delete",
						},
					},
					Required: []string{"plan_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:    paramutil.BoolPtr(false),
				DestructiveHint: paramutil.BoolPtr(true),
			},
			Handler: deletePlanHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "run_plan",
				Description: "Run a plan by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"plan_id": map[string]any{
							"type":        "string",
							"description": "The ID of the plan to run",
						},
					},
					Required: []string{"plan_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(false),
			},
			Handler: runPlanHandler,
		},
	}
}
