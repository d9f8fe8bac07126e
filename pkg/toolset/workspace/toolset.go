package workspace

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// Toolset implements the workspace and user toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "workspace"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Workspace and user operations including membership and configuration lookups"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "list_workspaces",
				Description: "List all workspaces available to the current user",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:   paramutil.BoolPtr(true),
				RequiresLegacy: paramutil.BoolPtr(true),
			},
			Handler: listWorkspacesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_current_workspace",
				Description: "Get information about the current workspace",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: getCurrentWorkspaceHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_workspace_configuration",
				Description: "Get the configuration of a workspace",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"workspace_id": map[string]any{
							"type":        "string",
							"description": "The ID of the workspace",
						},
					},
					Required: []string{"workspace_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: getWorkspaceConfigurationHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_workspace_users",
				Description: "List the users of a workspace",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"workspace_id": map[string]any{
							"type":        "string",
							"description": "The ID of the workspace",
						},
					},
					Required: []string{"workspace_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: listWorkspaceUsersHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_workspace_admins",
				Description: "List the admins of a workspace",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"workspace_id": map[string]any{
							"type":        "string",
							"description": "The ID of the workspace",
						},
					},
					Required: []string{"workspace_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: listWorkspaceAdminsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_current_user",
				Description: "Get the current user",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:   paramutil.BoolPtr(true),
				RequiresLegacy: paramutil.BoolPtr(true),
			},
			Handler: getCurrentUserHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_user",
				Description: "Get user details by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"user_id": map[string]any{
							"type":        "string",
							"description": "The ID of the user to retrieve",
						},
					},
					Required: []string{"user_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint: paramutil.BoolPtr(true),
			},
			Handler: getUserHandler,
		},
	}
}
