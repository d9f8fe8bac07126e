package workspace

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// listWorkspacesHandler handles the list_workspaces tool.
// Workspace enumeration is only available on the legacy API surface.
func listWorkspacesHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("listing workspaces", func() (interface{}, error) {
		res, err := c.ListWorkspaces(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getCurrentWorkspaceHandler handles the get_current_workspace tool
func getCurrentWorkspaceHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("getting current workspace", func() (interface{}, error) {
		res, err := c.ReadCurrentWorkspace(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getWorkspaceConfigurationHandler handles the get_workspace_configuration tool
func getWorkspaceConfigurationHandler(client interface{}, params map[string]interface{}) (string, error) {
	workspaceID, err := paramutil.ExtractRequiredString(params, "workspace_id")
	if err != nil {
		return envelope.MissingParameter("workspace_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting workspace configuration for %s", workspaceID), func() (interface{}, error) {
		res, err := c.GetConfigurationForWorkspace(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// listWorkspaceUsersHandler handles the list_workspace_users tool
func listWorkspaceUsersHandler(client interface{}, params map[string]interface{}) (string, error) {
	workspaceID, err := paramutil.ExtractRequiredString(params, "workspace_id")
	if err != nil {
		return envelope.MissingParameter("workspace_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run("listing workspace users", &envelope.Precondition{
		Resource: "Workspace",
		ID:       workspaceID,
		Lookup: func() (interface{}, error) {
			workspace, err := c.GetWorkspace(ctx, workspaceID)
			if err != nil {
				return nil, err
			}
			return workspace, nil
		},
	}, func() (interface{}, error) {
		res, err := c.ListWorkspaceUsers(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// listWorkspaceAdminsHandler handles the list_workspace_admins tool.
// This is the one operation needing both backend handles: the workspace
// handle confirms existence, the person handle lists the admins.
func listWorkspaceAdminsHandler(client interface{}, params map[string]interface{}) (string, error) {
	workspaceID, err := paramutil.ExtractRequiredString(params, "workspace_id")
	if err != nil {
		return envelope.MissingParameter("workspace_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run("listing workspace admins", &envelope.Precondition{
		Resource: "Workspace",
		ID:       workspaceID,
		Lookup: func() (interface{}, error) {
			configuration, err := c.GetConfigurationForWorkspace(ctx, workspaceID)
			if err != nil {
				return nil, err
			}
			return configuration, nil
		},
	}, func() (interface{}, error) {
		res, err := c.ListWorkspaceAdmins(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
