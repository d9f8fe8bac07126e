package workspace

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// getCurrentUserHandler handles the get_current_user tool.
// The current-user lookup only exists on the legacy API surface.
func getCurrentUserHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("getting current user", func() (interface{}, error) {
		res, err := c.GetCurrentPerson(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getUserHandler handles the get_user tool
func getUserHandler(client interface{}, params map[string]interface{}) (string, error) {
	userID, err := paramutil.ExtractRequiredString(params, "user_id")
	if err != nil {
		return envelope.MissingParameter("user_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting user %s", userID), func() (interface{}, error) {
		res, err := c.GetPerson(ctx, userID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
