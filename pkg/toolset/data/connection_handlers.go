package data

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// listConnectionsHandler handles the list_connections tool
func listConnectionsHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("listing connections", func() (interface{}, error) {
		res, err := c.ListConnections(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getConnectionHandler handles the get_connection tool
func getConnectionHandler(client interface{}, params map[string]interface{}) (string, error) {
	connectionID, err := paramutil.ExtractRequiredString(params, "connection_id")
	if err != nil {
		return envelope.MissingParameter("connection_id"), nil
	}

	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting connection %s", connectionID), func() (interface{}, error) {
		res, err := c.GetConnection(ctx, connectionID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getConnectionStatusHandler handles the get_connection_status tool.
// The status probe on a missing connection returns an unhelpful backend
// error, so existence is confirmed first.
func getConnectionStatusHandler(client interface{}, params map[string]interface{}) (string, error) {
	connectionID, err := paramutil.ExtractRequiredString(params, "connection_id")
	if err != nil {
		return envelope.MissingParameter("connection_id"), nil
	}

	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("getting connection status %s", connectionID), &envelope.Precondition{
		Resource: "Connection",
		ID:       connectionID,
		Lookup: func() (interface{}, error) {
			connection, err := c.GetConnection(ctx, connectionID)
			if err != nil {
				return nil, err
			}
			return connection, nil
		},
	}, func() (interface{}, error) {
		res, err := c.GetConnectionStatus(ctx, connectionID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
