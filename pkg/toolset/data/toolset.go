package data

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// Toolset implements the dataset, connection and publication toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "data"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Dataset, connection, publication and wrangled dataset operations"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []toolset.ServerTool {
	legacy := toolset.ToolAnnotations{
		ReadOnlyHint:   paramutil.BoolPtr(true),
		RequiresLegacy: paramutil.BoolPtr(true),
	}

	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "list_datasets",
				Description: "List all datasets in the library",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: legacy,
			Handler:     listDatasetsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_dataset",
				Description: "Get a dataset by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"dataset_id": map[string]any{
							"type":        "string",
							"description": "The ID of the dataset to retrieve",
						},
					},
					Required: []string{"dataset_id"},
				},
			},
			Annotations: legacy,
			Handler:     getDatasetHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_connections",
				Description: "List all connections",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: legacy,
			Handler:     listConnectionsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_connection",
				Description: "Get a connection by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"connection_id": map[string]any{
							"type":        "string",
							"description": "The ID of the connection to retrieve",
						},
					},
					Required: []string{"connection_id"},
				},
			},
			Annotations: legacy,
			Handler:     getConnectionHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_connection_status",
				Description: "Get the status of a connection by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"connection_id": map[string]any{
							"type":        "string",
							"description": "The ID of the connection to check",
						},
					},
					Required: []string{"connection_id"},
				},
			},
			Annotations: legacy,
			Handler:     getConnectionStatusHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_publications",
				Description: "List all publications for the current user",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: legacy,
			Handler:     listPublicationsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_publication",
				Description: "Get a publication by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"publication_id": map[string]any{
							"type":        "string",
							"description": "The ID of the publication to retrieve",
						},
					},
					Required: []string{"publication_id"},
				},
			},
			Annotations: legacy,
			Handler:     getPublicationHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "delete_publication",
				Description: "Delete a publication by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"publication_id": map[string]any{
							"type":        "string",
							"description": "The ID of the publication to delete",
						},
					},
					Required: []string{"publication_id"},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:    paramutil.BoolPtr(false),
				DestructiveHint: paramutil.BoolPtr(true),
				RequiresLegacy:  paramutil.BoolPtr(true),
			},
			Handler: deletePublicationHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_wrangled_datasets",
				Description: "List all wrangled datasets",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: legacy,
			Handler:     listWrangledDatasetsHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_wrangled_dataset",
				Description: "Get a wrangled dataset by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"wrangled_dataset_id": map[string]any{
							"type":        "string",
							"description": "The ID of the wrangled dataset to retrieve",
						},
					},
					Required: []string{"wrangled_dataset_id"},
				},
			},
			Annotations: legacy,
			Handler:     getWrangledDatasetHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_inputs_for_wrangled_dataset",
				Description: "Get the inputs feeding a wrangled dataset by ID",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"wrangled_dataset_id": map[string]any{
							"type":        "string",
							"description": "The ID of the wrangled dataset to get the inputs for",
						},
					},
					Required: []string{"wrangled_dataset_id"},
				},
			},
			Annotations: legacy,
			Handler:     getInputsForWrangledDatasetHandler,
		},
	}
}
