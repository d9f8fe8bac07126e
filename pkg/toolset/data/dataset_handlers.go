package data

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// defaultListLimit caps unpaginated library and publication listings
const defaultListLimit = 100

// listDatasetsHandler handles the list_datasets tool.
// The library is listed unfiltered: every ownership class, schematized
// or not, up to the default limit.
func listDatasetsHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("listing datasets", func() (interface{}, error) {
		res, err := c.ListDatasetLibrary(ctx, "all", "all", false, defaultListLimit)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getDatasetHandler handles the get_dataset tool
func getDatasetHandler(client interface{}, params map[string]interface{}) (string, error) {
	datasetID, err := paramutil.ExtractRequiredString(params, "dataset_id")
	if err != nil {
		return envelope.MissingParameter("dataset_id"), nil
	}

	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting dataset %s", datasetID), func() (interface{}, error) {
		res, err := c.GetImportedDataset(ctx, datasetID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
