package data

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// listWrangledDatasetsHandler handles the list_wrangled_datasets tool
func listWrangledDatasetsHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("listing wrangled datasets", func() (interface{}, error) {
		res, err := c.ListWrangledDatasets(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getWrangledDatasetHandler handles the get_wrangled_dataset tool
func getWrangledDatasetHandler(client interface{}, params map[string]interface{}) (string, error) {
	wrangledDatasetID, err := paramutil.ExtractRequiredString(params, "wrangled_dataset_id")
	if err != nil {
		return envelope.MissingParameter("wrangled_dataset_id"), nil
	}

	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting wrangled dataset %s", wrangledDatasetID), func() (interface{}, error) {
		res, err := c.GetWrangledDataset(ctx, wrangledDatasetID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getInputsForWrangledDatasetHandler handles the get_inputs_for_wrangled_dataset tool
func getInputsForWrangledDatasetHandler(client interface{}, params map[string]interface{}) (string, error) {
	wrangledDatasetID, err := paramutil.ExtractRequiredString(params, "wrangled_dataset_id")
	if err != nil {
		return envelope.MissingParameter("wrangled_dataset_id"), nil
	}

	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("getting inputs for wrangled dataset %s", wrangledDatasetID), &envelope.Precondition{
		Resource: "Wrangled dataset",
		ID:       wrangledDatasetID,
		Lookup: func() (interface{}, error) {
			wrangled, err := c.GetWrangledDataset(ctx, wrangledDatasetID)
			if err != nil {
				return nil, err
			}
			return wrangled, nil
		},
	}, func() (interface{}, error) {
		res, err := c.GetInputsForWrangledDataset(ctx, wrangledDatasetID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
