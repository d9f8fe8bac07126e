package data

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// listPublicationsHandler handles the list_publications tool
func listPublicationsHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("listing publications", func() (interface{}, error) {
		res, err := c.ListPublications(ctx, defaultListLimit)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getPublicationHandler handles the get_publication tool
func getPublicationHandler(client interface{}, params map[string]interface{}) (string, error) {
	publicationID, err := paramutil.ExtractRequiredString(params, "publication_id")
	if err != nil {
		return envelope.MissingParameter("publication_id"), nil
	}

	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting publication %s", publicationID), func() (interface{}, error) {
		res, err := c.GetPublication(ctx, publicationID, "")
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// deletePublicationHandler handles the delete_publication tool
func deletePublicationHandler(client interface{}, params map[string]interface{}) (string, error) {
	publicationID, err := paramutil.ExtractRequiredString(params, "publication_id")
	if err != nil {
		return envelope.MissingParameter("publication_id"), nil
	}

	c, err := toolset.ValidateLegacyClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("deleting publication %s", publicationID), &envelope.Precondition{
		Resource: "Publication",
		ID:       publicationID,
		Lookup: func() (interface{}, error) {
			publication, err := c.GetPublication(ctx, publicationID, "")
			if err != nil {
				return nil, err
			}
			return publication, nil
		},
	}, func() (interface{}, error) {
		res, err := c.DeletePublication(ctx, publicationID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
