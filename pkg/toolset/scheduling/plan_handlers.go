package scheduling

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// listPlansHandler handles the list_plans tool
func listPlansHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("listing plans", func() (interface{}, error) {
		res, err := c.ListPlans(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// countPlansHandler handles the count_plans tool
func countPlansHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("counting plans", func() (interface{}, error) {
		res, err := c.CountPlans(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getPlanHandler handles the get_plan tool
func getPlanHandler(client interface{}, params map[string]interface{}) (string, error) {
	planID, err := paramutil.ExtractRequiredString(params, "plan_id")
	if err != nil {
		return envelope.MissingParameter("plan_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting plan %s", planID), func() (interface{}, error) {
		plan, err := c.ReadPlan(ctx, planID)
		if err != nil {
			return nil, err
		}
		return plan, nil
	}), nil
}

// getPlanSchedulesHandler handles the get_plan_schedules tool
func getPlanSchedulesHandler(client interface{}, params map[string]interface{}) (string, error) {
	planID, err := paramutil.ExtractRequiredString(params, "plan_id")
	if err != nil {
		return envelope.MissingParameter("plan_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("getting schedules for plan %s", planID), &envelope.Precondition{
		Resource: "Plan",
		ID:       planID,
		Lookup: func() (interface{}, error) {
			plan, err := c.ReadPlan(ctx, planID)
			if err != nil {
				return nil, err
			}
			return plan, nil
		},
	}, func() (interface{}, error) {
		res, err := c.GetSchedulesForPlan(ctx, planID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// deletePlanHandler handles the delete_plan tool
func deletePlanHandler(client interface{}, params map[string]interface{}) (string, error) {
	planID, err := paramutil.ExtractRequiredString(params, "plan_id")
	if err != nil {
		return envelope.MissingParameter("plan_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("deleting plan %s", planID), &envelope.Precondition{
		Resource: "Plan",
		ID:       planID,
		Lookup: func() (interface{}, error) {
			plan, err := c.ReadPlan(ctx, planID)
			if err != nil {
				return nil, err
			}
			return plan, nil
		},
	}, func() (interface{}, error) {
		res, err := c.DeletePlan(ctx, planID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// runPlanHandler handles the run_plan tool
func runPlanHandler(client interface{}, params map[string]interface{}) (string, error) {
	planID, err := paramutil.ExtractRequiredString(params, "plan_id")
	if err != nil {
		return envelope.MissingParameter("plan_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("running plan %s", planID), &envelope.Precondition{
		Resource: "Plan",
		ID:       planID,
		Lookup: func() (interface{}, error) {
			plan, err := c.ReadPlan(ctx, planID)
			if err != nil {
				return nil, err
			}
			return plan, nil
		},
	}, func() (interface{}, error) {
		res, err := c.RunPlan(ctx, planID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
