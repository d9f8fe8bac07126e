package scheduling

import (
	"context"
	"fmt"

	"github.com/aac-tools/aac-mcp-server/pkg/client/aac"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/envelope"
	"github.com/aac-tools/aac-mcp-server/pkg/toolset/paramutil"
)

// listSchedulesHandler handles the list_schedules tool
func listSchedulesHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("listing schedules", func() (interface{}, error) {
		res, err := c.ListSchedules(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// getScheduleHandler handles the get_schedule tool
func getScheduleHandler(client interface{}, params map[string]interface{}) (string, error) {
	scheduleID, err := paramutil.ExtractRequiredString(params, "schedule_id")
	if err != nil {
		return envelope.MissingParameter("schedule_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("getting schedule %s", scheduleID), func() (interface{}, error) {
		schedule, err := c.GetSchedule(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		return schedule, nil
	}), nil
}

// createScheduleHandler handles the create_schedule tool
func createScheduleHandler(client interface{}, params map[string]interface{}) (string, error) {
	scheduleData, err := paramutil.ExtractRequiredMap(params, "schedule_data")
	if err != nil {
		return envelope.MissingParameter("schedule_data"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("creating schedule", func() (interface{}, error) {
		res, err := c.CreateSchedule(ctx, aac.ScheduleCreateRequestFromMap(scheduleData))
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// updateScheduleHandler handles the update_schedule tool
func updateScheduleHandler(client interface{}, params map[string]interface{}) (string, error) {
	scheduleID, err := paramutil.ExtractRequiredString(params, "schedule_id")
	if err != nil {
		return envelope.MissingParameter("schedule_id"), nil
	}
	scheduleData, err := paramutil.ExtractRequiredMap(params, "schedule_data")
	if err != nil {
		return envelope.MissingParameter("schedule_data"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke(fmt.Sprintf("updating schedule %s", scheduleID), func() (interface{}, error) {
		res, err := c.UpdateSchedule(ctx, aac.ScheduleUpdateRequestFromMap(scheduleData), scheduleID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// deleteScheduleHandler handles the delete_schedule tool.
// Deletion requires the schedule to exist and to be disabled; deleting an
// active schedule is refused locally rather than by the remote API.
func deleteScheduleHandler(client interface{}, params map[string]interface{}) (string, error) {
	scheduleID, err := paramutil.ExtractRequiredString(params, "schedule_id")
	if err != nil {
		return envelope.MissingParameter("schedule_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("deleting schedule %s", scheduleID), &envelope.Precondition{
		Resource: "Schedule",
		ID:       scheduleID,
		Lookup: func() (interface{}, error) {
			schedule, err := c.GetSchedule(ctx, scheduleID)
			if err != nil {
				return nil, err
			}
			return schedule, nil
		},
		Guard: func(found interface{}) string {
			if schedule, ok := found.(*aac.Schedule); ok && schedule.Enabled {
				return fmt.Sprintf("Schedule %s is currently enabled and cannot be deleted", scheduleID)
			}
			return ""
		},
	}, func() (interface{}, error) {
		res, err := c.DeleteSchedule(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// enableScheduleHandler handles the enable_schedule tool
func enableScheduleHandler(client interface{}, params map[string]interface{}) (string, error) {
	scheduleID, err := paramutil.ExtractRequiredString(params, "schedule_id")
	if err != nil {
		return envelope.MissingParameter("schedule_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("enabling schedule %s", scheduleID), &envelope.Precondition{
		Resource: "Schedule",
		ID:       scheduleID,
		Lookup: func() (interface{}, error) {
			schedule, err := c.GetSchedule(ctx, scheduleID)
			if err != nil {
				return nil, err
			}
			return schedule, nil
		},
	}, func() (interface{}, error) {
		res, err := c.EnableSchedule(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// disableScheduleHandler handles the disable_schedule tool
func disableScheduleHandler(client interface{}, params map[string]interface{}) (string, error) {
	scheduleID, err := paramutil.ExtractRequiredString(params, "schedule_id")
	if err != nil {
		return envelope.MissingParameter("schedule_id"), nil
	}

	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Run(fmt.Sprintf("disabling schedule %s", scheduleID), &envelope.Precondition{
		Resource: "Schedule",
		ID:       scheduleID,
		Lookup: func() (interface{}, error) {
			schedule, err := c.GetSchedule(ctx, scheduleID)
			if err != nil {
				return nil, err
			}
			return schedule, nil
		},
	}, func() (interface{}, error) {
		res, err := c.DisableSchedule(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}

// countSchedulesHandler handles the count_schedules tool
func countSchedulesHandler(client interface{}, params map[string]interface{}) (string, error) {
	c, err := toolset.ValidateAACClient(client)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	return envelope.Invoke("counting schedules", func() (interface{}, error) {
		res, err := c.CountSchedules(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}), nil
}
