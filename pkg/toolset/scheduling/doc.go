// Package scheduling provides the schedule and plan toolset.
// It implements MCP tools for the Analytics Cloud scheduling surface:
//   - Schedules (list, get, create, update, delete, enable, disable, count)
//   - Plans (list, get, count, delete, run, attached schedules)
//
// Mutating operations perform an existence check before touching the
// resource, and schedule deletion is refused while the schedule is enabled.
package scheduling
