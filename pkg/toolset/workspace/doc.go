// Package workspace provides the workspace and user toolset.
// It implements MCP tools for workspace inspection (current workspace,
// configuration, membership) and user lookups. Listing all workspaces and
// resolving the current user go through the legacy API surface; everything
// else uses the current one.
package workspace
