package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jplattus/daily-time-tracking-mcp/client"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/access"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/report"
)

// CreateActivitiesToolName is referenced by the server's tool filter so
// the mutating tool can be hidden from sessions that may not use it.
const CreateActivitiesToolName = "createActivities"

// ActivityHandler exposes the activity listing and creation tools.
// Creation is additionally gated by the allow-list policy: the tool is
// filtered out of listings for non-members, and execution re-checks the
// principal so the gate holds even for direct calls.
type ActivityHandler struct {
	client *client.Client
	policy *access.Policy
}

// NewActivityHandler creates a new activity handler instance.
func NewActivityHandler(client *client.Client, policy *access.Policy) *ActivityHandler {
	return &ActivityHandler{client: client, policy: policy}
}

// RegisterTools registers the activity tools with the MCP server.
func (ah *ActivityHandler) RegisterTools(s *server.MCPServer) error {
	getActivitiesTool := mcp.NewTool("getActivities",
		mcp.WithDescription("List Daily activities with totals and grouping"),
		mcp.WithBoolean("includeArchivedActivities",
			mcp.Description("Whether archived activities are included (defaults to true; the upstream default applies when omitted)")),
	)
	s.AddTool(getActivitiesTool, ah.handleGetActivities)

	createActivitiesTool := mcp.NewTool(CreateActivitiesToolName,
		mcp.WithDescription("Create one or more Daily activities (restricted to allow-listed users)"),
		mcp.WithArray("activities",
			mcp.Required(),
			mcp.Description("Activities to create"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":  map[string]any{"type": "string", "description": "Activity name (required, non-empty)"},
					"group": map[string]any{"type": "string", "description": "Optional group; null or omitted leaves the activity ungrouped"},
				},
				"required": []string{"name"},
			}),
		),
		mcp.WithBoolean("archiveExistingActivities",
			mcp.Description("Archive all existing activities before creating the new ones")),
	)
	s.AddTool(createActivitiesTool, ah.handleCreateActivities)

	return nil
}

func (ah *ActivityHandler) handleGetActivities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	includeArchived := optionalBool(request, "includeArchivedActivities")

	log.Debug().Msg("handling getActivities request")

	start := time.Now()
	activities, err := ah.client.ListActivities(ctx, includeArchived)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("getActivities failed")
		return resultAPIError(err), nil
	}

	rep := report.Activities(activities)
	log.Debug().
		Int("total", rep.Total).
		Int("archived", rep.Archived).
		Dur("elapsed", elapsed).
		Msg("getActivities completed")

	return resultSuccess(renderActivityReport(rep), rep), nil
}

func (ah *ActivityHandler) handleCreateActivities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Fail closed: the tool filter already hides this tool from
	// non-members, but a direct call must be refused as well.
	if !ah.policy.AllowsContext(ctx) {
		pr, _ := access.PrincipalFrom(ctx)
		log.Error().Str("handle", pr.Handle).Msg("createActivities refused: caller not allow-listed")
		return resultError("Permission denied: your account is not allowed to create activities", nil), nil
	}

	var args struct {
		Activities                []client.NewActivity `json:"activities"`
		ArchiveExistingActivities *bool                `json:"archiveExistingActivities"`
	}
	if err := request.BindArguments(&args); err != nil {
		log.Error().Err(err).Msg("createActivities arguments invalid")
		return resultError(fmt.Sprintf("Invalid arguments: %v", err), nil), nil
	}

	log.Debug().Int("count", len(args.Activities)).Msg("handling createActivities request")

	start := time.Now()
	activities, err := ah.client.CreateActivities(ctx, args.Activities, args.ArchiveExistingActivities)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("createActivities failed")
		return resultAPIError(err), nil
	}

	rep := report.Activities(activities)
	log.Debug().
		Int("created", len(args.Activities)).
		Int("total", rep.Total).
		Dur("elapsed", elapsed).
		Msg("createActivities completed")

	message := fmt.Sprintf("Created %d activities.\n\n%s", len(args.Activities), renderActivityReport(rep))
	return resultSuccess(message, rep), nil
}

func renderActivityReport(rep report.ActivityReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Activities: %d total (%d active, %d archived)", rep.Total, rep.Active, rep.Archived)
	for _, g := range rep.Groups {
		fmt.Fprintf(&b, "\n\n%s:", g.Group)
		for _, a := range g.Activities {
			if a.Archived {
				fmt.Fprintf(&b, "\n- %s (archived)", a.Name)
			} else {
				fmt.Fprintf(&b, "\n- %s", a.Name)
			}
		}
	}
	return b.String()
}
