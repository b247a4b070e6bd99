package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jplattus/daily-time-tracking-mcp/client"
)

// UserHandler exposes the Daily account lookup tool.
type UserHandler struct {
	client *client.Client
}

// NewUserHandler creates a new user handler instance.
func NewUserHandler(client *client.Client) *UserHandler {
	return &UserHandler{client: client}
}

// RegisterTools registers the account tools with the MCP server.
func (uh *UserHandler) RegisterTools(s *server.MCPServer) error {
	getUserTool := mcp.NewTool("getUser",
		mcp.WithDescription("Get the Daily account owning the configured API key: data retention period and last sync time"),
	)
	s.AddTool(getUserTool, uh.handleGetUser)
	return nil
}

func (uh *UserHandler) handleGetUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("handling getUser request")

	start := time.Now()
	user, err := uh.client.GetUser(ctx)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("getUser failed")
		return resultAPIError(err), nil
	}

	lastSynced := "never"
	if user.LastSyncedAt != nil {
		lastSynced = *user.LastSyncedAt
	}
	log.Debug().
		Int("data_retention_days", user.DataRetentionDays).
		Str("last_synced_at", lastSynced).
		Dur("elapsed", elapsed).
		Msg("getUser completed")

	message := fmt.Sprintf("Daily account:\n- Data retention: %d days\n- Last synced: %s",
		user.DataRetentionDays, lastSynced)
	return resultSuccess(message, user), nil
}
