// Package mcp bootstraps the Daily MCP server: configuration, logging,
// the Daily API client, tool registration and the stdio / Streamable-HTTP
// transports. The OAuth dance itself happens in front of this process
// (an auth proxy); this package only consumes the identity it forwards.
package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jplattus/daily-time-tracking-mcp/client"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/access"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/handlers"
)

// config holds all settings for the MCP server. Values come from the
// environment with a DAILY_ prefix; a few can be overridden by flags.
type config struct {
	// APIKey is the Daily API secret. Required: startup fails before any
	// network call when it is missing.
	APIKey string `envconfig:"API_KEY" required:"true"`

	// APIURL overrides the production upstream host.
	APIURL string `envconfig:"API_URL" default:"https://api.dailytimetracking.com"`

	// AdminHandles is the comma-separated allow-list of identity handles
	// permitted to create activities.
	AdminHandles []string `envconfig:"ADMIN_HANDLES"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	ServerName    string `envconfig:"MCP_SERVER_NAME" default:"daily-mcp-server"`
	ServerVersion string `envconfig:"MCP_SERVER_VERSION" default:"0.1.0"`

	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`

	// Principal for stdio sessions, where the launching environment is the
	// trusted identity source. HTTP sessions use identity headers instead.
	PrincipalHandle string `envconfig:"PRINCIPAL_HANDLE"`
	PrincipalName   string `envconfig:"PRINCIPAL_NAME"`
	PrincipalEmail  string `envconfig:"PRINCIPAL_EMAIL"`
}

// loadConfig loads configuration from environment variables and flags.
func loadConfig() (*config, error) {
	var cfg config
	if err := envconfig.Process("DAILY", &cfg); err != nil {
		return nil, err
	}

	// Command line flags override env vars.
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Base URL of the Daily API")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	flag.Parse()

	return &cfg, nil
}

// initLogger initializes the global logger with the configured level.
func (c *config) initLogger() {
	zerolog.SetGlobalLevel(parseLogLevel(c.LogLevel))
	log.Logger = log.With().Caller().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// Run starts the MCP server with configuration from the environment.
func Run() error {
	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return err
	}
	cfg.initLogger()

	log.Info().Str("api_url", cfg.APIURL).Msg("Creating Daily API client")
	dailyClient := client.New(cfg.APIURL, cfg.APIKey)

	policy := access.NewPolicy(cfg.AdminHandles)

	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		server.WithToolHandlerMiddleware(invocationLogging),
		// Hide the mutating tool from sessions whose principal is not on
		// the allow-list. The handler re-checks at execution time.
		server.WithToolFilter(mutatingToolFilter(policy)),
	)

	registerHandler(s, handlers.NewUserHandler(dailyClient), "user")
	registerHandler(s, handlers.NewActivityHandler(dailyClient, policy), "activity")
	registerHandler(s, handlers.NewSummaryHandler(dailyClient), "summary")
	registerHandler(s, handlers.NewTimesheetHandler(dailyClient), "timesheet")

	if shouldUseStdio() {
		log.Info().Msg("Starting Daily MCP server (stdio transport)")

		stdioPrincipal := access.Principal{
			Handle:      cfg.PrincipalHandle,
			DisplayName: cfg.PrincipalName,
			Email:       cfg.PrincipalEmail,
		}
		if err := server.ServeStdio(s, server.WithStdioContextFunc(func(ctx context.Context) context.Context {
			if stdioPrincipal.Handle == "" {
				return ctx
			}
			return access.WithPrincipal(ctx, stdioPrincipal)
		})); err != nil {
			log.Fatal().Err(err).Msg("Stdio server error")
		}
		return nil
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting Daily MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
		server.WithHTTPContextFunc(principalFromHeaders),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // no deadline, required for SSE streaming
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("HTTP server error")
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// mutatingToolFilter removes the activity-creation tool from listings for
// sessions whose principal is absent or not on the allow-list.
func mutatingToolFilter(policy *access.Policy) server.ToolFilterFunc {
	return func(ctx context.Context, tools []mcp.Tool) []mcp.Tool {
		if policy.AllowsContext(ctx) {
			return tools
		}
		visible := make([]mcp.Tool, 0, len(tools))
		for _, t := range tools {
			if t.Name == handlers.CreateActivitiesToolName {
				continue
			}
			visible = append(visible, t)
		}
		return visible
	}
}

// invocationLogging assigns each tool call a correlation ID and logs its
// outcome with the elapsed duration.
func invocationLogging(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		invocationID := uuid.NewString()
		logger := log.With().
			Str("invocation_id", invocationID).
			Str("tool", request.Params.Name).
			Logger()

		start := time.Now()
		result, err := next(ctx, request)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			logger.Error().Err(err).Dur("elapsed", elapsed).Msg("tool call failed")
		case result != nil && result.IsError:
			logger.Warn().Dur("elapsed", elapsed).Msg("tool call returned error envelope")
		default:
			logger.Debug().Dur("elapsed", elapsed).Msg("tool call completed")
		}
		return result, err
	}
}

// principalFromHeaders trusts the identity headers set by the auth proxy
// fronting the HTTP transport. Requests without them carry no principal
// and the mutating tool stays hidden.
func principalFromHeaders(ctx context.Context, r *http.Request) context.Context {
	handle := r.Header.Get("X-Auth-Request-User")
	if handle == "" {
		return ctx
	}
	return access.WithPrincipal(ctx, access.Principal{
		Handle:      handle,
		DisplayName: r.Header.Get("X-Auth-Request-Preferred-Username"),
		Email:       r.Header.Get("X-Auth-Request-Email"),
	})
}

// shouldUseStdio determines the transport based on environment.
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: use stdio if stdin is not a terminal (launched by
	// another process).
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
