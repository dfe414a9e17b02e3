// Package server exposes spaces, windows and workspaces as MCP tools.
package server

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/mj1618/spaces-cli/internal/platform"
	"github.com/mj1618/spaces-cli/internal/spaces"
	"github.com/mj1618/spaces-cli/internal/version"
	"github.com/mj1618/spaces-cli/internal/workspace"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	Capture   workspace.CaptureOptions
}

// Server wraps the MCP server with the platform provider, store and cache.
type Server struct {
	provider   *platform.Provider
	store      *workspace.Store
	capture    workspace.CaptureOptions
	cache      *SpaceCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates and configures an MCP server with all tools registered.
func New(cfg Config, provider *platform.Provider, store *workspace.Store) *Server {
	s := &Server{
		provider: provider,
		store:    store,
		capture:  cfg.Capture,
		cache:    NewSpaceCache(cfg.CacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer("spaces-cli", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_spaces",
			mcp.WithDescription("List displays and their spaces (virtual desktops), marking the active space on each display"),
		),
		s.handleListSpaces,
	)

	s.mcp.AddTool(
		mcp.NewTool("current_space",
			mcp.WithDescription("Return the active space number, the number of spaces on its display, and an indicator string like '1 [2] 3'"),
		),
		s.handleCurrentSpace,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_space",
			mcp.WithDescription("Look up a space by its 1-based number on a display (default: the display with the active menu bar)"),
			mcp.WithNumber("number", mcp.Required(), mcp.Description("1-based space number")),
			mcp.WithString("display", mcp.Description("Display identifier (case-insensitive)")),
		),
		s.handleGetSpace,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List windows from the window server"),
			mcp.WithString("option", mcp.Description("Comma-separated list options: on-screen-only (default), all, above-window, below-window, including-window")),
			mcp.WithNumber("relative-to", mcp.Description("Reference window ID for above-window/below-window/including-window")),
			mcp.WithString("app", mcp.Description("Filter by application name")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
			mcp.WithBoolean("all-layers", mcp.Description("Include menu bar, dock and other non-window layers")),
			mcp.WithString("bbox", mcp.Description("Only windows overlapping this rectangle: x,y,w,h")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_workspaces",
			mcp.WithDescription("List saved workspaces"),
		),
		s.handleListWorkspaces,
	)

	s.mcp.AddTool(
		mcp.NewTool("save_workspace",
			mcp.WithDescription("Save the apps with visible windows on the current space as a named workspace"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Workspace name")),
			mcp.WithBoolean("all-running-fallback", mcp.Description("Save all running apps if none has a visible window")),
		),
		s.handleSaveWorkspace,
	)

	s.mcp.AddTool(
		mcp.NewTool("load_workspace",
			mcp.WithDescription("Launch every app of a saved workspace"),
			mcp.WithString("workspace", mcp.Required(), mcp.Description("Workspace name or ID")),
		),
		s.handleLoadWorkspace,
	)

	s.mcp.AddTool(
		mcp.NewTool("delete_workspace",
			mcp.WithDescription("Delete a saved workspace"),
			mcp.WithString("workspace", mcp.Required(), mcp.Description("Workspace name or ID")),
		),
		s.handleDeleteWorkspace,
	)
}

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := output.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func (s *Server) handleListSpaces(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.SpaceReader == nil {
		return mcp.NewToolResultError("space reader not available on this platform"), nil
	}
	displays, err := s.cache.Displays(s.provider.SpaceReader)
	if err != nil {
		return errorResult(err)
	}
	return textResult(displays)
}

// currentSpaceResult is the output of current_space.
type currentSpaceResult struct {
	spaces.Position `yaml:",inline"`
	Indicator       string `yaml:"indicator" json:"indicator"`
}

func (s *Server) handleCurrentSpace(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.SpaceReader == nil {
		return mcp.NewToolResultError("space reader not available on this platform"), nil
	}
	displays, err := s.cache.Displays(s.provider.SpaceReader)
	if err != nil {
		return errorResult(err)
	}
	pos, ok := spaces.Current(displays)
	if !ok {
		return errorResult(workspace.ErrNoCurrentSpace)
	}
	return textResult(currentSpaceResult{Position: pos, Indicator: spaces.NewIndicator(pos).String()})
}

func (s *Server) handleGetSpace(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.SpaceReader == nil {
		return mcp.NewToolResultError("space reader not available on this platform"), nil
	}
	displays, err := s.cache.Displays(s.provider.SpaceReader)
	if err != nil {
		return errorResult(err)
	}
	space, err := spaces.Find(displays, stringParam(params, "display", ""), intParam(params, "number", 0))
	if err != nil {
		return errorResult(err)
	}
	return textResult(space)
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opt, err := cgs.ParseWindowListOptions(stringParam(params, "option", ""))
	if err != nil {
		return errorResult(err)
	}
	relativeTo, err := windowIDParam(params, "relative-to")
	if err != nil {
		return errorResult(err)
	}
	opts := platform.ListOptions{
		Option:     opt,
		RelativeTo: relativeTo,
		App:        stringParam(params, "app", ""),
		PID:        intParam(params, "pid", 0),
		AllLayers:  boolParam(params, "all-layers", false),
	}
	if bbox := stringParam(params, "bbox", ""); bbox != "" {
		if opts.BBox, err = platform.ParseBBox(bbox); err != nil {
			return errorResult(err)
		}
	}
	if err := opts.Validate(); err != nil {
		return errorResult(err)
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.Reader == nil {
		return mcp.NewToolResultError("reader not available on this platform"), nil
	}
	windows, err := s.provider.Reader.ListWindows(opts)
	if err != nil {
		return errorResult(err)
	}
	return textResult(windows)
}

func (s *Server) handleListWorkspaces(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all, err := s.store.List()
	if err != nil {
		return errorResult(err)
	}
	return textResult(all)
}

func (s *Server) handleSaveWorkspace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")
	opts := s.capture
	opts.AllRunningFallback = boolParam(params, "all-running-fallback", opts.AllRunningFallback)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.SpaceReader == nil || s.provider.Reader == nil || s.provider.AppLister == nil {
		return mcp.NewToolResultError("workspace capture not available on this platform"), nil
	}
	s.cache.Invalidate()
	ws, err := workspace.Save(ctx, s.store, workspace.NewCapturer(s.provider), name, opts)
	if err != nil {
		return errorResult(err)
	}
	return textResult(ws)
}

func (s *Server) handleLoadWorkspace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref := stringParam(request.GetArguments(), "workspace", "")
	ws, err := s.store.Get(ref)
	if err != nil {
		return errorResult(err)
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.Launcher == nil {
		return mcp.NewToolResultError("launcher not available on this platform"), nil
	}
	result, err := workspace.Launch(ctx, s.provider.Launcher, ws)
	s.cache.Invalidate()
	if err != nil {
		if len(result.Launched) > 0 {
			// Partial success: report what launched alongside the failures.
			b, _ := output.Marshal(result)
			return mcp.NewToolResultError(fmt.Sprintf("%s\n%s", err.Error(), b)), nil
		}
		return errorResult(err)
	}
	return textResult(result)
}

func (s *Server) handleDeleteWorkspace(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref := stringParam(request.GetArguments(), "workspace", "")
	removed, err := s.store.Delete(ref)
	if err != nil {
		return errorResult(err)
	}
	return textResult(output.ActionResult{OK: true, Action: "delete", Target: removed.Name})
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

// windowIDParam reads an optional window ID. Missing means NullWindowID;
// fractional or out of range numbers are rejected.
func windowIDParam(params map[string]interface{}, key string) (cgs.WindowID, error) {
	var v int64
	switch n := params[key].(type) {
	case nil:
		return cgs.NullWindowID, nil
	case float64:
		if n != math.Trunc(n) {
			return cgs.NullWindowID, fmt.Errorf("%s must be an integer, got %v", key, n)
		}
		switch {
		case n < 0:
			v = -1
		case n > math.MaxUint32:
			v = math.MaxUint32 + 1
		default:
			v = int64(n)
		}
	case int:
		v = int64(n)
	case int64:
		v = n
	default:
		return cgs.NullWindowID, fmt.Errorf("%s must be a number", key)
	}
	id, err := cgs.WindowIDFromInt(v)
	if err != nil {
		return cgs.NullWindowID, fmt.Errorf("%s: %w", key, err)
	}
	return id, nil
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
