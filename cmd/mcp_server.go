package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"winctl/internal/directory"
	"winctl/internal/model"
	"winctl/internal/registry"
)

// mcpServer wraps the MCP server around one set of wired components.
type mcpServer struct {
	c   *components
	mcp *mcpserver.MCPServer
}

func newMCPServer() (*mcpServer, error) {
	s := &mcpServer{c: newComponents()}
	s.mcp = mcpserver.NewMCPServer("winctl", "1.0.0")
	s.registerTools()
	return s, nil
}

func (s *mcpServer) serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List all windows with id, class, title, desktop, geometry and state"),
			mcp.WithString("class", mcp.Description("Filter by class substring")),
			mcp.WithString("title", mcp.Description("Filter by title substring")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("search_windows",
			mcp.WithDescription("Find windows whose class or title contains a term"),
			mcp.WithString("term", mcp.Description("Substring to match against class or title"), mcp.Required()),
		),
		s.handleSearchWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("window_info",
			mcp.WithDescription("Resolve every attribute of one window"),
			mcp.WithString("id", mcp.Description("Window id"), mcp.Required()),
		),
		s.handleWindowInfo,
	)

	s.mcp.AddTool(
		mcp.NewTool("window_action",
			mcp.WithDescription("Perform an action on a window: activate, minimize, unminimize, maximize, fullscreen, close"),
			mcp.WithString("action", mcp.Description("Action name"), mcp.Required()),
			mcp.WithString("id", mcp.Description("Window id"), mcp.Required()),
		),
		s.handleWindowAction,
	)

	s.mcp.AddTool(
		mcp.NewTool("toggle_app",
			mcp.WithDescription("Launch, activate, or minimize a saved application by name"),
			mcp.WithString("name", mcp.Description("Saved application name"), mcp.Required()),
		),
		s.handleToggleApp,
	)

	s.mcp.AddTool(
		mcp.NewTool("app_save",
			mcp.WithDescription("Save an application under a name for later toggling"),
			mcp.WithString("name", mcp.Description("Application name"), mcp.Required()),
			mcp.WithString("class", mcp.Description("Window class to match"), mcp.Required()),
			mcp.WithString("title", mcp.Description("Window title, used only to guess the desktop file")),
		),
		s.handleAppSave,
	)

	s.mcp.AddTool(
		mcp.NewTool("app_list",
			mcp.WithDescription("List saved applications"),
		),
		s.handleAppList,
	)

	s.mcp.AddTool(
		mcp.NewTool("app_delete",
			mcp.WithDescription("Delete a saved application"),
			mcp.WithString("name", mcp.Description("Application name"), mcp.Required()),
		),
		s.handleAppDelete,
	)
}

func (s *mcpServer) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	records, err := s.c.dir.Find(directory.Query{
		Class: stringParam(params, "class"),
		Title: stringParam(params, "title"),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(records)
}

func (s *mcpServer) handleSearchWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term := stringParam(request.GetArguments(), "term")
	if term == "" {
		return mcp.NewToolResultError("term is required"), nil
	}
	records, err := s.c.dir.Find(directory.Query{Any: term})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(records)
}

func (s *mcpServer) handleWindowInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringParam(request.GetArguments(), "id")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	return yamlResult(s.c.dir.Resolve(model.WindowID(id)))
}

func (s *mcpServer) handleWindowAction(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "action")
	id := model.WindowID(stringParam(params, "id"))
	if name == "" || id == "" {
		return mcp.NewToolResultError("action and id are required"), nil
	}

	var err error
	switch name {
	case "activate":
		err = s.c.exec.Activate(id)
	case "minimize":
		err = s.c.exec.Minimize(id)
	case "unminimize":
		err = s.c.exec.Unminimize(id)
	case "maximize":
		err = s.c.exec.Maximize(id)
	case "fullscreen":
		rec := s.c.dir.Resolve(id)
		err = s.c.exec.SetFullscreen(id, !rec.Fullscreen.Or(false))
	case "close":
		err = s.c.exec.Close(id)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown action: %s", name)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(ActionResult{OK: true, Action: name, ID: id})
}

func (s *mcpServer) handleToggleApp(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringParam(request.GetArguments(), "name")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	result, err := s.c.engine.LaunchOrToggle(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(result)
}

func (s *mcpServer) handleAppSave(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name")
	class := stringParam(params, "class")
	if name == "" || class == "" {
		return mcp.NewToolResultError("name and class are required"), nil
	}
	app := registry.SavedApp{
		Name:        name,
		Class:       class,
		DesktopFile: registry.ResolveDesktopFile(cfg.DesktopDirs, class, stringParam(params, "title")),
	}
	if err := s.c.reg.Save(app); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(AppSaveResult{OK: true, Name: app.Name, Class: app.Class, DesktopFile: app.DesktopFile})
}

func (s *mcpServer) handleAppList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apps, err := s.c.reg.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(apps)
}

func (s *mcpServer) handleAppDelete(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringParam(request.GetArguments(), "name")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	deleted, err := s.c.reg.Delete(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(AppDeleteResult{OK: true, Name: name, Deleted: deleted})
}

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func yamlResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
