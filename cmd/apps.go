package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"winctl/internal/model"
	"winctl/internal/output"
	"winctl/internal/registry"
)

// AppSaveResult is the output of app-save.
type AppSaveResult struct {
	OK          bool   `yaml:"ok"           json:"ok"`
	Name        string `yaml:"name"         json:"name"`
	Class       string `yaml:"class"        json:"class"`
	DesktopFile string `yaml:"desktop_file" json:"desktop_file"`
}

// AppDeleteResult is the output of app-delete.
type AppDeleteResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Name    string `yaml:"name"    json:"name"`
	Deleted bool   `yaml:"deleted" json:"deleted"`
}

var appSaveCmd = &cobra.Command{
	Use:   "app-save <name>",
	Short: "Save an application for toggling by name",
	Long: `Save an application under a name. The window class is the matching
rule used to find a live window; the desktop file is the launch
fallback, guessed from the standard application directories.

The class comes from --class, or from the window given by --id.
Saving an existing name updates it in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runAppSave,
}

var appListCmd = &cobra.Command{
	Use:     "app-list",
	Aliases: []string{"apps"},
	Short:   "List saved applications",
	Args:    cobra.NoArgs,
	RunE:    runAppList,
}

var appDeleteCmd = &cobra.Command{
	Use:   "app-delete <name>",
	Short: "Delete a saved application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppDelete,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <name>",
	Short: "Launch, activate, or minimize a saved application",
	Long: `Toggle a saved application: launch it when no window matches its
class, unminimize and activate it when minimized, minimize it when
visible. Same as calling winctl with the bare name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggleName(args[0])
	},
}

func init() {
	rootCmd.AddCommand(appSaveCmd, appListCmd, appDeleteCmd, toggleCmd)
	appSaveCmd.Flags().String("class", "", "Window class to match")
	appSaveCmd.Flags().String("title", "", "Window title, used only to guess the desktop file")
	appSaveCmd.Flags().String("id", "", "Take class and title from this live window")
}

func runAppSave(cmd *cobra.Command, args []string) error {
	name := args[0]
	class, _ := cmd.Flags().GetString("class")
	title, _ := cmd.Flags().GetString("title")
	winID, _ := cmd.Flags().GetString("id")

	c := newComponents()

	if winID != "" {
		rec := c.dir.Resolve(model.WindowID(winID))
		if class == "" {
			class = rec.Class.Or("")
		}
		if title == "" {
			title = rec.Title.Or("")
		}
	}
	if class == "" {
		return fmt.Errorf("no window class: pass --class or --id of a live window")
	}

	app := registry.SavedApp{
		Name:        name,
		Class:       class,
		DesktopFile: registry.ResolveDesktopFile(cfg.DesktopDirs, class, title),
	}
	if err := c.reg.Save(app); err != nil {
		return err
	}
	return output.Print(AppSaveResult{
		OK:          true,
		Name:        app.Name,
		Class:       app.Class,
		DesktopFile: app.DesktopFile,
	})
}

func runAppList(cmd *cobra.Command, args []string) error {
	c := newComponents()
	apps, err := c.reg.List()
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []registry.SavedApp{}
	}
	return output.Print(apps)
}

func runAppDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	c := newComponents()
	deleted, err := c.reg.Delete(name)
	if err != nil {
		return err
	}
	if !deleted {
		logger.Warn().Str("app", name).Msg("no such saved app")
	}
	return output.Print(AppDeleteResult{OK: true, Name: name, Deleted: deleted})
}

// runToggleName backs both the toggle subcommand and the bare
// `winctl <app-name>` form.
func runToggleName(name string) error {
	c := newComponents()
	result, err := c.engine.LaunchOrToggle(name)
	if err != nil {
		return err
	}
	return output.Print(result)
}
