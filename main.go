package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ide-commands/app"
	"ide-commands/cmd/commands"
	"ide-commands/cmd/help"
	"ide-commands/cmd/interfaces"
	"ide-commands/cmd/shortcut"
	"ide-commands/config"
	"ide-commands/keys"
	"ide-commands/log"
)

var (
	version      = "0.4.0"
	configDirArg string
	platformArg  string
	desktopFlag  bool
	allFlag      bool
	unboundFlag  bool
	formatArg    string
	clipboardArg bool

	rootCmd = &cobra.Command{
		Use:   "ide-commands",
		Short: "Command palette and keyboard shortcuts for the game editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			dir, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log.Initialize(cfg.LogConfig())
			defer log.Close()

			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("the editor needs an interactive terminal")
			}
			return app.Run(ctx, cfg, dir)
		},
	}

	shortcutsCmd = &cobra.Command{
		Use:   "shortcuts",
		Short: "Inspect and edit keyboard shortcuts",
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the effective shortcut reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShortcuts(cmd)
			if err != nil {
				return err
			}
			gen := help.NewGenerator(s.table, s.effective, s.defaults, s.platform)
			gen.Width = outputWidth()
			fmt.Fprint(cmd.OutOrStdout(), gen.GenerateReference(unboundFlag))
			return nil
		},
	}

	setCmd = &cobra.Command{
		Use:   "set <COMMAND_ID> <SHORTCUT>",
		Short: "Bind a shortcut, for example: set TOGGLE_GRID CmdOrCtrl+Alt+KeyG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShortcuts(cmd)
			if err != nil {
				return err
			}
			id, err := s.commandID(args[0])
			if err != nil {
				return err
			}
			if err := s.store.Set(id, args[1]); err != nil {
				return err
			}

			user := config.LoadUserShortcuts(s.store)
			effective := shortcut.Merge(s.defaults, user, s.table)
			bound := effective[id]
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, describe(bound, s.platform))
			for _, other := range shortcut.ConflictsWith(effective, id, bound) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is also bound to %s\n", describe(bound, s.platform), other)
			}
			return nil
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset [COMMAND_ID]",
		Short: "Restore the default shortcut of one command, or of all with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShortcuts(cmd)
			if err != nil {
				return err
			}
			if allFlag {
				if err := s.store.ResetAll(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All shortcuts have been reset to defaults")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("give a command id or --all")
			}
			id, err := s.commandID(args[0])
			if err != nil {
				return err
			}
			if err := s.store.Reset(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, describe(s.defaults[id], s.platform))
			return nil
		},
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the effective shortcuts for menu builders and documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := shortcut.ParseFormat(formatArg)
			if err != nil {
				return err
			}
			s, err := openShortcuts(cmd)
			if err != nil {
				return err
			}
			data, err := shortcut.Export(shortcut.Entries(s.effective, s.defaults, s.table, s.platform), format)
			if err != nil {
				return err
			}
			if clipboardArg {
				if err := clipboard.WriteAll(string(data)); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	conflictsCmd = &cobra.Command{
		Use:   "conflicts",
		Short: "List shortcuts bound to more than one command",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShortcuts(cmd)
			if err != nil {
				return err
			}
			conflicts := shortcut.Conflicts(s.effective)
			if len(conflicts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No conflicts")
				return nil
			}
			for _, conflict := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n",
					describe(conflict.Shortcut, s.platform), joinIDs(conflict.Commands))
			}
			return fmt.Errorf("%d conflicting shortcut(s)", len(conflicts))
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug info like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfgJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Fprintf(cmd.OutOrStdout(), "Config directory: %s\n", dir)
			fmt.Fprintf(cmd.OutOrStdout(), "Shortcuts file: %s\n", cfg.ShortcutsPath(dir))
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", cfg.PlatformOrDetect())
			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n", cfgJson)

			s, err := openShortcuts(cmd)
			if err != nil {
				return err
			}
			overrides := shortcut.Overrides(s.defaults, s.effective)
			fmt.Fprintf(cmd.OutOrStdout(), "User overrides: %d\n", len(overrides))
			for _, id := range s.effective.SortedIDs() {
				if raw, ok := overrides[id]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s = %q\n", id, raw)
				}
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ide-commands",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ide-commands version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirArg, "config-dir", "",
		"Directory holding config.toml and the shortcut file (default ~/.ide-commands)")
	rootCmd.PersistentFlags().StringVar(&platformArg, "platform", "",
		"Label shortcuts for this platform: mac, windows or linux")
	rootCmd.Flags().BoolVar(&desktopFlag, "desktop", false,
		"Leave host-handled commands to the window's native menu")

	resetCmd.Flags().BoolVar(&allFlag, "all", false, "Reset every shortcut")
	listCmd.Flags().BoolVar(&unboundFlag, "unbound", false, "Also list commands without a shortcut")
	exportCmd.Flags().StringVarP(&formatArg, "format", "f", string(shortcut.FormatJSON), "Output format: json or yaml")
	exportCmd.Flags().BoolVar(&clipboardArg, "clipboard", false, "Copy the export to the clipboard instead of printing it")

	shortcutsCmd.AddCommand(listCmd, setCmd, resetCmd, exportCmd, conflictsCmd)
	rootCmd.AddCommand(shortcutsCmd, debugCmd, versionCmd)
}

// loadConfig resolves the config directory and applies flag overrides.
func loadConfig(cmd *cobra.Command) (string, *config.Config, error) {
	dir := configDirArg
	if dir == "" {
		var err error
		dir, err = config.GetConfigDir()
		if err != nil {
			return "", nil, err
		}
	}
	cfg := config.LoadConfig(dir)
	if platformArg != "" {
		cfg.Platform = platformArg
	}
	if cmd.Flags().Changed("desktop") {
		cfg.Desktop = desktopFlag
	}
	return dir, cfg, nil
}

type shortcutSet struct {
	table     *commands.Table
	store     *config.ShortcutStore
	defaults  shortcut.Map
	effective shortcut.Map
	platform  keys.Platform
}

func openShortcuts(cmd *cobra.Command) (*shortcutSet, error) {
	dir, cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	s := &shortcutSet{
		table:    commands.DefaultTable(),
		store:    config.NewShortcutStore(cfg.ShortcutsPath(dir)),
		defaults: shortcut.Map(commands.DefaultShortcuts()),
		platform: cfg.PlatformOrDetect(),
	}
	s.effective = shortcut.Merge(s.defaults, config.LoadUserShortcuts(s.store), s.table)
	return s, nil
}

func (s *shortcutSet) commandID(arg string) (interfaces.CommandID, error) {
	id := interfaces.CommandID(strings.ToUpper(arg))
	meta, ok := s.table.Metadata(id)
	if !ok {
		return "", fmt.Errorf("unknown command %s", arg)
	}
	if meta.NoShortcut {
		return "", fmt.Errorf("command %s cannot have a shortcut", id)
	}
	return id, nil
}

func describe(s keys.Shortcut, platform keys.Platform) string {
	if s == keys.NoShortcut {
		return "(none)"
	}
	return keys.DisplayString(s, platform)
}

func joinIDs(ids []interfaces.CommandID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

// outputWidth styles and sizes output for the terminal, or disables styling
// when stdout is redirected.
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
