package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/postboard/infra/auth"
	"github.com/CrestNiraj12/postboard/infra/backend"
	"github.com/CrestNiraj12/postboard/infra/config"
	"github.com/CrestNiraj12/postboard/infra/editor"
	"github.com/CrestNiraj12/postboard/infra/logging"
	"github.com/CrestNiraj12/postboard/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var backendURL string

	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
	cmd := &cobra.Command{
		Use:           "postboard",
		Short:         "Write posts to a post board from your terminal",
		Version:       fmt.Sprintf("%s\ncommit: %s\nbuilt: %s", v, c, d),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cmd.Flags().Changed("backend") {
				if cfg.BackendURL, err = config.NormalizeBackendURL(backendURL); err != nil {
					return fmt.Errorf("config: %w", err)
				}
			}
			return run(cfg)
		},
	}
	cmd.SetVersionTemplate("postboard {{.Version}}\n")
	cmd.Flags().StringVar(&backendURL, "backend", "", "backend base URL (overrides POSTBOARD_BACKEND)")
	return cmd
}

func run(cfg config.Config) error {
	// 1. Logging goes to a file while the TUI owns the terminal.
	logFile, err := logging.Setup(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logFile.Close()

	// 2. Build infrastructure.
	tokenProvider := auth.NewFileTokenProvider(cfg.TokenPath)
	client := backend.NewClient(cfg.BackendURL, tokenProvider)
	slog.Info("starting postboard", "backend", cfg.BackendURL)

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Post:   backend.NewPostService(client),
		Editor: editor.NewEnvEditor(),
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "postboard: %v\n", err)
		os.Exit(1)
	}
}
