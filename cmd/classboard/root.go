package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jyj1227/class-board/internal/config"
	"github.com/jyj1227/class-board/internal/logging"
	"github.com/jyj1227/class-board/internal/sound"
	"github.com/jyj1227/class-board/internal/tui"
)

type rootFlags struct {
	config   string
	logFile  string
	logLevel string
	sound    string
	noMouse  bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "classboard",
		Short: "Classroom board for the terminal",
		Long: `classboard puts ten classroom widgets behind one tabbed screen: emotion board,
statistics, timetable, timer, dice, random picker, memo, notice board, vote
and word cloud. Nothing is saved; every run starts fresh.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/classboard/config.toml)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&f.sound, "sound", "", "sound cues: bell, notify or off")
	cmd.Flags().BoolVar(&f.noMouse, "no-mouse", false, "disable mouse input")

	cmd.AddCommand(newKeysCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env, the config file and env, then applies flags.
func loadConfig(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("sound") {
		cfg.Sound.Mode = f.sound
	}
	if f.noMouse {
		cfg.UI.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(cfg config.Config) error {
	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	overrides, err := config.LoadKeyOverrides(cfg.Keys.File)
	if err != nil {
		return err
	}
	if len(overrides) > 0 {
		logger.Info("keybinding overrides loaded", "file", cfg.Keys.File, "actions", len(overrides))
	}

	model := tui.New(tui.Options{
		Title:        cfg.UI.Title,
		ClockFormat:  cfg.UI.ClockFormat,
		TimerMinutes: cfg.Timer.DefaultMinutes,
		Bindings:     tui.ApplyActionKeybindings(tui.DefaultKeyBindings(), overrides),
		Sound:        sound.New(cfg.Sound.Mode, os.Stderr, cfg.UI.Title),
		Logger:       logger,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	logger.Info("board starting", "sound", cfg.Sound.Mode, "mouse", cfg.UI.Mouse)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	logger.Info("board closed")
	return nil
}
