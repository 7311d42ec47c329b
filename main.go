// Copyright
// SPDX-License-Identifier: MIT
// textpad: a minimal single-document terminal text editor
package main

import (
    "context"
    "errors"
    "fmt"
    "io"
    "os"
    "os/signal"
    "path/filepath"
    "syscall"

    "github.com/charmbracelet/log"
    "github.com/mattn/go-isatty"
    "github.com/spf13/afero"
    "github.com/spf13/cobra"

    "textpad/internal/config"
    "textpad/internal/core"
    "textpad/internal/loader"
    "textpad/internal/picker"
    "textpad/internal/tui"
    "textpad/internal/tui/util"
)

const Version = "0.1.0"

type flags struct {
    config   string
    picker   string
    title    string
    logFile  string
    logLevel string
    noColor  bool
}

func main() {
    if err := newRootCmd().Execute(); err != nil {
        fmt.Fprintf(os.Stderr, "Error: %v\n", err)
        os.Exit(1)
    }
}

func newRootCmd() *cobra.Command {
    var f flags
    root := &cobra.Command{
        Use:   "textpad [file]",
        Short: "Minimal single-document terminal text editor",
        Long: `textpad edits one document at a time. Ctrl+O (or a click on [ Open ])
picks a file and replaces the document with its contents. The file named on
the command line, or default_path from the config, is loaded at startup.`,
        Args:          cobra.MaximumNArgs(1),
        SilenceUsage:  true,
        SilenceErrors: true,
        RunE: func(cmd *cobra.Command, args []string) error {
            c, err := loadConfig(cmd, f)
            if err != nil {
                return err
            }
            if len(args) == 1 {
                c.DefaultPath = config.ExpandPath(args[0])
            }
            return run(cmd.Context(), c)
        },
    }
    root.PersistentFlags().StringVar(&f.config, "config", "", "config file (default "+config.DefaultPath()+")")
    root.Flags().StringVar(&f.picker, "picker", "", "file picker: terminal|native")
    root.Flags().StringVar(&f.title, "title", "", "file picker title")
    root.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
    root.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug|info|warn|error")
    root.Flags().BoolVar(&f.noColor, "no-color", false, "disable colors")

    root.AddCommand(newConfigCmd(&f))
    root.AddCommand(&cobra.Command{
        Use:   "version",
        Short: "Print the version",
        Run: func(cmd *cobra.Command, args []string) {
            fmt.Fprintln(cmd.OutOrStdout(), "textpad", Version)
        },
    })
    return root
}

func newConfigCmd(f *flags) *cobra.Command {
    cfgCmd := &cobra.Command{
        Use:   "config",
        Short: "Manage the config file",
    }
    var force bool
    initCmd := &cobra.Command{
        Use:   "init",
        Short: "Write a config file holding the defaults",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            path := f.config
            if path == "" {
                path = config.DefaultPath()
            }
            if path == "" {
                return errors.New("no user config directory; pass --config")
            }
            path = config.ExpandPath(path)
            if _, err := os.Stat(path); err == nil && !force {
                return fmt.Errorf("%s already exists (use --force to overwrite)", path)
            }
            if err := config.Save(path, config.Default()); err != nil {
                return fmt.Errorf("write config: %w", err)
            }
            fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
            return nil
        },
    }
    initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
    cfgCmd.AddCommand(initCmd)
    return cfgCmd
}

// loadConfig reads the config file and applies flag overrides. The default
// location may be absent; an explicit --config must exist.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
    path, optional := f.config, false
    if path == "" {
        path, optional = config.DefaultPath(), true
    }
    c, err := config.Load(path, optional)
    if err != nil {
        return nil, err
    }
    if cmd.Flags().Changed("picker") {
        c.Picker.Kind = f.picker
    }
    if f.title != "" {
        c.Picker.Title = f.title
    }
    if f.logFile != "" {
        c.Log.File = f.logFile
    }
    if f.logLevel != "" {
        c.Log.Level = f.logLevel
    }
    if f.noColor {
        c.NoColor = true
    }
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return c, nil
}

func run(parent context.Context, c *config.Config) error {
    if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
        return errors.New("stdout is not a terminal")
    }
    if parent == nil {
        parent = context.Background()
    }
    ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
    defer stop()

    logger, closeLog, err := newLogger(c.Log)
    if err != nil {
        return err
    }
    defer closeLog()

    var (
        pick picker.Picker
        term *picker.Terminal
    )
    switch c.Picker.Kind {
    case config.PickerNative:
        pick = picker.Native{Title: c.Picker.Title, StartDir: c.Picker.StartDir}
    default:
        term = picker.NewTerminal(c.Picker.Title, c.Picker.StartDir)
        pick = term
    }

    ed := core.New(
        core.WithLoader(loader.New(afero.NewOsFs())),
        core.WithPicker(pick),
        core.WithDefaultPath(c.DefaultPath),
        core.WithContext(ctx),
        core.WithLogger(logger),
    )
    logger.Info("starting", "version", Version, "picker", c.Picker.Kind, "default_path", c.DefaultPath)

    err = tui.Run(ctx, tui.Options{
        Editor:     ed,
        Picker:     term,
        Palette:    util.PaletteFor(c.Theme, c.NoColor),
        ShowHidden: c.Picker.ShowHidden,
        Logger:     logger,
    })
    if err != nil && ctx.Err() != nil {
        // Interrupted by a signal.
        return nil
    }
    return err
}

// newLogger returns a logger writing to cfg.File, or discarding output when
// no file is set. The terminal belongs to the UI.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
    level, err := log.ParseLevel(cfg.Level)
    if err != nil {
        return nil, nil, fmt.Errorf("log level: %w", err)
    }
    var (
        w       io.Writer = io.Discard
        closeFn           = func() {}
    )
    if cfg.File != "" {
        if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
            return nil, nil, fmt.Errorf("log file: %w", err)
        }
        fh, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
        if err != nil {
            return nil, nil, fmt.Errorf("log file: %w", err)
        }
        w = fh
        closeFn = func() { _ = fh.Close() }
    }
    logger := log.NewWithOptions(w, log.Options{
        Level:           level,
        ReportTimestamp: true,
        Prefix:          "textpad",
    })
    return logger, closeFn, nil
}
