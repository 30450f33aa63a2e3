package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/gridwell/overlaykit/internal/control"
	"github.com/gridwell/overlaykit/internal/controls/borderside"
	"github.com/gridwell/overlaykit/internal/controls/colorchooser"
	"github.com/gridwell/overlaykit/internal/controls/list"
	"github.com/gridwell/overlaykit/internal/logger"
	"github.com/gridwell/overlaykit/internal/panel"
	"github.com/gridwell/overlaykit/internal/paneldef"
	"github.com/gridwell/overlaykit/internal/render"
	"github.com/gridwell/overlaykit/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "demo [definition.yaml]",
		Short: "Launch an interactive settings sheet from a panel definition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args, flags, themeName)
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "Renderer theme (default, high-contrast)")

	return cmd
}

func runDemo(cmd *cobra.Command, args []string, flags *rootFlags, themeName string) error {
	settings, err := loadSettings(flags, themeName)
	if err != nil {
		return err
	}

	human := term.IsTerminal(int(os.Stderr.Fd()))
	log, err := logger.New(logger.Options{
		Level:         settings.GetString("log_level"),
		HumanReadable: human,
	})
	if err != nil {
		return err
	}

	doc, err := loadDefinition(args)
	if err != nil {
		return err
	}

	theme := render.ThemeByName(settings.GetString("theme"))
	renderer := render.NewTerminal(theme, 80, 24)
	reg := control.NewRegistry(renderer, control.WithLogger(log))

	bh := tui.Behaviors{
		List:    list.New(),
		Chooser: colorchooser.New(),
		Border:  borderside.New(),
	}
	for _, b := range []control.Behavior{bh.List, bh.Chooser, bh.Border} {
		if err := reg.RegisterBehavior(b); err != nil {
			return err
		}
	}

	panels, err := paneldef.Build(reg, doc)
	if err != nil {
		return err
	}

	if cell, ok := panels["cell"]; ok {
		if err := panel.Load(reg, cell, sampleCellAttrs()); err != nil {
			return err
		}
	}

	program := tea.NewProgram(
		tui.NewModel(reg, renderer, bh),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	return printPanels(cmd, reg, panels)
}

// loadSettings resolves demo settings from overlaykit.yaml, OVERLAYKIT_*
// environment variables, and the --theme flag, in ascending precedence.
func loadSettings(flags *rootFlags, themeName string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("theme", "default")
	v.SetDefault("log_level", "warn")

	v.SetConfigName("overlaykit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("OVERLAYKIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if themeName != "" {
		v.Set("theme", themeName)
	}
	if flags.logLevel != "" {
		v.Set("log_level", flags.logLevel)
	}
	return v, nil
}

func loadDefinition(args []string) (*paneldef.Document, error) {
	if len(args) == 1 {
		return paneldef.Parse(args[0])
	}
	return paneldef.ParseBytes([]byte(defaultDefinition))
}

// sampleCellAttrs seeds the demo sheet the way a host application would load
// the selected cell's current formatting.
func sampleCellAttrs() map[string]control.AttributeValue {
	return map[string]control.AttributeValue{
		"font":      control.Explicit("arial"),
		"textcolor": control.Explicit("rgb(0,0,0)"),
		"bgcolor":   {IsDefault: true},
		"bt":        control.Explicit("1px solid rgb(0,0,0)"),
		"bb":        {IsDefault: false, Value: ""},
		"bl":        {IsDefault: false, Value: ""},
		"br":        {IsDefault: false, Value: ""},
	}
}

// printPanels unloads every panel and prints the edited attribute maps, the
// seam a host application would turn into domain commands.
func printPanels(cmd *cobra.Command, reg *control.Registry, panels map[string]*panel.Panel) error {
	out := make(map[string]map[string]string, len(panels))
	for name, p := range panels {
		attrs, err := panel.Unload(reg, p)
		if err != nil {
			return err
		}
		flat := make(map[string]string, len(attrs))
		for setting, value := range attrs {
			if value.IsDefault {
				flat[setting] = "(default)"
			} else {
				flat[setting] = value.Value
			}
		}
		out[name] = flat
	}

	encoded, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(encoded))
	return nil
}
