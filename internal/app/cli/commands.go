package cli

import (
	"github.com/spf13/cobra"

	"flip/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type          CommandType
	ConfigPath    string
	Left          *string
	Right         *string
	RightSelected *bool
	NoMouse       bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version       bool
	left          string
	right         string
	rightSelected bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandRun}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(buildVersionCommand(result))
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if root.Flags().Changed("left") {
		result.Left = &flags.left
	}

	if root.Flags().Changed("right") {
		result.Right = &flags.right
	}

	if root.Flags().Changed("right-selected") {
		result.RightSelected = &flags.rightSelected
	}

	return result, nil
}

// Apply lets explicitly given flags override the loaded configuration
func (o *Options) Apply(cfg *config.Config) {
	if o.Left != nil {
		cfg.Switch.Left = *o.Left
	}

	if o.Right != nil {
		cfg.Switch.Right = *o.Right
	}

	if o.RightSelected != nil {
		cfg.Switch.RightSelected = *o.RightSelected
	}

	if o.NoMouse {
		cfg.Mouse = false
	}
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A two-state drag-to-toggle switch for the terminal",
		Long: `Flip shows a two-state switch in the terminal. Drag the thumb or click
the track with the mouse, or use the keyboard, then quit to print the value.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().StringVarP(&result.ConfigPath, "config", "c", "", "Path to config file (default flip.yaml)")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().StringVar(&flags.left, "left", "", "Left label text")
	cmd.Flags().StringVar(&flags.right, "right", "", "Right label text")
	cmd.Flags().BoolVar(&flags.rightSelected, "right-selected", false, "Start with the right side selected")
	cmd.Flags().BoolVar(&result.NoMouse, "no-mouse", false, "Disable mouse input")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
