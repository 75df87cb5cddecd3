package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/earning-formula/pkg/datetime"
	"github.com/spf13/cobra"
)

func (s *session) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"configuration"},
		Short:   "Manage saved configurations",
	}
	cmd.AddCommand(
		s.configListCommand(),
		s.configSaveCommand(),
		s.configNewCommand(),
		s.configLoadCommand(),
		s.configDeleteCommand(),
		s.configExportCommand(),
		s.configImportCommand(),
	)
	return cmd
}

func (s *session) configListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved configurations, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Manager.RefreshSavedConfigurations(cmd.Context()); err != nil {
				return err
			}
			state := s.app.Manager.State()
			if len(state.SavedConfigurations) == 0 {
				fmt.Fprintln(s.out(), "No saved configurations")
				return nil
			}

			for _, c := range state.SavedConfigurations {
				marker := " "
				if state.CurrentLoaded != nil && state.CurrentLoaded.ID == c.ID {
					marker = "*"
				}
				fmt.Fprintf(s.out(), "%s %-36s  %-30s  %2d jobs  %s\n",
					marker, c.ID, c.Name, len(c.Jobs),
					datetime.FormatMillis(c.CreatedAt, nil))
			}
			return nil
		},
	}
}

func (s *session) configSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME",
		Short: "Save the working jobs as a named configuration",
		Long: `Save the working jobs. Using the name of the loaded configuration updates
it in place; any other name creates a new configuration.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := s.app.Manager.SaveConfiguration(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out(), "Saved configuration %q (%s)\n", saved.Name, saved.ID)
			return nil
		},
	}
}

func (s *session) configNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new [NAME]",
		Short: "Start an empty configuration, named or unsaved",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				if err := s.app.Manager.CreateNewConfiguration(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(s.out(), "Started an empty unsaved configuration")
				return nil
			}

			created, err := s.app.Manager.CreateNewConfigurationWithName(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out(), "Created configuration %q (%s)\n", created.Name, created.ID)
			return nil
		},
	}
}

func (s *session) configLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load ID",
		Short: "Load a saved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Manager.LoadConfiguration(cmd.Context(), args[0]); err != nil {
				return err
			}
			return s.printSummary()
		},
	}
}

func (s *session) configDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a saved configuration",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Manager.DeleteConfiguration(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(s.out(), "Deleted configuration %s\n", args[0])
			return nil
		},
	}
}

func (s *session) configExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write every saved configuration as JSON to FILE or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := s.app.Manager.ExportConfigurations(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 || args[0] == "-" {
				_, err := fmt.Fprintln(s.out(), data)
				return err
			}
			if err := os.WriteFile(args[0], []byte(data+"\n"), 0o600); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			fmt.Fprintf(s.out(), "Exported configurations to %s\n", args[0])
			return nil
		},
	}
}

func (s *session) configImportCommand() *cobra.Command {
	var replace bool
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Merge configurations from a JSON export (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(s.opts.Stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read import: %w", err)
			}

			n, err := s.app.Manager.ImportConfigurations(cmd.Context(), string(data), replace)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out(), "Imported %d configurations\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "delete every saved configuration before importing")
	return cmd
}
