package cli

import (
	"fmt"

	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/spf13/cobra"
)

func (s *session) currencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [CODE]",
		Short: "Show or select the display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := s.app.Manager.ChangeCurrency(cmd.Context(), args[0]); err != nil {
					return err
				}
			}

			selected := s.app.Manager.State().Currency
			for _, c := range model.Currencies() {
				marker := " "
				if c.Code == selected.Code {
					marker = "*"
				}
				fmt.Fprintf(s.out(), "%s %s  %s  %s\n", marker, c.Code, c.Symbol, c.DisplayName)
			}
			return nil
		},
	}
}

func (s *session) languageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "language [CODE]",
		Short: "Show or select the display language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := s.app.Manager.ChangeLanguage(cmd.Context(), args[0]); err != nil {
					return err
				}
			}

			selected := s.app.Manager.State().Language
			for _, l := range model.Languages() {
				marker := " "
				if l.Code == selected.Code {
					marker = "*"
				}
				fmt.Fprintf(s.out(), "%s %s  %s (%s)\n", marker, l.Code, l.NativeName, l.DisplayName)
			}
			return nil
		},
	}
}
