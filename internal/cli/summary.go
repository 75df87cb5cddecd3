package cli

import (
	"github.com/iwvelando/earning-formula/internal/manager"
	"github.com/iwvelando/earning-formula/pkg/output"
	"github.com/spf13/cobra"
)

func (s *session) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals and per-job results of the working configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.printSummary()
		},
	}
}

func (s *session) printSummary() error {
	return output.Write(s.out(), s.outputFormat, summaryOf(s.app.Manager.State()))
}

func summaryOf(state manager.State) output.Summary {
	summary := output.Summary{
		Currency: state.Currency,
		Language: state.Language,
		Total:    state.TotalResult,
	}
	if state.CurrentLoaded != nil {
		summary.Configuration = state.CurrentLoaded.Name
		summary.Saved = true
	}
	return summary
}
