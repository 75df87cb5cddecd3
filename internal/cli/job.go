package cli

import (
	"fmt"
	"strings"

	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/spf13/cobra"
)

type jobFlags struct {
	id           string
	name         string
	salary       float64
	mode         string
	hours        string
	monthlyHours float64
}

func (f *jobFlags) register(cmd *cobra.Command, withID bool) {
	if withID {
		cmd.Flags().StringVar(&f.id, "id", "", "job id (generated when empty)")
	}
	cmd.Flags().StringVar(&f.name, "name", "", "job name")
	cmd.Flags().Float64Var(&f.salary, "salary", 0, "monthly salary")
	cmd.Flags().StringVar(&f.mode, "mode", "daily", "hours input: daily or monthly")
	cmd.Flags().StringVar(&f.hours, "hours", "", "daily schedule, e.g. mon=4,tue=4,sat=2")
	cmd.Flags().Float64Var(&f.monthlyHours, "monthly-hours", 0, "total monthly hours (monthly mode)")
}

// apply copies the flags that were set onto job.
func (f *jobFlags) apply(cmd *cobra.Command, job *model.Job) error {
	changed := cmd.Flags().Changed

	if changed("id") {
		job.ID = strings.TrimSpace(f.id)
	}
	if changed("name") {
		job.Name = f.name
	}
	if changed("salary") {
		job.MonthlySalary = f.salary
	}
	if changed("mode") || job.InputType == "" {
		mode, err := parseMode(f.mode)
		if err != nil {
			return err
		}
		job.InputType = mode
	}
	if changed("hours") {
		hours, err := parseWeekHours(f.hours)
		if err != nil {
			return err
		}
		job.HoursPerDay = hours
	}
	if changed("monthly-hours") {
		job.TotalMonthlyHours = f.monthlyHours
	}
	return nil
}

func (s *session) jobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Add, update and remove jobs of the working configuration",
	}
	cmd.AddCommand(
		s.jobAddCommand(),
		s.jobUpdateCommand(),
		s.jobDeleteCommand(),
		s.jobClearCommand(),
	)
	return cmd
}

func (s *session) jobAddCommand() *cobra.Command {
	var flags jobFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a job",
		Example: `  earning-formula job add --name "Main job" --salary 150000 --hours mon=8,tue=8,wed=8,thu=8,fri=8
  earning-formula job add --name Freelance --salary 40000 --mode monthly --monthly-hours 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var job model.Job
			if err := flags.apply(cmd, &job); err != nil {
				return err
			}
			added, err := s.app.Manager.AddJob(cmd.Context(), job)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out(), "Added job %q (%s)\n", added.Name, added.ID)
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

func (s *session) jobUpdateCommand() *cobra.Command {
	var flags jobFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the fields given as flags on an existing job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := model.Job{ID: args[0]}
			jobs := s.app.Manager.State().Jobs
			if i := model.IndexOfJob(jobs, args[0]); i >= 0 {
				job = jobs[i]
			}
			if err := flags.apply(cmd, &job); err != nil {
				return err
			}
			if err := s.app.Manager.UpdateJob(cmd.Context(), job); err != nil {
				return err
			}
			fmt.Fprintf(s.out(), "Updated job %q (%s)\n", job.Name, job.ID)
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}

func (s *session) jobDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Remove a job",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Manager.DeleteJob(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(s.out(), "Deleted job %s\n", args[0])
			return nil
		},
	}
}

func (s *session) jobClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every job and detach from the loaded configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Manager.ClearAllJobs(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(s.out(), "Cleared all jobs")
			return nil
		},
	}
}
