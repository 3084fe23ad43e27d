package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/mnemosyne/internal/config"
	"github.com/UnknownOlympus/mnemosyne/internal/lib/logger/sl"
	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
	"github.com/UnknownOlympus/mnemosyne/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var errContactNotFound = errors.New("no contact information")

// app holds the dependencies shared by every command.
type app struct {
	cfg  *config.Config
	log  *slog.Logger
	reg  *prometheus.Registry
	repo *repository.Repository
}

func (a *app) init(fs afero.Fs, dataDir string, logOut io.Writer) {
	a.cfg = config.MustLoad()
	if dataDir != "" {
		a.cfg.Data.Dir = dataDir
	}

	a.log = setupLogger(a.cfg.Env, logOut)

	// Create a separate registry for metrics
	a.reg = prometheus.NewRegistry()
	a.reg.MustRegister(collectors.NewGoCollector())
	a.reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(a.reg)

	a.repo = repository.New(repository.NewSource(fs, a.cfg.Data.Dir), repository.Documents{
		Employees: a.cfg.Data.EmployeesFile,
		Contacts:  a.cfg.Data.ContactsFile,
	}, appMetrics)

	a.log.Debug("Directory configured", "data_dir", a.cfg.Data.Dir, "env", a.cfg.Env)
}

// newRootCommand builds the CLI reading documents from the given filesystem.
func newRootCommand(fs afero.Fs) *cobra.Command {
	var (
		dataDir string
		a       app
	)

	rootCmd := &cobra.Command{
		Use:          "mnemosyne",
		Short:        "Employee directory lookups",
		Long:         "Read employees and their contact information from JSON documents",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.init(fs, dataDir, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the documents (overrides configuration)")

	rootCmd.AddCommand(
		newEmployeesCommand(&a),
		newContactCommand(&a),
		newServeCommand(&a),
	)

	return rootCmd
}

// newEmployeesCommand creates the employees command
func newEmployeesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			employees, err := a.repo.GetEmployees()
			if err != nil {
				a.log.ErrorContext(cmd.Context(), "Failed to list employees", sl.Op("cli.employees"), sl.Err(err))
				return fmt.Errorf("failed to list employees: %w", err)
			}

			return writeJSON(cmd.OutOrStdout(), employees)
		},
	}
}

// newContactCommand creates the contact command
func newContactCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contact <employee-id>",
		Short: "Show contact information of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID := args[0]

			contact, ok, err := a.repo.GetEmployeeContactInfo(employeeID)
			if err != nil {
				a.log.ErrorContext(cmd.Context(), "Failed to look up contact information",
					sl.Op("cli.contact"), "employee_id", employeeID, sl.Err(err))
				return fmt.Errorf("failed to look up contact information: %w", err)
			}
			if !ok {
				a.log.InfoContext(cmd.Context(), "Contact information not found", "employee_id", employeeID)
				return fmt.Errorf("%w for employee %q", errContactNotFound, employeeID)
			}

			return writeJSON(cmd.OutOrStdout(), contact)
		},
	}
}

// newServeCommand creates the serve command
func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve /metrics and /healthz",
		Long:  "Start the monitoring server exposing Prometheus metrics and document health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			health := server.NewHealthChecker(a.repo, a.log)

			if err := server.StartMonitoringServer(ctx, a.log, a.reg, health, a.cfg.Monitoring.Port); err != nil {
				return err
			}

			a.log.InfoContext(ctx, "Application stopped gracefully...")
			return nil
		},
	}
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
