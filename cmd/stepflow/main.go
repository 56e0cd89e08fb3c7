package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/afs/url"

	"github.com/viant/stepflow"
	"github.com/viant/stepflow/model"
	"github.com/viant/stepflow/progress"
	"github.com/viant/stepflow/template"
	"github.com/viant/stepflow/tracing"
)

var rootCmd = &cobra.Command{
	Use:           "stepflow",
	Short:         "Create and run code writing workflows",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(newCreateCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newCreateCmd() *cobra.Command {
	var (
		goal      string
		run       bool
		baseURL   string
		traceFile string
	)
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a code writing workflow in its own folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if traceFile != "" {
				if err := tracing.Init("stepflow", "dev", traceFile); err != nil {
					return err
				}
			}
			config := stepflow.DefaultConfig()
			config.WorkflowsBaseURL = baseURL
			tracker := progress.NewTracker(name, nil)
			service := stepflow.New(stepflow.WithConfig(config), stepflow.WithObserver(tracker))

			folder, err := service.CreateWorkflow(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Printf("Code writing workflow %q created in: %v\n", name, folder)
			fmt.Printf("  - Workflow YAML: %v\n", url.Join(folder, "workflow.yaml"))
			fmt.Printf("  - Memory file: %v\n", url.Join(folder, "memory.md"))
			if !run {
				return nil
			}

			memoryFile := url.Join(folder, "memory.md")
			workflow, err := template.CodeWorkflow(name).Builder().
				WithGoal(goal).
				Memory(memoryFile).
				Compile()
			if err != nil {
				return err
			}
			responses, err := service.Run(cmd.Context(), workflow)
			if err != nil {
				return err
			}
			for _, response := range responses {
				if response.Status == model.StatusFail {
					return fmt.Errorf("workflow %q failed: %v", name, response.Error)
				}
			}
			stats := tracker.Snapshot()
			fmt.Printf("Workflow executed (%v steps completed); memory updated at %v\n", stats.CompletedSteps, memoryFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&goal, "goal", template.DefaultGoal, "goal statement for the workflow")
	cmd.Flags().BoolVar(&run, "run", false, "execute the workflow after creation")
	cmd.Flags().StringVar(&baseURL, "base", "workflows", "base folder for workflow creation")
	cmd.Flags().StringVar(&traceFile, "trace", "", "write OpenTelemetry spans to this file")
	return cmd
}
