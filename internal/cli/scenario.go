package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/loanscope/loan-compare/internal/store"
	"github.com/spf13/cobra"
)

func newScenarioCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage the saved scenario store",
	}

	cmd.AddCommand(
		newScenarioListCmd(rc),
		newScenarioDeleteCmd(rc),
		newScenarioExportCmd(rc),
		newScenarioImportCmd(rc),
	)

	return cmd
}

func openStore(rc *RootConfig) (*store.Store, error) {
	conf, _, err := rc.Load()
	if err != nil {
		return nil, err
	}
	return store.Open(storePath(conf))
}

func newScenarioListCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rc)
			if err != nil {
				return err
			}
			defer func() {
				_ = st.Close()
			}()

			scenarios, err := st.ListScenarios()
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(scenarios))
			for id := range scenarios {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				sc := scenarios[id]
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %s\n", id, sc.LoanType, sc.Name)
			}
			return nil
		},
	}
}

func newScenarioDeleteCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved scenario and its results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rc)
			if err != nil {
				return err
			}
			defer func() {
				_ = st.Close()
			}()

			return st.DeleteScenario(args[0])
		},
	}
}

func newScenarioExportCmd(rc *RootConfig) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved scenarios and results as a versioned document",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rc)
			if err != nil {
				return err
			}
			defer func() {
				_ = st.Close()
			}()

			if outputPath == "" {
				return st.Export(cmd.OutOrStdout())
			}

			file, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputPath, err)
			}
			defer func() {
				_ = file.Close()
			}()

			return st.Export(file)
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "", "write the document to a file instead of stdout")

	return cmd
}

func newScenarioImportCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported scenario document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rc)
			if err != nil {
				return err
			}
			defer func() {
				_ = st.Close()
			}()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() {
				_ = file.Close()
			}()

			count, err := st.Import(file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d scenarios\n", count)
			return nil
		},
	}
}
