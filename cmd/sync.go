package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/misterclayt0n/barbell/internal/storage"
	"github.com/spf13/cobra"
)

var dumpFormat string

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all stored data to a TOML or YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(cmd, args)
		if err != nil {
			return err
		}

		outputFile := ""
		if len(args) == 1 {
			outputFile = args[0]
		} else if outputFile, err = storage.GetDBExportPath(format); err != nil {
			return fmt.Errorf("Failed to resolve export path: %w", err)
		}

		st, err := storage.NewStorage(cfg.DB.ConnectionString)
		if err != nil {
			return fmt.Errorf("Failed to open database: %w", err)
		}
		defer st.Close()

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("Failed to create %s: %w", outputFile, err)
		}
		defer f.Close()

		keys, err := exportDump(cmd.Context(), st, f, format)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		for _, k := range keys {
			fmt.Printf("  • %s\n", k)
		}
		return nil
	},
}

// exportDump writes the dump and returns the keys it contains.
func exportDump(ctx context.Context, st *storage.Storage, w io.Writer, format storage.Format) ([]string, error) {
	if err := st.Export(ctx, w, format); err != nil {
		return nil, fmt.Errorf("error exporting database: %w", err)
	}
	keys, err := st.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to list exported keys: %w", err)
	}
	return keys, nil
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Replace the stored data with the contents of a dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(cmd, args)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Failed to open dump: %w", err)
		}
		defer f.Close()

		st, err := storage.NewStorage(cfg.DB.ConnectionString)
		if err != nil {
			return fmt.Errorf("Failed to open database: %w", err)
		}
		defer st.Close()

		n, err := st.Import(cmd.Context(), f, format)
		if err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}

		fmt.Printf("✅ Database built successfully from %s (%d entries)\n", args[0], n)
		return nil
	},
}

// resolveFormat prefers --format and otherwise goes by the file extension.
func resolveFormat(cmd *cobra.Command, args []string) (storage.Format, error) {
	if cmd.Flags().Changed("format") || len(args) == 0 {
		return storage.ParseFormat(dumpFormat)
	}
	return storage.FormatFromPath(args[0]), nil
}

func init() {
	for _, c := range []*cobra.Command{exportCmd, buildDBCmd} {
		c.Flags().StringVarP(&dumpFormat, "format", "f", string(storage.FormatTOML), "Dump format: toml or yaml")
	}
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
