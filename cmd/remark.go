package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	remarkWeek int
	remarkDay  int
	remarkText string
)

var remarkCmd = &cobra.Command{
	Use:   "remark [exercise-index]",
	Short: "Add a remark to an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ei, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		di, err := dayArg(remarkDay)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.tr.AddRemark(cmd.Context(), weekArg(remarkWeek), di, ei, remarkText); err != nil {
			return fmt.Errorf("Failed to add remark: %w", err)
		}

		fmt.Println("✅ Remark added")
		return nil
	},
}

var editRemarkCmd = &cobra.Command{
	Use:   "edit-remark [exercise-index] [remark-index]",
	Short: "Rewrite a remark; an empty --text deletes it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ei, err := parseIndex(args[0], "exercise")
		if err != nil {
			return err
		}
		ri, err := parseIndex(args[1], "remark")
		if err != nil {
			return err
		}
		di, err := dayArg(remarkDay)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.tr.EditRemark(cmd.Context(), weekArg(remarkWeek), di, ei, ri, remarkText); err != nil {
			return fmt.Errorf("Failed to edit remark: %w", err)
		}

		if remarkText == "" {
			fmt.Println("✅ Remark deleted")
		} else {
			fmt.Println("✅ Remark updated")
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{remarkCmd, editRemarkCmd} {
		c.Flags().IntVarP(&remarkWeek, "week", "w", 0, "Week number (defaults to the current week)")
		c.Flags().IntVarP(&remarkDay, "day", "d", 0, "Day number")
		c.Flags().StringVarP(&remarkText, "text", "t", "", "Remark text")
		c.MarkFlagRequired("day")
	}
	remarkCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(remarkCmd)
	rootCmd.AddCommand(editRemarkCmd)
}
