package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/matchtips/internal/form"
	"github.com/yourusername/matchtips/internal/logger"
)

var (
	exampleOutput string
	keepNames     bool
)

func init() {
	exampleCmd.Flags().StringVarP(&exampleOutput, "output", "o", "", "Write the demo form to a file instead of stdout")
	clearCmd.Flags().BoolVar(&keepNames, "keep-names", false, "Keep the team names")
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the demo match as a form file",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := form.Example()
		if exampleOutput != "" {
			if err := f.Save(exampleOutput); err != nil {
				return err
			}
			logger.NewAuditLogger(appLogger).LogFormWritten(exampleOutput, len(f))
			return nil
		}
		data, err := f.Marshal()
		if err != nil {
			return fmt.Errorf("failed to encode form: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <form.yaml>",
	Short: "Empty every field of a form file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := form.Load(path)
		if err != nil {
			return err
		}
		before := len(f)
		f.Clear(keepNames)
		if err := f.Save(path); err != nil {
			return err
		}
		logger.NewAuditLogger(appLogger).LogFormCleared(path, keepNames, before-len(f))
		return nil
	},
}
