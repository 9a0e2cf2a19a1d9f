package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	elcl "github.com/erbsland-dev/elcl-go"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse a document and report the first error, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := args[0]
		if _, err := parseFile(path); err != nil {
			if e, ok := elcl.AsError(err); ok {
				fmt.Printf("%s: %s\n", e.Kind(), e.Error())
			} else {
				fmt.Println(err)
			}
			return err
		}
		fmt.Printf("%s: ok\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
