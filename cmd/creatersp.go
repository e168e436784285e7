package cmd

import (
	"fmt"
	"os"

	"srcbundle/pkg/rsp"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rspOutput string

var createRspCmd = &cobra.Command{
	Use:   "create-rsp",
	Short: "Interactively record bundle options into a response file",
	Long:  `Create-rsp prompts for each bundle option on standard input and writes the answers as flag lines into the output file. Pass the file back to bundle as @<path> to replay the recorded options.`,
	RunE:  runCreateRsp,
}

func init() {
	createRspCmd.Flags().StringVarP(&rspOutput, "output", "o", "", "Destination path for the response file")

	RootCmd.AddCommand(createRspCmd)
}

func runCreateRsp(cmd *cobra.Command, args []string) error {
	if rspOutput == "" {
		return fmt.Errorf("missing output: provide --output with the response file path")
	}

	if err := rsp.Generate(afero.NewOsFs(), os.Stdin, os.Stdout, rspOutput, logger); err != nil {
		return err
	}

	fmt.Printf("Response file created: %s\n", rspOutput)
	return nil
}
