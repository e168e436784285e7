package cmd

import (
	"fmt"
	"os"

	"srcbundle/pkg/bundle"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	bundleLanguage    string
	bundleOutput      string
	bundleNote        bool
	bundleSort        string
	bundleRemoveEmpty bool
	bundleAuthor      string
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Concatenate the current directory's source files into one output file",
	Long:  `Bundle collects the top-level files of the current directory whose extension matches the language filter, sorts them, and concatenates them into the output file. Provenance comments and an author line are optional.`,
	RunE:  runBundle,
}

func init() {
	bundleCmd.Flags().StringVarP(&bundleLanguage, "language", "l", "", "Comma-separated extensions to include, or \"all\"")
	bundleCmd.Flags().StringVarP(&bundleOutput, "output", "o", "", "Destination path for the bundle")
	bundleCmd.Flags().BoolVarP(&bundleNote, "note", "n", false, "Include per-file provenance comments")
	bundleCmd.Flags().StringVarP(&bundleSort, "sort", "s", bundle.SortByName, "Ordering of files in the bundle: name or type")
	bundleCmd.Flags().BoolVarP(&bundleRemoveEmpty, "remove-empty-lines", "r", false, "Strip blank lines from source files before bundling")
	bundleCmd.Flags().StringVarP(&bundleAuthor, "author", "a", "", "Author line written at the top of the bundle")

	RootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, args []string) error {
	cfg := &bundle.Config{
		Languages:        bundle.ParseLanguages(bundleLanguage),
		Output:           bundleOutput,
		Note:             bundleNote,
		Sort:             bundleSort,
		RemoveEmptyLines: bundleRemoveEmpty,
		Author:           bundleAuthor,
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	outPath, err := bundle.Run(afero.NewOsFs(), cfg, dir, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Bundle created: %s\n", outPath)
	return nil
}
