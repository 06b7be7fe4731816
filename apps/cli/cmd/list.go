package cmd

import (
	"fmt"

	"benchsuite/packages/metadata"

	"github.com/spf13/cobra"
)

var (
	listTag       string
	listFramework string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List frameworks and test implementations",
}

var listFrameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List every framework under the benchmarks directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		frameworks, err := metadata.ListAllFrameworks()
		return metadata.PrintNames(frameworks, err, cmd.OutOrStdout())
	},
}

var listTestsCmd = &cobra.Command{
	Use:   "tests",
	Short: "List test implementations, optionally filtered by tag or framework",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listTag != "" && listFramework != "" {
			return fmt.Errorf("--tag and --framework are mutually exclusive")
		}
		out := cmd.OutOrStdout()
		switch {
		case listTag != "":
			tests, err := metadata.ListTestsByTag(listTag)
			return metadata.PrintNames(tests, err, out)
		case listFramework != "":
			tests, err := metadata.ListTestsForFramework(listFramework)
			return metadata.PrintNames(tests, err, out)
		default:
			tests, err := metadata.ListAllTests()
			return metadata.PrintNames(tests, err, out)
		}
	},
}

func init() {
	listTestsCmd.Flags().StringVar(&listTag, "tag", "", "only tests declaring this tag")
	listTestsCmd.Flags().StringVar(&listFramework, "framework", "", "only tests of this framework")

	listCmd.AddCommand(listFrameworksCmd)
	listCmd.AddCommand(listTestsCmd)
}
