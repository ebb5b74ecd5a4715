package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alowayed/go-vers/pkg/univers"
)

// newEcosystemCommand builds the "univers <scheme>" command group with its
// compare/sort/contains subcommands, for any scheme satisfying the generic
// univers.Ecosystem interface.
func newEcosystemCommand[V univers.Version[V], VR univers.VersionRange[V]](e univers.Ecosystem[V, VR]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   e.Name(),
		Short: fmt.Sprintf("Work with %s versions", e.Name()),
	}
	cmd.AddCommand(newCompareCommand(e))
	cmd.AddCommand(newSortCommand(e))
	cmd.AddCommand(newContainsCommand(e))
	return cmd
}

func newCompareCommand[V univers.Version[V], VR univers.VersionRange[V]](e univers.Ecosystem[V, VR]) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <version1> <version2>",
		Short: "Print -1, 0, or 1 according to version1's order relative to version2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compare(e, args)
			if err != nil {
				return err
			}
			logger.Debug("compared versions", "ecosystem", e.Name(), "a", args[0], "b", args[1], "result", result)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newSortCommand[V univers.Version[V], VR univers.VersionRange[V]](e univers.Ecosystem[V, VR]) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <version>...",
		Short: "Print the given versions in ascending order, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sorted, err := sort(e, args)
			if err != nil {
				return err
			}
			logger.Debug("sorted versions", "ecosystem", e.Name(), "count", len(sorted))
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sorted, "\n"))
			return nil
		},
	}
}

func newContainsCommand[V univers.Version[V], VR univers.VersionRange[V]](e univers.Ecosystem[V, VR]) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <range> <version>",
		Short: "Print true or false according to whether range admits version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := contains(e, args)
			if err != nil {
				return err
			}
			logger.Debug("checked containment", "ecosystem", e.Name(), "range", args[0], "version", args[1], "result", ok)
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}
