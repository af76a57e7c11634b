package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/hifiberry/dspprofiles/pkg"
	"github.com/hifiberry/dspprofiles/pkg/params"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Tools for SigmaStudio .params exports",
	Long: `Extracts cell names, parameter names and parameter addresses from the
.params file that SigmaStudio writes next to the compiled DSP program.
The subcommands offer different views of the same data and can export
each view as CSV.`,
}

var paramsTableCmd = &cobra.Command{
	Use:   "table file.params",
	Short: "Lists every parameter with its cell and address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadParams(cmd, args[0])
		if err != nil {
			return err
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			params.WriteTable(os.Stdout, items)
			fmt.Printf("\nTotal parameters: %d\nUnique cells: %d\n",
				len(items), len(params.Cells(items)))
		}

		return saveOutput(cmd, func(f *os.File) error {
			return params.WriteCSV(f, items)
		})
	},
}

var paramsAddressesCmd = &cobra.Command{
	Use:   "addresses file.params",
	Short: "Groups parameter addresses by cell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadParams(cmd, args[0])
		if err != nil {
			return err
		}

		lists := params.AddressLists(items)
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			params.WriteAddressLists(os.Stdout, lists)
			total := 0
			for _, addrs := range lists {
				total += len(addrs)
			}
			fmt.Printf("\nTotal parameters: %d\nUnique cells: %d\nUnique addresses: %d\n",
				len(items), len(lists), total)
		}

		return saveOutput(cmd, func(f *os.File) error {
			return params.WriteAddressListsCSV(f, lists)
		})
	},
}

var paramsRangesCmd = &cobra.Command{
	Use:   "ranges file.params",
	Short: "Shows the address range covered by each cell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadParams(cmd, args[0])
		if err != nil {
			return err
		}

		ranges := params.AddressRanges(items)
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			params.WriteAddressRanges(os.Stdout, ranges)
			total := 0
			for _, r := range ranges {
				total += r.Count
			}
			fmt.Printf("\nTotal parameters: %d\nUnique cells: %d\nUnique addresses: %d\n",
				len(items), len(ranges), total)
		}

		return saveOutput(cmd, func(f *os.File) error {
			return params.WriteAddressRangesCSV(f, ranges)
		})
	},
}

var paramsMetadataCmd = &cobra.Command{
	Use:   "metadata file.params",
	Short: "Generates the profile <metadata> XML fragment",
	Long: `Maps the parsed parameters onto the register metadata entries that the
DSP profile XML expects and prints the resulting fragment. Unmapped
registers are emitted as XML comments so they can be filled in manually.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := params.ParseFile(args[0])
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return eris.Errorf("no parameters found in %s", args[0])
		}

		cards := params.BuiltinCards()
		cardsFile, _ := cmd.Flags().GetString("cards-file")
		if cardsFile != "" {
			extra, err := params.LoadCards(cardsFile)
			if err != nil {
				return err
			}
			for name, card := range extra {
				cards[name] = card
			}
		}

		cardName, _ := cmd.Flags().GetString("card")
		card, ok := cards[cardName]
		if cardName != "" && !ok {
			names := make([]string, 0, len(cards))
			for name := range cards {
				names = append(names, name)
			}
			sort.Strings(names)
			return eris.Errorf("unknown card %s (available: %s)", cardName, strings.Join(names, ", "))
		}

		version, _ := cmd.Flags().GetString("profile-version")
		fragment := params.Metadata(items, card, version)

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Println(fragment)
			return nil
		}

		err = os.WriteFile(output, []byte(fragment+"\n"), 0o644)
		if err != nil {
			return eris.Wrapf(err, "failed to write %s", output)
		}

		pkg.PrintSubtask("XML metadata saved to " + output)
		return nil
	},
}

// loadParams parses the given file and applies the shared --cell filter.
func loadParams(cmd *cobra.Command, path string) ([]params.Parameter, error) {
	items, err := params.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, eris.Errorf("no parameters found in %s", path)
	}

	cell, _ := cmd.Flags().GetString("cell")
	if cell == "" {
		return items, nil
	}

	filtered := params.FilterCell(items, cell)
	if len(filtered) == 0 {
		cells := params.Cells(items)
		return nil, eris.Errorf("cell %s not found (available: %s)", cell, strings.Join(cells, ", "))
	}
	return filtered, nil
}

// saveOutput writes the view to the file given via --output, if any.
func saveOutput(cmd *cobra.Command, write func(*os.File) error) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return eris.Wrapf(err, "failed to create %s", output)
	}

	err = write(f)
	if err != nil {
		f.Close()
		return eris.Wrapf(err, "failed to write %s", output)
	}

	err = f.Close()
	if err != nil {
		return eris.Wrapf(err, "failed to write %s", output)
	}

	pkg.PrintSubtask("Saved to " + output)
	return nil
}

func init() {
	for _, sub := range []*cobra.Command{paramsTableCmd, paramsAddressesCmd, paramsRangesCmd} {
		sub.Flags().StringP("output", "o", "", "write this view as CSV to the given file")
		sub.Flags().StringP("cell", "c", "", "only show parameters of this cell")
		sub.Flags().BoolP("quiet", "q", false, "suppress console output")
		paramsCmd.AddCommand(sub)
	}

	paramsMetadataCmd.Flags().StringP("output", "o", "", "write the XML fragment to the given file")
	paramsMetadataCmd.Flags().String("card", "", "card the profile targets (beocreate, dacdsp, dspaddon)")
	paramsMetadataCmd.Flags().String("profile-version", "", "override the profile version")
	paramsMetadataCmd.Flags().String("cards-file", "", "YAML file with additional card definitions")
	paramsCmd.AddCommand(paramsMetadataCmd)

	rootCmd.AddCommand(paramsCmd)
}
