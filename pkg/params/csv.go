package params

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
)

// WriteCSV exports one row per parameter.
func WriteCSV(w io.Writer, items []Parameter) error {
	out := csv.NewWriter(w)

	records := [][]string{{"cell_name", "parameter_name", "parameter_address"}}
	for _, item := range items {
		records = append(records, []string{item.Cell, item.Name, strconv.Itoa(item.Address)})
	}

	return eris.Wrap(out.WriteAll(records), "failed to write CSV")
}

// WriteAddressListsCSV exports one row per cell with its full address list.
func WriteAddressListsCSV(w io.Writer, lists map[string][]int) error {
	out := csv.NewWriter(w)

	records := [][]string{{"cell_name", "address_count", "addresses"}}
	for _, cell := range sortedKeys(lists) {
		addresses := lists[cell]
		records = append(records, []string{
			cell,
			strconv.Itoa(len(addresses)),
			joinInts(addresses),
		})
	}

	return eris.Wrap(out.WriteAll(records), "failed to write CSV")
}

// WriteAddressRangesCSV exports one row per cell with its address range.
func WriteAddressRangesCSV(w io.Writer, ranges map[string]AddressRange) error {
	out := csv.NewWriter(w)

	records := [][]string{{"cell_name", "address_count", "min_address", "max_address", "address_range"}}
	for _, cell := range sortedKeys(ranges) {
		r := ranges[cell]
		records = append(records, []string{
			cell,
			strconv.Itoa(r.Count),
			strconv.Itoa(r.Min),
			strconv.Itoa(r.Max),
			r.String(),
		})
	}

	return eris.Wrap(out.WriteAll(records), "failed to write CSV")
}
