package params

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteTable renders every parameter as one row.
func WriteTable(w io.Writer, items []Parameter) {
	fmt.Fprintf(w, "%-40s %-50s %-10s\n", "Cell Name", "Parameter Name", "Address")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, item := range items {
		fmt.Fprintf(w, "%-40s %-50s %-10d\n", item.Cell, item.Name, item.Address)
	}
}

// WriteAddressLists renders the per-cell address lists. Long lists are
// truncated after ten entries.
func WriteAddressLists(w io.Writer, lists map[string][]int) {
	fmt.Fprintf(w, "%-40s %-15s %s\n", "Cell Name", "Address Count", "Addresses")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, cell := range sortedKeys(lists) {
		addresses := lists[cell]
		shown := addresses
		suffix := ""
		if len(addresses) > 10 {
			shown = addresses[:10]
			suffix = fmt.Sprintf(", ... (+%d more)", len(addresses)-10)
		}

		fmt.Fprintf(w, "%-40s %-15d %s%s\n", cell, len(addresses), joinInts(shown), suffix)
	}
}

// WriteAddressRanges renders the per-cell address ranges.
func WriteAddressRanges(w io.Writer, ranges map[string]AddressRange) {
	fmt.Fprintf(w, "%-40s %-15s %s\n", "Cell Name", "Address Count", "Address Range")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, cell := range sortedKeys(ranges) {
		r := ranges[cell]
		fmt.Fprintf(w, "%-40s %-15d %s\n", cell, r.Count, r.String())
	}
}

// String renders the range as "addr" for single registers and
// "[min, max]" otherwise.
func (r AddressRange) String() string {
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
