package params

import "sort"

// AddressRange describes the registers a cell occupies. Count is the
// number of distinct addresses, not the width of the range.
type AddressRange struct {
	Min   int
	Max   int
	Count int
}

// Cells returns the sorted list of unique cell names.
func Cells(items []Parameter) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, item := range items {
		if !seen[item.Cell] {
			seen[item.Cell] = true
			result = append(result, item.Cell)
		}
	}

	sort.Strings(result)
	return result
}

// FilterCell returns the parameters belonging to the given cell.
func FilterCell(items []Parameter, cell string) []Parameter {
	result := make([]Parameter, 0)
	for _, item := range items {
		if item.Cell == cell {
			result = append(result, item)
		}
	}
	return result
}

// AddressLists groups the distinct parameter addresses by cell, sorted
// numerically.
func AddressLists(items []Parameter) map[string][]int {
	seen := make(map[string]map[int]bool)
	result := make(map[string][]int)

	for _, item := range items {
		if seen[item.Cell] == nil {
			seen[item.Cell] = make(map[int]bool)
		}
		if !seen[item.Cell][item.Address] {
			seen[item.Cell][item.Address] = true
			result[item.Cell] = append(result[item.Cell], item.Address)
		}
	}

	for cell := range result {
		sort.Ints(result[cell])
	}

	return result
}

// AddressRanges reduces each cell's addresses to their range and count.
func AddressRanges(items []Parameter) map[string]AddressRange {
	result := make(map[string]AddressRange)

	for cell, addresses := range AddressLists(items) {
		result[cell] = AddressRange{
			Min:   addresses[0],
			Max:   addresses[len(addresses)-1],
			Count: len(addresses),
		}
	}

	return result
}
