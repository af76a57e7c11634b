package params

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParameters() []Parameter {
	return []Parameter{
		{Cell: "MasterVol", Name: "target", Address: 70},
		{Cell: "Loudspeaker EQ.IIR_A", Name: "b0", Address: 102},
		{Cell: "Loudspeaker EQ.IIR_A", Name: "b1", Address: 100},
		{Cell: "Loudspeaker EQ.IIR_A", Name: "a1", Address: 101},
		// duplicate address within the same cell
		{Cell: "Loudspeaker EQ.IIR_A", Name: "alias", Address: 100},
	}
}

func TestCells(t *testing.T) {
	assert.Equal(t, []string{"Loudspeaker EQ.IIR_A", "MasterVol"}, Cells(testParameters()))
}

func TestFilterCell(t *testing.T) {
	filtered := FilterCell(testParameters(), "MasterVol")
	require.Len(t, filtered, 1)
	assert.Equal(t, 70, filtered[0].Address)

	assert.Empty(t, FilterCell(testParameters(), "DoesNotExist"))
}

func TestAddressLists(t *testing.T) {
	lists := AddressLists(testParameters())
	require.Len(t, lists, 2)
	assert.Equal(t, []int{100, 101, 102}, lists["Loudspeaker EQ.IIR_A"])
	assert.Equal(t, []int{70}, lists["MasterVol"])
}

func TestAddressRanges(t *testing.T) {
	ranges := AddressRanges(testParameters())
	assert.Equal(t, AddressRange{Min: 100, Max: 102, Count: 3}, ranges["Loudspeaker EQ.IIR_A"])
	assert.Equal(t, AddressRange{Min: 70, Max: 70, Count: 1}, ranges["MasterVol"])
}

func TestAddressRangeString(t *testing.T) {
	assert.Equal(t, "70", AddressRange{Min: 70, Max: 70, Count: 1}.String())
	assert.Equal(t, "[100, 102]", AddressRange{Min: 100, Max: 102, Count: 3}.String())
}

func TestWriteAddressListsTruncatesLongLists(t *testing.T) {
	items := make([]Parameter, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, Parameter{Cell: "Big", Name: "p", Address: 100 + i})
	}

	var buf bytes.Buffer
	WriteAddressLists(&buf, AddressLists(items))

	out := buf.String()
	assert.Contains(t, out, "(+2 more)")
	assert.NotContains(t, out, "111")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testParameters()[:2]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "cell_name,parameter_name,parameter_address", lines[0])
	assert.Equal(t, "MasterVol,target,70", lines[1])
}

func TestWriteAddressRangesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAddressRangesCSV(&buf, AddressRanges(testParameters())))

	out := buf.String()
	assert.Contains(t, out, "cell_name,address_count,min_address,max_address,address_range")
	assert.Contains(t, out, `Loudspeaker EQ.IIR_A,3,100,102,"[100, 102]"`)
}
