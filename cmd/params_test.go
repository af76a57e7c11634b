package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleParams = `Cell Name         = MasterVol
Parameter Name    = HWGainADAU145XAlg5target
Parameter Address = 70


Cell Name         = L-R Balance.Balance
Parameter Name    = DCInpAlg145X11value
Parameter Address = 42
`

func TestParamsTableExport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.params")
	output := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(input, []byte(sampleParams), 0o644))

	rootCmd.SetArgs([]string{"params", "table", input, "--quiet", "--output", output})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cell_name,parameter_name,parameter_address")
	assert.Contains(t, string(data), "MasterVol,HWGainADAU145XAlg5target,70")
}

func TestParamsUnknownCell(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.params")
	require.NoError(t, os.WriteFile(input, []byte(sampleParams), 0o644))

	rootCmd.SetArgs([]string{"params", "table", input, "--quiet", "--cell", "Nope"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")
}

func TestParamsMetadataOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.params")
	output := filepath.Join(dir, "metadata.xml")
	require.NoError(t, os.WriteFile(input, []byte(sampleParams), 0o644))

	rootCmd.SetArgs([]string{"params", "metadata", input, "--card", "beocreate", "--output", output})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<metadata type="profileName">Beocreate Universal</metadata>`)
	assert.Contains(t, string(data), `<metadata type="volumeControlRegister" storable="yes">70</metadata>`)
}

func TestParamsMetadataUnknownCard(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.params")
	require.NoError(t, os.WriteFile(input, []byte(sampleParams), 0o644))

	rootCmd.SetArgs([]string{"params", "metadata", input, "--card", "unknown"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beocreate, dacdsp, dspaddon")
}
