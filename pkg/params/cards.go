package params

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Card describes the profile metadata of one supported board.
type Card struct {
	ProfileName    string `yaml:"profileName"`
	ProgramID      string `yaml:"programID"`
	ModelName      string `yaml:"modelName"`
	ModelID        string `yaml:"modelID"`
	DefaultVersion string `yaml:"defaultVersion"`
}

// BuiltinCards returns the card definitions shipped with the tool.
func BuiltinCards() map[string]Card {
	return map[string]Card{
		"beocreate": {
			ProfileName:    "Beocreate Universal",
			ProgramID:      "beocreate-universal",
			ModelName:      "Beocreate 4-Channel Amplifier",
			ModelID:        "beocreate-4ca-mk1",
			DefaultVersion: "11",
		},
		"dacdsp": {
			ProfileName:    "DAC+ DSP Universal",
			ProgramID:      "dacdsp-universal",
			ModelName:      "DAC+ DSP",
			ModelID:        "hifiberry-dacdsp",
			DefaultVersion: "15",
		},
		"dspaddon": {
			ProfileName:    "DSP add-on",
			ProgramID:      "dsp-addon",
			ModelName:      "DSP add-on",
			ModelID:        "dsp-addon",
			DefaultVersion: "14",
		},
	}
}

// LoadCards reads additional card definitions from a YAML file. The keys
// of the top-level mapping are the card names.
func LoadCards(path string) (map[string]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "Could not open file %s.", path)
	}

	cards := make(map[string]Card)
	err = yaml.Unmarshal(data, &cards)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to parse %s.", path)
	}

	return cards, nil
}
