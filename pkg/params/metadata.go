package params

import (
	"fmt"
	"strings"
)

type mappingKind int

const (
	// register resolved through an exact cell/parameter match
	mapDirect mappingKind = iota
	// register rendered as "start/count" from the cell's address range
	mapFilterBank
	// register that has to be mapped manually, emitted as a comment
	mapSearch
	// register that is known but not resolved yet, emitted as UNKNOWN
	mapPlaceholder
)

type registerMapping struct {
	Type    string
	Kind    mappingKind
	Cell    string
	Param   string
	Comment string
}

// registerMappings connects the profile metadata registers with the
// cells and parameters found in the .params export. The order matters,
// it defines the order of the generated fragment.
var registerMappings = []registerMapping{
	{Type: "balanceRegister", Kind: mapDirect, Cell: "L-R Balance.Balance", Param: "DCInpAlg145X11value", Comment: "L-R Balance control"},
	{Type: "muteInvertRegister", Kind: mapDirect, Cell: "Soft Mute", Param: "ExternalGainAlgSlew145X1slew_mode", Comment: "Soft mute invert control"},
	{Type: "volumeControlRegister", Kind: mapDirect, Cell: "MasterVol", Param: "HWGainADAU145XAlg5target", Comment: "Master volume control"},
	{Type: "volumeLimitPiRegister", Kind: mapDirect, Cell: "VolumeLimitPi", Param: "HWGainADAU145XAlg6target", Comment: "Volume limit for Pi input"},
	{Type: "volumeLimitSPDIFRegister", Kind: mapDirect, Cell: "VolumeLimitSPDIF", Param: "HWGainADAU145XAlg7target", Comment: "Volume limit for SPDIF input"},
	{Type: "readSPDIFOnRegister", Kind: mapDirect, Cell: "Input Detection.SPDIF on read", Param: "ReadBackAlgNewSigma3001Value", Comment: "Read SPDIF on status"},
	{Type: "channelSelectARegister", Kind: mapDirect, Cell: "Channel Select.Ch_A", Param: "monomuxSigma300ns4index", Comment: "Channel A selection"},
	{Type: "channelSelectBRegister", Kind: mapDirect, Cell: "Channel Select.Ch_B", Param: "monomuxSigma300ns3index", Comment: "Channel B selection"},
	{Type: "channelSelectCRegister", Kind: mapDirect, Cell: "Channel Select.Ch_C", Param: "monomuxSigma300ns2index", Comment: "Channel C selection"},
	{Type: "channelSelectDRegister", Kind: mapDirect, Cell: "Channel Select.Ch_D", Param: "monomuxSigma300ns1index", Comment: "Channel D selection"},
	{Type: "invertARegister", Kind: mapDirect, Cell: "Loudspeaker EQ.Invert_A", Param: "EQS300Invert4invert", Comment: "Invert channel A"},
	{Type: "invertBRegister", Kind: mapDirect, Cell: "Loudspeaker EQ.Invert_B", Param: "EQS300Invert3invert", Comment: "Invert channel B"},
	{Type: "invertCRegister", Kind: mapDirect, Cell: "Loudspeaker EQ.Invert_C", Param: "EQS300Invert2invert", Comment: "Invert channel C"},
	{Type: "invertDRegister", Kind: mapDirect, Cell: "Loudspeaker EQ.Invert_D", Param: "EQS300Invert1invert", Comment: "Invert channel D"},
	{Type: "delayARegister", Kind: mapDirect, Cell: "Delay_A", Param: "DelaySigma300Alg1delay", Comment: "Delay for channel A"},
	{Type: "delayBRegister", Kind: mapDirect, Cell: "Delay_B", Param: "DelaySigma300Alg4delay", Comment: "Delay for channel B"},
	{Type: "delayCRegister", Kind: mapDirect, Cell: "Delay_C", Param: "DelaySigma300Alg3delay", Comment: "Delay for channel C"},
	{Type: "delayDRegister", Kind: mapDirect, Cell: "Delay_D", Param: "DelaySigma300Alg2delay", Comment: "Delay for channel D"},
	{Type: "readIsDaisyChainSlaveRegister", Kind: mapSearch, Comment: "Read daisy chain slave status - need to find in .params"},
	{Type: "sensitivitySPDIFRegister", Kind: mapSearch, Comment: "SPDIF sensitivity - need to find in .params"},
	{Type: "enableSPDIFRegister", Kind: mapSearch, Comment: "Enable SPDIF - need to find in .params"},
	{Type: "tuningForkPitchRegister", Kind: mapSearch, Comment: "Tuning fork pitch - need to find in .params"},
	{Type: "tuningForkOnRegister", Kind: mapSearch, Comment: "Tuning fork on - need to find in .params"},
	{Type: "IIR_A", Kind: mapFilterBank, Cell: "Loudspeaker EQ.IIR_A", Comment: "IIR filter bank for channel A"},
	{Type: "IIR_B", Kind: mapFilterBank, Cell: "Loudspeaker EQ.IIR_B", Comment: "IIR filter bank for channel B"},
	{Type: "IIR_C", Kind: mapFilterBank, Cell: "Loudspeaker EQ.IIR_C", Comment: "IIR filter bank for channel C"},
	{Type: "IIR_D", Kind: mapFilterBank, Cell: "Loudspeaker EQ.IIR_D", Comment: "IIR filter bank for channel D"},
	{Type: "toneControlLeftRegisters", Kind: mapFilterBank, Cell: "Tone Controls.ToneControl_L", Comment: "Tone control filter bank for left channel"},
	{Type: "toneControlRightRegisters", Kind: mapFilterBank, Cell: "Tone Controls.ToneControl_R", Comment: "Tone control filter bank for right channel"},
	{Type: "customFilterRegisterBankLeft", Kind: mapFilterBank, Cell: "Room Compensation.IIR_L", Comment: "Custom filter bank for left channel (room compensation)"},
	{Type: "customFilterRegisterBankRight", Kind: mapFilterBank, Cell: "Room Compensation.IIR_R", Comment: "Custom filter bank for right channel (room compensation)"},
	{Type: "levelsARegister", Kind: mapPlaceholder, Comment: "Level control for channel A - need to identify specific parameter"},
	{Type: "levelsBRegister", Kind: mapPlaceholder, Comment: "Level control for channel B - need to identify specific parameter"},
	{Type: "levelsCRegister", Kind: mapPlaceholder, Comment: "Level control for channel C - need to identify specific parameter"},
	{Type: "levelsDRegister", Kind: mapPlaceholder, Comment: "Level control for channel D - need to identify specific parameter"},
}

// staticRegisters live outside the DSP program and keep fixed addresses.
var staticRegisters = []struct {
	Type  string
	Value string
}{
	{"canBecomeDaisyChainSlaveRegister", "4833"},
	{"muteRegister", "4834"},
	{"enableSPDIFTransmitterRegister", "4835"},
	{"disableSPDIFTransmitterAtMuteRegister", "4836"},
}

var storableRegisters = map[string]bool{
	"volumeControlRegister":    true,
	"volumeLimitPiRegister":    true,
	"volumeLimitSPDIFRegister": true,
	"balanceRegister":          true,
	"muteInvertRegister":       true,
	"enableSPDIFRegister":      true,
}

func attrsFor(regType string) string {
	switch {
	case strings.HasPrefix(regType, "channelSelect"):
		return `channels="left,right,mono,side" multiplier="1" storable="yes"`
	case strings.HasPrefix(regType, "delay"):
		return `maxDelay="2000" storable="yes"`
	}

	if storableRegisters[regType] ||
		strings.HasPrefix(regType, "invert") ||
		strings.HasPrefix(regType, "levels") ||
		strings.HasPrefix(regType, "IIR_") ||
		strings.Contains(regType, "Filter") ||
		strings.Contains(regType, "toneControl") {
		return `storable="yes"`
	}

	return ""
}

const indent = "                "

// Metadata renders the <metadata> fragment for the profile XML. The card
// supplies the profile/model names; version overrides the card's default
// profile version. A zero-value card produces NAME placeholders that
// have to be replaced manually.
func Metadata(items []Parameter, card Card, version string) string {
	lookup := make(map[[2]string]int, len(items))
	for _, item := range items {
		lookup[[2]string{item.Cell, item.Name}] = item.Address
	}
	ranges := AddressRanges(items)

	profileName := card.ProfileName
	programID := card.ProgramID
	modelName := card.ModelName
	modelID := card.ModelID
	profileVersion := card.DefaultVersion
	if profileName == "" {
		profileName = "NAME"
		programID = "NAME"
		modelName = "NAME"
		modelID = "NAME"
		profileVersion = "0"
	}
	if version != "" {
		profileVersion = version
	}

	lines := []string{
		indent + `<metadata type="sampleRate">48000</metadata>`,
		indent + fmt.Sprintf(`<metadata type="profileName">%s</metadata>`, profileName),
		indent + fmt.Sprintf(`<metadata type="profileVersion">%s</metadata>`, profileVersion),
		indent + fmt.Sprintf(`<metadata type="programID">%s</metadata>`, programID),
		indent + fmt.Sprintf(`<metadata type="modelName" modelID="%s">%s</metadata>`, modelID, modelName),
		indent + `<metadata type="checksum">CHECKSUM</metadata>`,
		indent + `<metadata type="spdifTXUserDataSource" storable="yes">63135</metadata>`,
		indent + `<metadata type="spdifTXUserDataL0" storable="yes">63135</metadata>`,
		indent + `<metadata type="spdifTXUserDataL1" storable="yes">63168</metadata>`,
		indent + `<metadata type="spdifTXUserDataL2" storable="yes">63169</metadata>`,
		indent + `<metadata type="spdifTXUserDataL3" storable="yes">63170</metadata>`,
		indent + `<metadata type="spdifTXUserDataL4" storable="yes">63171</metadata>`,
		indent + `<metadata type="spdifTXUserDataL5" storable="yes">63172</metadata>`,
		indent + `<metadata type="spdifTXUserDataR0" storable="yes">63173</metadata>`,
		indent + `<metadata type="spdifTXUserDataR1" storable="yes">63185</metadata>`,
		indent + `<!-- DSP parameters from .params file -->`,
	}

	for _, reg := range staticRegisters {
		lines = append(lines, indent+fmt.Sprintf(`<metadata type="%s">%s</metadata>`, reg.Type, reg.Value))
	}

	for _, mapping := range registerMappings {
		value := ""
		switch mapping.Kind {
		case mapDirect:
			addr, ok := lookup[[2]string{mapping.Cell, mapping.Param}]
			if ok {
				value = fmt.Sprintf("%d", addr)
			}
		case mapFilterBank:
			r, ok := ranges[mapping.Cell]
			if ok {
				value = fmt.Sprintf("%d/%d", r.Min, r.Count)
			}
		case mapPlaceholder:
			value = "UNKNOWN"
		}

		if value == "" {
			lines = append(lines, indent+fmt.Sprintf(`<!-- %s: %s - NOT MAPPED -->`, mapping.Type, mapping.Comment))
			continue
		}

		attrs := attrsFor(mapping.Type)
		if attrs != "" {
			lines = append(lines, indent+fmt.Sprintf(`<metadata type="%s" %s>%s</metadata>`, mapping.Type, attrs, value))
		} else {
			lines = append(lines, indent+fmt.Sprintf(`<metadata type="%s">%s</metadata>`, mapping.Type, value))
		}
	}

	return strings.Join(lines, "\n")
}
