package ads1292

import "strings"

// Register is one of the read/write-able register addresses of the ADS1292
// (datasheet table 14).
type Register byte

const (
	// RegID is the ID control register (factory-programmed, read-only).
	RegID Register = 0x00
	// RegConfig1 is configuration register 1.
	RegConfig1 Register = 0x01
	// RegConfig2 is configuration register 2.
	RegConfig2 Register = 0x02
	// RegLoff is the lead-off control register.
	RegLoff Register = 0x03
	// RegCh1Set holds the channel 1 settings.
	RegCh1Set Register = 0x04
	// RegCh2Set holds the channel 2 settings.
	RegCh2Set Register = 0x05
	// RegRLDSense is the right leg drive sense selection.
	RegRLDSense Register = 0x06
	// RegLoffSense is the lead-off sense selection.
	RegLoffSense Register = 0x07
	// RegLoffStat is the lead-off status register.
	RegLoffStat Register = 0x08
	// RegResp1 is respiration control register 1.
	RegResp1 Register = 0x09
	// RegResp2 is respiration control register 2.
	RegResp2 Register = 0x0A
	// RegGPIO is the general-purpose I/O register.
	RegGPIO Register = 0x0B
)

// Addr returns the register address as or'd into RREG/WREG opcodes.
func (r Register) Addr() byte {
	return byte(r)
}

func (r Register) String() string {
	names := [...]string{"ID", "CONFIG1", "CONFIG2", "LOFF", "CH1SET", "CH2SET",
		"RLD_SENS", "LOFF_SENS", "LOFF_STAT", "RESP1", "RESP2", "GPIO"}
	if int(r) < len(names) {
		return names[r]
	}
	return "UNKNOWN"
}

// RegisterByName resolves a datasheet register name (case-insensitive).
func RegisterByName(name string) (Register, bool) {
	for r := RegID; r <= RegGPIO; r++ {
		if strings.EqualFold(name, r.String()) {
			return r, true
		}
	}
	return 0, false
}

// bit-range helpers shared by the register wrappers
func regBit(v byte, bit uint) bool {
	return v&(1<<bit) > 0
}

func regSetBit(v byte, bit uint, on bool) byte {
	if on {
		return v | 1<<bit
	}
	return v &^ (1 << bit)
}

func regField(v byte, shift, width uint) byte {
	return v >> shift & (1<<width - 1)
}

func regSetField(v byte, shift, width uint, field byte) byte {
	mask := byte(1<<width-1) << shift
	return v&^mask | field<<shift&mask
}

// SampleRate is the oversampling rate used by all channels (CONFIG1 bits
// 2:0).
type SampleRate byte

const (
	SPS125            SampleRate = 0b000
	SPS250            SampleRate = 0b001
	SPS500            SampleRate = 0b010
	KSPS1             SampleRate = 0b011
	KSPS2             SampleRate = 0b100
	KSPS4             SampleRate = 0b101
	KSPS8             SampleRate = 0b110
	SampleRateUnknown SampleRate = 0b111
)

func (s SampleRate) String() string {
	switch s {
	case SPS125:
		return "125SPS"
	case SPS250:
		return "250SPS"
	case SPS500:
		return "500SPS"
	case KSPS1:
		return "1kSPS"
	case KSPS2:
		return "2kSPS"
	case KSPS4:
		return "4kSPS"
	case KSPS8:
		return "8kSPS"
	default:
		return "UNKNOWN"
	}
}

func sampleRateFrom(bits byte) SampleRate {
	if bits > byte(KSPS8) {
		return SampleRateUnknown
	}
	return SampleRate(bits)
}

// Config1 configures the conversion mode and channel sample rate.
type Config1 byte

// SingleShot reports whether single-shot conversion mode is selected,
// as opposed to continuous conversion mode.
func (c Config1) SingleShot() bool {
	return regBit(byte(c), 7)
}

func (c Config1) WithSingleShot(on bool) Config1 {
	return Config1(regSetBit(byte(c), 7, on))
}

// Oversampling returns the oversampling rate used by all channels.
func (c Config1) Oversampling() SampleRate {
	return sampleRateFrom(regField(byte(c), 0, 3))
}

func (c Config1) WithOversampling(rate SampleRate) Config1 {
	return Config1(regSetField(byte(c), 0, 3, byte(rate)))
}

// Config2 configures the test signal, clock, reference and lead-off buffer.
type Config2 byte

// PdbLoffComp reports whether the lead-off comparators are powered down.
func (c Config2) PdbLoffComp() bool {
	return regBit(byte(c), 6)
}

func (c Config2) WithPdbLoffComp(on bool) Config2 {
	return Config2(regSetBit(byte(c), 6, on))
}

// PdbRefBuf reports whether the internal reference buffer is powered down
// so that an external reference can be used.
func (c Config2) PdbRefBuf() bool {
	return regBit(byte(c), 5)
}

func (c Config2) WithPdbRefBuf(on bool) Config2 {
	return Config2(regSetBit(byte(c), 5, on))
}

// Vref4V selects the 4.033 V reference over the default 2.42 V reference.
func (c Config2) Vref4V() bool {
	return regBit(byte(c), 4)
}

func (c Config2) WithVref4V(on bool) Config2 {
	return Config2(regSetBit(byte(c), 4, on))
}

// ClkEn reports whether the internal oscillator signal is routed to the CLK
// pin.
func (c Config2) ClkEn() bool {
	return regBit(byte(c), 3)
}

func (c Config2) WithClkEn(on bool) Config2 {
	return Config2(regSetBit(byte(c), 3, on))
}

// IntTest reports whether the internal test signal is turned on.
func (c Config2) IntTest() bool {
	return regBit(byte(c), 1)
}

func (c Config2) WithIntTest(on bool) Config2 {
	return Config2(regSetBit(byte(c), 1, on))
}

// TestFreq selects the test signal frequency.
func (c Config2) TestFreq() bool {
	return regBit(byte(c), 0)
}

func (c Config2) WithTestFreq(on bool) Config2 {
	return Config2(regSetBit(byte(c), 0, on))
}

// LeadOffCurrentMagnitude is the lead-off current magnitude (LOFF bits 3:2).
type LeadOffCurrentMagnitude byte

const (
	Current6nA  LeadOffCurrentMagnitude = 0b00
	Current22nA LeadOffCurrentMagnitude = 0b01
	Current6uA  LeadOffCurrentMagnitude = 0b10
	Current22uA LeadOffCurrentMagnitude = 0b11
	// CurrentUnknown is only produced for out-of-range input; the 2-bit
	// field itself can never hold it.
	CurrentUnknown LeadOffCurrentMagnitude = 0b111
)

func (m LeadOffCurrentMagnitude) String() string {
	switch m {
	case Current6nA:
		return "6nA"
	case Current22nA:
		return "22nA"
	case Current6uA:
		return "6uA"
	case Current22uA:
		return "22uA"
	default:
		return "UNKNOWN"
	}
}

func leadOffCurrentFrom(bits byte) LeadOffCurrentMagnitude {
	if bits > byte(Current22uA) {
		return CurrentUnknown
	}
	return LeadOffCurrentMagnitude(bits)
}

// Loff configures the lead-off detection operation.
type Loff byte

// CompTh returns the lead-off comparator threshold bits.
func (l Loff) CompTh() byte {
	return regField(byte(l), 5, 3)
}

func (l Loff) WithCompTh(th byte) Loff {
	return Loff(regSetField(byte(l), 5, 3, th))
}

// LeadOffCurrent returns the lead-off current magnitude.
func (l Loff) LeadOffCurrent() LeadOffCurrentMagnitude {
	return leadOffCurrentFrom(regField(byte(l), 2, 2))
}

func (l Loff) WithLeadOffCurrent(m LeadOffCurrentMagnitude) Loff {
	return Loff(regSetField(byte(l), 2, 2, byte(m)))
}

// FLeadOff selects ac (true) or dc (false) lead-off detection.
func (l Loff) FLeadOff() bool {
	return regBit(byte(l), 0)
}

func (l Loff) WithFLeadOff(on bool) Loff {
	return Loff(regSetBit(byte(l), 0, on))
}

// LoffSense selects the positive and negative side of each channel for
// lead-off detection.
type LoffSense byte

// Flip2 controls the direction of the current used for lead-off derivation
// on channel 2.
func (l LoffSense) Flip2() bool { return regBit(byte(l), 5) }

func (l LoffSense) WithFlip2(on bool) LoffSense { return LoffSense(regSetBit(byte(l), 5, on)) }

// Flip1 controls the direction of the current used for lead-off derivation
// on channel 1.
func (l LoffSense) Flip1() bool { return regBit(byte(l), 4) }

func (l LoffSense) WithFlip1(on bool) LoffSense { return LoffSense(regSetBit(byte(l), 4, on)) }

// Loff2N selects the negative input of channel 2 for lead-off detection.
func (l LoffSense) Loff2N() bool { return regBit(byte(l), 3) }

func (l LoffSense) WithLoff2N(on bool) LoffSense { return LoffSense(regSetBit(byte(l), 3, on)) }

// Loff2P selects the positive input of channel 2 for lead-off detection.
func (l LoffSense) Loff2P() bool { return regBit(byte(l), 2) }

func (l LoffSense) WithLoff2P(on bool) LoffSense { return LoffSense(regSetBit(byte(l), 2, on)) }

// Loff1N selects the negative input of channel 1 for lead-off detection.
func (l LoffSense) Loff1N() bool { return regBit(byte(l), 1) }

func (l LoffSense) WithLoff1N(on bool) LoffSense { return LoffSense(regSetBit(byte(l), 1, on)) }

// Loff1P selects the positive input of channel 1 for lead-off detection.
func (l LoffSense) Loff1P() bool { return regBit(byte(l), 0) }

func (l LoffSense) WithLoff1P(on bool) LoffSense { return LoffSense(regSetBit(byte(l), 0, on)) }

// GainSetting is the PGA gain of a channel (CHxSET bits 6:4).
type GainSetting byte

const (
	Gain6       GainSetting = 0b000
	Gain1       GainSetting = 0b001
	Gain2       GainSetting = 0b010
	Gain3       GainSetting = 0b011
	Gain4       GainSetting = 0b100
	Gain8       GainSetting = 0b101
	Gain12      GainSetting = 0b110
	GainUnknown GainSetting = 0b111
)

func (g GainSetting) String() string {
	switch g {
	case Gain6:
		return "G6"
	case Gain1:
		return "G1"
	case Gain2:
		return "G2"
	case Gain3:
		return "G3"
	case Gain4:
		return "G4"
	case Gain8:
		return "G8"
	case Gain12:
		return "G12"
	default:
		return "UNKNOWN"
	}
}

func gainFrom(bits byte) GainSetting {
	if bits > byte(Gain12) {
		return GainUnknown
	}
	return GainSetting(bits)
}

// InputSelection is the channel input multiplexer setting (CHxSET bits 3:0).
type InputSelection byte

const (
	// NormalElectrodeInput is the default electrode input.
	NormalElectrodeInput InputSelection = 0b0000
	// InputShorted shorts the input, for offset measurements.
	InputShorted InputSelection = 0b0001
	// RLDMeasure routes the RLD measurement.
	RLDMeasure InputSelection = 0b0010
	// MVDD selects MVDD for supply measurement.
	MVDD InputSelection = 0b0011
	// TemperatureSensor routes the internal temperature sensor.
	TemperatureSensor InputSelection = 0b0100
	// TestSignal routes the internal test signal.
	TestSignal InputSelection = 0b0101
	// RLDDrp connects the positive input to RLDIN.
	RLDDrp InputSelection = 0b0110
	// RLDDrm connects the negative input to RLDIN.
	RLDDrm InputSelection = 0b0111
	// RLDDrpm connects both inputs to RLDIN.
	RLDDrpm InputSelection = 0b1000
	// Channel3 routes IN3P and IN3N to the channel 1 inputs.
	Channel3 InputSelection = 0b1001
	// InputUnknown covers any other bit pattern.
	InputUnknown InputSelection = 0b1111
)

func (i InputSelection) String() string {
	switch i {
	case NormalElectrodeInput:
		return "NORMAL"
	case InputShorted:
		return "SHORTED"
	case RLDMeasure:
		return "RLD_MEASURE"
	case MVDD:
		return "MVDD"
	case TemperatureSensor:
		return "TEMPERATURE"
	case TestSignal:
		return "TEST_SIGNAL"
	case RLDDrp:
		return "RLD_DRP"
	case RLDDrm:
		return "RLD_DRM"
	case RLDDrpm:
		return "RLD_DRPM"
	case Channel3:
		return "CHANNEL3"
	default:
		return "UNKNOWN"
	}
}

func inputFrom(bits byte) InputSelection {
	if bits > byte(Channel3) {
		return InputUnknown
	}
	return InputSelection(bits)
}

// ChannelSettings configures the power mode, PGA gain and multiplexer of one
// channel (CH1SET/CH2SET).
type ChannelSettings byte

// PowerDown reports whether the channel is powered down.
func (c ChannelSettings) PowerDown() bool {
	return regBit(byte(c), 7)
}

func (c ChannelSettings) WithPowerDown(on bool) ChannelSettings {
	return ChannelSettings(regSetBit(byte(c), 7, on))
}

// Gain returns the PGA gain setting of the channel.
func (c ChannelSettings) Gain() GainSetting {
	return gainFrom(regField(byte(c), 4, 3))
}

func (c ChannelSettings) WithGain(g GainSetting) ChannelSettings {
	return ChannelSettings(regSetField(byte(c), 4, 3, byte(g)))
}

// Mux returns the channel input selection.
func (c ChannelSettings) Mux() InputSelection {
	return inputFrom(regField(byte(c), 0, 4))
}

func (c ChannelSettings) WithMux(sel InputSelection) ChannelSettings {
	return ChannelSettings(regSetField(byte(c), 0, 4, byte(sel)))
}

// ChopFrequency is the PGA chop frequency (RLD_SENS bits 7:6).
type ChopFrequency byte

const (
	FmodDiv16 ChopFrequency = 0b00
	FmodDiv2  ChopFrequency = 0b10
	FmodDiv4  ChopFrequency = 0b11
	// ChopUnknown is the reserved 0b01 pattern.
	ChopUnknown ChopFrequency = 0b01
)

func (f ChopFrequency) String() string {
	switch f {
	case FmodDiv16:
		return "FMOD/16"
	case FmodDiv2:
		return "FMOD/2"
	case FmodDiv4:
		return "FMOD/4"
	default:
		return "UNKNOWN"
	}
}

// RLDSense controls the selection of the positive and negative signals from
// each channel for right leg drive derivation.
type RLDSense byte

// Chop returns the PGA chop frequency.
func (r RLDSense) Chop() ChopFrequency {
	return ChopFrequency(regField(byte(r), 6, 2))
}

func (r RLDSense) WithChop(f ChopFrequency) RLDSense {
	return RLDSense(regSetField(byte(r), 6, 2, byte(f)))
}

// PdbRLD enables the RLD buffer power.
func (r RLDSense) PdbRLD() bool { return regBit(byte(r), 5) }

func (r RLDSense) WithPdbRLD(on bool) RLDSense { return RLDSense(regSetBit(byte(r), 5, on)) }

// RLDLoffSense enables the RLD lead-off sense function.
func (r RLDSense) RLDLoffSense() bool { return regBit(byte(r), 4) }

func (r RLDSense) WithRLDLoffSense(on bool) RLDSense { return RLDSense(regSetBit(byte(r), 4, on)) }

// RLD2N selects the negative input of channel 2 for RLD derivation.
func (r RLDSense) RLD2N() bool { return regBit(byte(r), 3) }

func (r RLDSense) WithRLD2N(on bool) RLDSense { return RLDSense(regSetBit(byte(r), 3, on)) }

// RLD2P selects the positive input of channel 2 for RLD derivation.
func (r RLDSense) RLD2P() bool { return regBit(byte(r), 2) }

func (r RLDSense) WithRLD2P(on bool) RLDSense { return RLDSense(regSetBit(byte(r), 2, on)) }

// RLD1N selects the negative input of channel 1 for RLD derivation.
func (r RLDSense) RLD1N() bool { return regBit(byte(r), 1) }

func (r RLDSense) WithRLD1N(on bool) RLDSense { return RLDSense(regSetBit(byte(r), 1, on)) }

// RLD1P selects the positive input of channel 1 for RLD derivation.
func (r RLDSense) RLD1P() bool { return regBit(byte(r), 0) }

func (r RLDSense) WithRLD1P(on bool) RLDSense { return RLDSense(regSetBit(byte(r), 0, on)) }

// RespConfig2 controls the respiration and calibration functionality.
type RespConfig2 byte

// CalibOn enables offset calibration.
func (r RespConfig2) CalibOn() bool {
	return regBit(byte(r), 7)
}

func (r RespConfig2) WithCalibOn(on bool) RespConfig2 {
	return RespConfig2(regSetBit(byte(r), 7, on))
}

// RespFreq64kHz selects the respiration control frequency when RESP_CTRL is
// zero. Must be written with 1 on the ADS1291 and ADS1292.
func (r RespConfig2) RespFreq64kHz() bool {
	return regBit(byte(r), 2)
}

func (r RespConfig2) WithRespFreq64kHz(on bool) RespConfig2 {
	return RespConfig2(regSetBit(byte(r), 2, on))
}

// RLDRefInt selects the RLDREF signal source: external (false) or internal
// (AVDD-AVSS)/2 (true).
func (r RespConfig2) RLDRefInt() bool {
	return regBit(byte(r), 1)
}

func (r RespConfig2) WithRLDRefInt(on bool) RespConfig2 {
	return RespConfig2(regSetBit(byte(r), 1, on))
}
