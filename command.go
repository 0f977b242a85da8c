package ads1292

// Command is one of the fixed one-byte SPI opcodes understood by the
// ADS129xx family (datasheet table 13).
type Command byte

const (
	// Wakeup exits standby mode.
	Wakeup Command = 0x02
	// Standby enters standby mode.
	Standby Command = 0x04
	// Reset resets the device.
	Reset Command = 0x06
	// Start starts or restarts (synchronizes) conversions.
	Start Command = 0x08
	// Stop stops conversions.
	Stop Command = 0x0A
	// ReadContinuous enables read data continuous mode (default at
	// power-up). RREG commands are ignored while this mode is active.
	ReadContinuous Command = 0x10
	// StopContinuous stops read data continuous mode.
	StopContinuous Command = 0x11
	// ReadData reads a single data block by command.
	ReadData Command = 0x12
	// OffsetCal runs channel offset calibration.
	OffsetCal Command = 0x1A
	// ReadReg reads registers starting at an address (or'd with the
	// register address).
	ReadReg Command = 0x20
	// WriteReg writes registers starting at an address (or'd with the
	// register address).
	WriteReg Command = 0x40
)

// Word returns the opcode byte as sent on the wire.
func (c Command) Word() byte {
	return byte(c)
}

// String returns the datasheet mnemonic.
func (c Command) String() string {
	switch c {
	case Wakeup:
		return "WAKEUP"
	case Standby:
		return "STANDBY"
	case Reset:
		return "RESET"
	case Start:
		return "START"
	case Stop:
		return "STOP"
	case ReadContinuous:
		return "RDATAC"
	case StopContinuous:
		return "SDATAC"
	case ReadData:
		return "RDATA"
	case OffsetCal:
		return "OFFSETCAL"
	case ReadReg:
		return "RREG"
	case WriteReg:
		return "WREG"
	default:
		return "UNKNOWN"
	}
}
