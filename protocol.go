package ads1292

import "context"

// SendCommand writes a single opcode to the device. Returns ErrStreaming
// while a data stream is open.
func (a *ADS1292) SendCommand(ctx context.Context, cmd Command) error {
	if a.streaming {
		return ErrStreaming
	}
	return a.sendCommand(ctx, cmd)
}

func (a *ADS1292) sendCommand(ctx context.Context, cmd Command) error {
	return a.spi.Write(ctx, []byte{cmd.Word()})
}

// ReadRegister reads a single register. The device clocks the value out as
// the third byte of the RREG frame.
func (a *ADS1292) ReadRegister(ctx context.Context, reg Register) (byte, error) {
	if a.streaming {
		return 0, ErrStreaming
	}
	return a.readRegister(ctx, reg)
}

func (a *ADS1292) readRegister(ctx context.Context, reg Register) (byte, error) {
	// register count is encoded as n-1; n = 1 here
	buf := []byte{ReadReg.Word() | reg.Addr(), 0x00, 0x00, 0x00}
	if err := a.spi.Transfer(ctx, buf); err != nil {
		return 0, err
	}
	return buf[2], nil
}

// WriteRegister writes a single register.
func (a *ADS1292) WriteRegister(ctx context.Context, reg Register, value byte) error {
	if a.streaming {
		return ErrStreaming
	}
	// register count is encoded as n-1; n = 1 here
	return a.spi.Write(ctx, []byte{WriteReg.Word() | reg.Addr(), 0x00, value})
}

// Typed accessor pairs for the configuration registers. Each reads or
// writes one register through its bit-field wrapper.

func (a *ADS1292) Config1(ctx context.Context) (Config1, error) {
	v, err := a.ReadRegister(ctx, RegConfig1)
	return Config1(v), err
}

func (a *ADS1292) SetConfig1(ctx context.Context, v Config1) error {
	return a.WriteRegister(ctx, RegConfig1, byte(v))
}

func (a *ADS1292) Config2(ctx context.Context) (Config2, error) {
	v, err := a.ReadRegister(ctx, RegConfig2)
	return Config2(v), err
}

func (a *ADS1292) SetConfig2(ctx context.Context, v Config2) error {
	return a.WriteRegister(ctx, RegConfig2, byte(v))
}

func (a *ADS1292) Loff(ctx context.Context) (Loff, error) {
	v, err := a.ReadRegister(ctx, RegLoff)
	return Loff(v), err
}

func (a *ADS1292) SetLoff(ctx context.Context, v Loff) error {
	return a.WriteRegister(ctx, RegLoff, byte(v))
}

func (a *ADS1292) LoffSense(ctx context.Context) (LoffSense, error) {
	v, err := a.ReadRegister(ctx, RegLoffSense)
	return LoffSense(v), err
}

func (a *ADS1292) SetLoffSense(ctx context.Context, v LoffSense) error {
	return a.WriteRegister(ctx, RegLoffSense, byte(v))
}

func (a *ADS1292) Channel1Settings(ctx context.Context) (ChannelSettings, error) {
	v, err := a.ReadRegister(ctx, RegCh1Set)
	return ChannelSettings(v), err
}

func (a *ADS1292) SetChannel1Settings(ctx context.Context, v ChannelSettings) error {
	return a.WriteRegister(ctx, RegCh1Set, byte(v))
}

func (a *ADS1292) Channel2Settings(ctx context.Context) (ChannelSettings, error) {
	v, err := a.ReadRegister(ctx, RegCh2Set)
	return ChannelSettings(v), err
}

func (a *ADS1292) SetChannel2Settings(ctx context.Context, v ChannelSettings) error {
	return a.WriteRegister(ctx, RegCh2Set, byte(v))
}

func (a *ADS1292) RLDSense(ctx context.Context) (RLDSense, error) {
	v, err := a.ReadRegister(ctx, RegRLDSense)
	return RLDSense(v), err
}

func (a *ADS1292) SetRLDSense(ctx context.Context, v RLDSense) error {
	return a.WriteRegister(ctx, RegRLDSense, byte(v))
}

func (a *ADS1292) RespConfig2(ctx context.Context) (RespConfig2, error) {
	v, err := a.ReadRegister(ctx, RegResp2)
	return RespConfig2(v), err
}

func (a *ADS1292) SetRespConfig2(ctx context.Context, v RespConfig2) error {
	return a.WriteRegister(ctx, RegResp2, byte(v))
}
