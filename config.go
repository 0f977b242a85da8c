package ads1292

import (
	"context"
	"fmt"
	"strings"
)

// Config maps friendly acquisition settings to register writes. It is
// yaml-taggable so CLI tools can load it from a file:
//
//	sample_rate: 500
//	channel1:
//	  gain: 6
//	  mux: normal
//	channel2:
//	  gain: 6
//	  mux: temperature
type Config struct {
	// SampleRate in samples per second: 125, 250, 500, 1000, 2000, 4000 or
	// 8000. Zero leaves the register untouched.
	SampleRate int  `yaml:"sample_rate"`
	SingleShot bool `yaml:"single_shot"`

	Channel1 *ChannelConfig `yaml:"channel1"`
	Channel2 *ChannelConfig `yaml:"channel2"`
}

// ChannelConfig holds per-channel settings.
type ChannelConfig struct {
	PowerDown bool `yaml:"power_down"`
	// Gain: 1, 2, 3, 4, 6, 8 or 12.
	Gain int `yaml:"gain"`
	// Mux is the input selection name: normal, shorted, rld_measure, mvdd,
	// temperature, test_signal, rld_drp, rld_drm, rld_drpm or channel3.
	Mux string `yaml:"mux"`
}

var sampleRates = map[int]SampleRate{
	125:  SPS125,
	250:  SPS250,
	500:  SPS500,
	1000: KSPS1,
	2000: KSPS2,
	4000: KSPS4,
	8000: KSPS8,
}

var gains = map[int]GainSetting{
	1:  Gain1,
	2:  Gain2,
	3:  Gain3,
	4:  Gain4,
	6:  Gain6,
	8:  Gain8,
	12: Gain12,
}

var muxNames = map[string]InputSelection{
	"normal":      NormalElectrodeInput,
	"shorted":     InputShorted,
	"rld_measure": RLDMeasure,
	"mvdd":        MVDD,
	"temperature": TemperatureSensor,
	"test_signal": TestSignal,
	"rld_drp":     RLDDrp,
	"rld_drm":     RLDDrm,
	"rld_drpm":    RLDDrpm,
	"channel3":    Channel3,
}

// Apply writes the configured settings to the device, reading each affected
// register first so unrelated bits are preserved.
func (c Config) Apply(ctx context.Context, dev *ADS1292) error {
	if c.SampleRate != 0 || c.SingleShot {
		conf1, err := dev.Config1(ctx)
		if err != nil {
			return fmt.Errorf("could not read CONFIG1: %w", err)
		}
		if c.SampleRate != 0 {
			rate, ok := sampleRates[c.SampleRate]
			if !ok {
				return fmt.Errorf("unsupported sample rate: %d", c.SampleRate)
			}
			conf1 = conf1.WithOversampling(rate)
		}
		conf1 = conf1.WithSingleShot(c.SingleShot)
		if err := dev.SetConfig1(ctx, conf1); err != nil {
			return fmt.Errorf("could not write CONFIG1: %w", err)
		}
	}
	if c.Channel1 != nil {
		settings, err := c.Channel1.settings()
		if err != nil {
			return fmt.Errorf("channel1: %w", err)
		}
		if err := dev.SetChannel1Settings(ctx, settings); err != nil {
			return fmt.Errorf("could not write CH1SET: %w", err)
		}
	}
	if c.Channel2 != nil {
		settings, err := c.Channel2.settings()
		if err != nil {
			return fmt.Errorf("channel2: %w", err)
		}
		if err := dev.SetChannel2Settings(ctx, settings); err != nil {
			return fmt.Errorf("could not write CH2SET: %w", err)
		}
	}
	return nil
}

func (c ChannelConfig) settings() (ChannelSettings, error) {
	var settings ChannelSettings
	gain, ok := gains[c.Gain]
	if !ok {
		return settings, fmt.Errorf("unsupported gain: %d", c.Gain)
	}
	mux, ok := muxNames[strings.ToLower(c.Mux)]
	if !ok {
		return settings, fmt.Errorf("unknown input selection: %q", c.Mux)
	}
	return settings.WithPowerDown(c.PowerDown).WithGain(gain).WithMux(mux), nil
}
