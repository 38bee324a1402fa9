//go:build tinygo

package main

import (
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/harveysanders/analogico/frame"
	"github.com/harveysanders/analogico/lights"
	"github.com/harveysanders/analogico/mode"
	"github.com/harveysanders/analogico/stick"
)

// pwm is the subset of a machine PWM slice used by the lights.
type pwm interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// adcSampler reads the two stick axes.
type adcSampler struct {
	x, y machine.ADC
}

func configureSampler() *adcSampler {
	machine.InitADC()
	s := &adcSampler{
		x: machine.ADC{Pin: stickXPin},
		y: machine.ADC{Pin: stickYPin},
	}
	s.x.Configure(machine.ADCConfig{})
	s.y.Configure(machine.ADCConfig{})
	return s
}

func (s *adcSampler) Sample() stick.Sample {
	return stick.Sample{
		X: s.x.Get() >> adcShift,
		Y: s.y.Get() >> adcShift,
	}
}

// pwmLights drives the red and blue LEDs from one PWM slice.
type pwmLights struct {
	pwm      pwm
	channels [2]uint8
	top      uint32
}

func configureLights(p pwm) (*pwmLights, error) {
	err := p.Configure(machine.PWMConfig{
		Period: uint64(time.Second) / pwmFrequency,
	})
	if err != nil {
		return nil, errors.New("configure PWM: " + err.Error())
	}
	red, err := p.Channel(redLEDPin)
	if err != nil {
		return nil, errors.New("PWM channel for red LED: " + err.Error())
	}
	blue, err := p.Channel(blueLEDPin)
	if err != nil {
		return nil, errors.New("PWM channel for blue LED: " + err.Error())
	}
	l := &pwmLights{pwm: p, top: p.Top()}
	l.channels[lights.Red] = red
	l.channels[lights.Blue] = blue
	return l, nil
}

// SetLevel scales the 8-bit level to the slice's counter top.
func (l *pwmLights) SetLevel(ch lights.Channel, level uint8) {
	l.pwm.Set(l.channels[ch], uint32(level)*l.top/255)
}

// statusLight is a plain GPIO output.
type statusLight struct {
	pin machine.Pin
}

func configureStatusLight() statusLight {
	greenLEDPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	greenLEDPin.Low()
	return statusLight{pin: greenLEDPin}
}

func (s statusLight) Set(on bool) {
	s.pin.Set(on)
}

// configureButtons arms falling-edge interrupts on both buttons. The handler
// only timestamps the edge and posts it; debouncing happens in the loop.
func configureButtons(mailbox *mode.Mailbox, boot time.Time) error {
	buttons := []struct {
		pin    machine.Pin
		source mode.Source
	}{
		{primaryButtonPin, mode.Primary},
		{secondaryButtonPin, mode.Secondary},
	}
	for _, b := range buttons {
		b.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		source := b.source
		err := b.pin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
			mailbox.Post(mode.Event{
				Source: source,
				At:     uint32(time.Since(boot) / time.Microsecond),
			})
		})
		if err != nil {
			return errors.New("button interrupt on " + source.String() + ": " + err.Error())
		}
	}
	return nil
}

// panel sends frames to an SSD1306 over I2C.
type panel struct {
	dev *ssd1306.Device
}

// configurePanel sets up the I2C bus and looks for the display on the common
// SSD1306 addresses. If none answers, an error is returned.
func configurePanel(bus *machine.I2C) (*panel, error) {
	err := bus.Configure(machine.I2CConfig{
		Frequency: i2cFrequency,
		SDA:       displaySDAPin,
		SCL:       displaySCLPin,
	})
	if err != nil {
		return nil, errors.New("configure I2C: " + err.Error())
	}

	for _, addr := range panelAddrs {
		println("checking I2C address...", addr)
		// Display off command; only a present panel acknowledges it.
		if bus.Tx(addr, []byte{0x00, ssd1306.DISPLAYOFF}, nil) != nil {
			continue
		}
		dev := ssd1306.NewI2C(bus)
		dev.Configure(ssd1306.Config{
			Address: addr,
			Width:   panelWidth,
			Height:  panelHeight,
		})
		dev.ClearDisplay()
		return &panel{dev: dev}, nil
	}
	return nil, errors.New("SSD1306 not found on addresses: 0x3c, 0x3d")
}

func (p *panel) Send(f *frame.Frame) error {
	if err := p.dev.DrawBitmap(0, 0, f.Image()); err != nil {
		return err
	}
	return p.dev.Display()
}
