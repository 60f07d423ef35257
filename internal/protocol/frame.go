// Package protocol implements the ELK-BLEDOM 9-byte command encoding.
package protocol

import (
	"errors"
	"fmt"
)

// Every command sent to the controller is exactly 9 bytes, framed by a fixed
// start and end marker. A frame that breaks this shape is silently dropped by
// the hardware, so constructors here validate all fields before any I/O.
const (
	FrameLen        = 9
	FrameStart byte = 0x7E
	FrameEnd   byte = 0xEF
)

// Opcodes (frame byte 2).
const (
	OpBrightness  byte = 0x01
	OpEffectSpeed byte = 0x02
	OpEffect      byte = 0x03
	OpPower       byte = 0x04
	OpColor       byte = 0x05
	OpSchedule    byte = 0x82
	OpTime        byte = 0x83
)

// Schedule sub-flags (frame byte 6).
const (
	SubScheduleOn  byte = 0x00
	SubScheduleOff byte = 0x01
)

// scheduleEnableBit is OR-ed into the days byte when a schedule is active.
// The controller does not use a separate flag position.
const scheduleEnableBit byte = 0x80

// ErrOutOfRange indicates a command field outside its documented range.
var ErrOutOfRange = errors.New("protocol: value out of range")

// Frame is a single encoded command.
type Frame [FrameLen]byte

// Bytes returns the frame as a byte slice for transmission.
func (f Frame) Bytes() []byte {
	return f[:]
}

// WellFormed reports whether the frame carries the fixed start and end markers.
func (f Frame) WellFormed() bool {
	return f[0] == FrameStart && f[FrameLen-1] == FrameEnd
}

func build(opcode, b3, b4, b5, b6, b7 byte) Frame {
	return Frame{FrameStart, 0x00, opcode, b3, b4, b5, b6, b7, FrameEnd}
}

// Power encodes a power on/off command.
func Power(on bool) Frame {
	if on {
		return build(OpPower, 0xF0, 0x00, 0x01, 0xFF, 0x00)
	}
	return build(OpPower, 0x00, 0x00, 0x00, 0xFF, 0x00)
}

// Brightness encodes a brightness command. Level is a percentage, 0-100.
func Brightness(level uint8) (Frame, error) {
	if level > 100 {
		return Frame{}, fmt.Errorf("%w: brightness %d (0-100)", ErrOutOfRange, level)
	}
	return build(OpBrightness, level, 0x00, 0x00, 0x00, 0x00), nil
}

// EffectSpeed encodes an effect speed command. Speed is a percentage, 0-100.
func EffectSpeed(speed uint8) (Frame, error) {
	if speed > 100 {
		return Frame{}, fmt.Errorf("%w: effect speed %d (0-100)", ErrOutOfRange, speed)
	}
	return build(OpEffectSpeed, speed, 0x00, 0x00, 0x00, 0x00), nil
}

// Effect encodes a built-in effect selection. Codes are not range-checked;
// the controller ignores codes it does not recognize.
func Effect(code uint8) Frame {
	return build(OpEffect, code, 0x03, 0x00, 0x00, 0x00)
}

// Color encodes a static RGB color. All byte values are accepted.
func Color(r, g, b uint8) Frame {
	return build(OpColor, 0x03, r, g, b, 0x00)
}

// CustomTime encodes a clock-set command. Weekday is ISO: 1=Monday, 7=Sunday.
func CustomTime(hour, minute, second, weekday uint8) (Frame, error) {
	if hour > 23 {
		return Frame{}, fmt.Errorf("%w: hour %d (0-23)", ErrOutOfRange, hour)
	}
	if minute > 59 {
		return Frame{}, fmt.Errorf("%w: minute %d (0-59)", ErrOutOfRange, minute)
	}
	if second > 59 {
		return Frame{}, fmt.Errorf("%w: second %d (0-59)", ErrOutOfRange, second)
	}
	if weekday < 1 || weekday > 7 {
		return Frame{}, fmt.Errorf("%w: weekday %d (1-7, 1=Monday)", ErrOutOfRange, weekday)
	}
	return build(OpTime, hour, minute, second, weekday, 0x00), nil
}

// ScheduleOn encodes a scheduled power-on at hour:minute on the given days.
func ScheduleOn(days uint8, hour, minute uint8, enabled bool) (Frame, error) {
	return schedule(SubScheduleOn, days, hour, minute, enabled)
}

// ScheduleOff encodes a scheduled power-off at hour:minute on the given days.
func ScheduleOff(days uint8, hour, minute uint8, enabled bool) (Frame, error) {
	return schedule(SubScheduleOff, days, hour, minute, enabled)
}

func schedule(sub byte, days, hour, minute uint8, enabled bool) (Frame, error) {
	if days > 0x7F {
		return Frame{}, fmt.Errorf("%w: days bitmask %#02x (max 0x7F)", ErrOutOfRange, days)
	}
	if hour > 23 {
		return Frame{}, fmt.Errorf("%w: hour %d (0-23)", ErrOutOfRange, hour)
	}
	if minute > 59 {
		return Frame{}, fmt.Errorf("%w: minute %d (0-59)", ErrOutOfRange, minute)
	}
	if enabled {
		days |= scheduleEnableBit
	}
	return build(OpSchedule, hour, minute, 0x00, sub, days), nil
}

// Generic encodes an arbitrary opcode with raw arguments. No field validation
// is applied beyond the frame shape itself.
func Generic(opcode, sub, arg1, arg2, arg3 uint8) Frame {
	return build(opcode, sub, arg1, arg2, arg3, 0x00)
}
