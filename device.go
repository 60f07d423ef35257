package bledom

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledkit/bledom/internal/ble"
	"github.com/ledkit/bledom/internal/protocol"
)

// deviceNameSubstring identifies the controller family in advertised names.
const deviceNameSubstring = "ELK-BLEDOM"

// defaultSettleDelay is the pause after every write. The controller's command
// buffer loses back-to-back writes, so this is a correctness floor, not a
// performance knob.
const defaultSettleDelay = 100 * time.Millisecond

// Device is an acquired ELK-BLEDOM controller, bound to its write
// characteristic and ready to accept commands.
//
// A Device is not safe for concurrent use; see the package documentation.
type Device struct {
	peripheral ble.Peripheral
	char       ble.Characteristic
	settle     time.Duration
	name       string
}

// Acquire discovers, connects, and resolves the first ELK-BLEDOM controller
// in range, returning a ready Device.
//
// Discovery polls the scan results up to WithScanRetries times at
// WithScanInterval spacing; connection is attempted up to WithConnectRetries
// times at WithConnectInterval spacing. Service discovery runs once: a failure
// there is not transient, so it is never retried.
//
// The context bounds the waits between attempts and the scan itself.
func Acquire(ctx context.Context, opts ...Option) (*Device, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	adapters, err := cfg.transport.Adapters()
	if err != nil {
		return nil, fmt.Errorf("adapter enumeration: %w", err)
	}
	if len(adapters) == 0 {
		return nil, ErrNoAdaptersFound
	}
	adapter := adapters[0]

	peripheral, err := locate(ctx, adapter, cfg)
	if err != nil {
		return nil, err
	}

	if err := connect(ctx, peripheral, cfg); err != nil {
		return nil, err
	}

	char, err := resolve(ctx, peripheral)
	if err != nil {
		return nil, err
	}

	name := ""
	if props, perr := peripheral.Properties(); perr == nil {
		name = props.LocalName
	}

	return &Device{
		peripheral: peripheral,
		char:       char,
		settle:     cfg.settleDelay,
		name:       name,
	}, nil
}

func (c *config) validate() error {
	if c.scanRetries < 1 {
		return fmt.Errorf("%w: scan retries %d (minimum 1)", ErrInvalidParameter, c.scanRetries)
	}
	if c.connectRetries < 1 {
		return fmt.Errorf("%w: connect retries %d (minimum 1)", ErrInvalidParameter, c.connectRetries)
	}
	if c.scanInterval < 0 || c.connectInterval < 0 || c.settleDelay < 0 {
		return fmt.Errorf("%w: negative interval", ErrInvalidParameter)
	}
	return nil
}

// locate runs the bounded scan loop until a matching peripheral appears.
// The scan is stopped best-effort on every exit path.
func locate(ctx context.Context, adapter ble.Adapter, cfg *config) (ble.Peripheral, error) {
	if err := adapter.StartScan(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}

	for attempt := 1; attempt <= cfg.scanRetries; attempt++ {
		peripheral, err := findLight(adapter)
		if err == nil {
			_ = adapter.StopScan()
			return peripheral, nil
		}
		if !errors.Is(err, ErrDeviceNotFound) {
			// Anything other than "not seen yet" is not worth retrying.
			_ = adapter.StopScan()
			return nil, err
		}

		if attempt < cfg.scanRetries {
			if err := sleepCtx(ctx, cfg.scanInterval); err != nil {
				_ = adapter.StopScan()
				return nil, err
			}
		}
	}

	_ = adapter.StopScan()
	return nil, ErrDeviceNotFound
}

// findLight enumerates currently-visible peripherals and returns the first
// whose advertised name matches the controller family.
func findLight(adapter ble.Adapter) (ble.Peripheral, error) {
	peripherals, err := adapter.Peripherals()
	if err != nil {
		return nil, fmt.Errorf("peripheral enumeration: %w", err)
	}

	for _, p := range peripherals {
		props, err := p.Properties()
		if err != nil {
			return nil, fmt.Errorf("peripheral properties: %w", err)
		}
		if strings.Contains(props.LocalName, deviceNameSubstring) {
			return p, nil
		}
	}
	return nil, ErrDeviceNotFound
}

// connect runs the bounded connection loop against a located peripheral.
func connect(ctx context.Context, peripheral ble.Peripheral, cfg *config) error {
	var lastErr error
	for attempt := 1; attempt <= cfg.connectRetries; attempt++ {
		lastErr = peripheral.Connect(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt < cfg.connectRetries {
			if err := sleepCtx(ctx, cfg.connectInterval); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("%w: %v", ErrConnectionFailed, lastErr)
}

// resolve discovers services once and binds the light-control characteristic.
func resolve(ctx context.Context, peripheral ble.Peripheral) (ble.Characteristic, error) {
	if err := peripheral.DiscoverServices(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceDiscoveryFailed, err)
	}

	for _, char := range peripheral.Characteristics() {
		if char.UUID() == ble.LightCharacteristicUUID {
			return char, nil
		}
	}
	return nil, ErrCharacteristicNotFound
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Name returns the advertised device name captured during discovery.
func (d *Device) Name() string {
	return d.name
}

// Close disconnects from the controller.
func (d *Device) Close() error {
	return d.peripheral.Disconnect()
}

// send delivers one frame and enforces the settle delay. The controller never
// acknowledges writes, so transport errors surface unchanged and there is no
// retry here: re-sending a stateful command (e.g. a schedule toggle) whose
// delivery is unknown is not idempotent.
func (d *Device) send(frame protocol.Frame) error {
	if !frame.WellFormed() {
		return fmt.Errorf("%w: malformed command frame % X", ErrInvalidParameter, frame.Bytes())
	}

	if err := d.peripheral.Write(d.char, frame.Bytes()); err != nil {
		return err
	}
	time.Sleep(d.settle)
	return nil
}

// PowerOn turns the light on.
func (d *Device) PowerOn() error {
	return d.send(protocol.Power(true))
}

// PowerOff turns the light off.
func (d *Device) PowerOff() error {
	return d.send(protocol.Power(false))
}

// SetBrightness sets the brightness as a percentage, 0-100.
func (d *Device) SetBrightness(level uint8) error {
	frame, err := protocol.Brightness(level)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return d.send(frame)
}

// SetColor sets a static RGB color. All byte values are valid.
func (d *Device) SetColor(r, g, b uint8) error {
	return d.send(protocol.Color(r, g, b))
}

// SetEffect selects a built-in lighting effect.
func (d *Device) SetEffect(effect Effect) error {
	return d.send(protocol.Effect(byte(effect)))
}

// SetEffectSpeed sets the effect animation speed as a percentage, 0-100.
func (d *Device) SetEffectSpeed(speed uint8) error {
	frame, err := protocol.EffectSpeed(speed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return d.send(frame)
}

// SyncTime sets the controller's clock to the local wall-clock time.
func (d *Device) SyncTime() error {
	now := time.Now()
	weekday := uint8(now.Weekday())
	if weekday == 0 {
		weekday = 7 // controller counts 1=Monday..7=Sunday
	}
	frame, err := protocol.CustomTime(uint8(now.Hour()), uint8(now.Minute()), uint8(now.Second()), weekday)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return d.send(frame)
}

// SetCustomTime sets the controller's clock to an arbitrary moment.
// Weekday is ISO: 1=Monday, 7=Sunday.
func (d *Device) SetCustomTime(hour, minute, second, weekday uint8) error {
	frame, err := protocol.CustomTime(hour, minute, second, weekday)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return d.send(frame)
}

// SetScheduleOn programs the power-on schedule for the given days and time.
// When enabled is false the schedule entry is stored but inactive.
func (d *Device) SetScheduleOn(days Day, hour, minute uint8, enabled bool) error {
	frame, err := protocol.ScheduleOn(byte(days), hour, minute, enabled)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return d.send(frame)
}

// SetScheduleOff programs the power-off schedule for the given days and time.
// When enabled is false the schedule entry is stored but inactive.
func (d *Device) SetScheduleOff(days Day, hour, minute uint8, enabled bool) error {
	frame, err := protocol.ScheduleOff(byte(days), hour, minute, enabled)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return d.send(frame)
}

// GenericCommand sends an arbitrary opcode with raw arguments. Useful for
// opcodes the library has no typed wrapper for.
func (d *Device) GenericCommand(opcode, sub, arg1, arg2, arg3 uint8) error {
	return d.send(protocol.Generic(opcode, sub, arg1, arg2, arg3))
}
