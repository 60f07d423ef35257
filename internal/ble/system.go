package ble

import (
	"context"
	"fmt"
	"sync"

	"tinygo.org/x/bluetooth"
)

// LightCharacteristicUUID is the well-known write characteristic of the
// controller: 16-bit assigned value 0xFFF3 on the standard Bluetooth base UUID.
var LightCharacteristicUUID = bluetooth.New16BitUUID(0xFFF3).String()

// SystemTransport is the Transport backed by the host Bluetooth stack.
type SystemTransport struct{}

// NewSystemTransport returns a Transport using the platform's default adapter.
func NewSystemTransport() *SystemTransport {
	return &SystemTransport{}
}

// Adapters returns the default adapter, enabled. tinygo's bluetooth package
// only exposes a single adapter per host, so the slice has at most one entry.
func (*SystemTransport) Adapters() ([]Adapter, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}
	return []Adapter{newSystemAdapter(adapter)}, nil
}

// systemAdapter adapts tinygo's callback-driven scan to the polling
// Peripherals contract by caching every advertisement seen since StartScan.
type systemAdapter struct {
	adapter *bluetooth.Adapter

	mu       sync.Mutex
	scanning bool
	seen     map[string]*systemPeripheral
	done     chan struct{}
}

func newSystemAdapter(adapter *bluetooth.Adapter) *systemAdapter {
	return &systemAdapter{
		adapter: adapter,
		seen:    make(map[string]*systemPeripheral),
	}
}

func (a *systemAdapter) StartScan(ctx context.Context) error {
	a.mu.Lock()
	if a.scanning {
		a.mu.Unlock()
		return nil
	}
	a.scanning = true
	a.done = make(chan struct{})
	done := a.done
	a.mu.Unlock()

	go func() {
		defer close(done)
		// Blocks until StopScan; each advertisement updates the cache.
		a.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			addr := result.Address.String()
			a.mu.Lock()
			p, ok := a.seen[addr]
			if !ok {
				p = &systemPeripheral{adapter: a.adapter, address: result.Address}
				a.seen[addr] = p
			}
			p.updateAdvertisement(result.LocalName(), result.RSSI)
			a.mu.Unlock()
		})
	}()

	return nil
}

func (a *systemAdapter) StopScan() error {
	a.mu.Lock()
	if !a.scanning {
		a.mu.Unlock()
		return nil
	}
	a.scanning = false
	done := a.done
	a.mu.Unlock()

	err := a.adapter.StopScan()
	<-done
	return err
}

func (a *systemAdapter) Peripherals() ([]Peripheral, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	peripherals := make([]Peripheral, 0, len(a.seen))
	for _, p := range a.seen {
		peripherals = append(peripherals, p)
	}
	return peripherals, nil
}

// systemPeripheral is a peripheral seen by the system adapter.
type systemPeripheral struct {
	adapter *bluetooth.Adapter
	address bluetooth.Address

	mu        sync.Mutex
	name      string
	rssi      int16
	seen      bool
	connected bool
	device    bluetooth.Device
	chars     []Characteristic
	byUUID    map[string]bluetooth.DeviceCharacteristic
}

func (p *systemPeripheral) updateAdvertisement(name string, rssi int16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if name != "" {
		p.name = name
	}
	p.rssi = rssi
	p.seen = true
}

func (p *systemPeripheral) Properties() (*Properties, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.seen {
		return nil, ErrNoProperties
	}
	return &Properties{
		LocalName: p.name,
		Address:   p.address.String(),
		RSSI:      p.rssi,
	}, nil
}

func (p *systemPeripheral) Connect(ctx context.Context) error {
	device, err := p.adapter.Connect(p.address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	p.mu.Lock()
	p.device = device
	p.connected = true
	p.mu.Unlock()
	return nil
}

func (p *systemPeripheral) DiscoverServices(ctx context.Context) error {
	p.mu.Lock()
	if !p.connected {
		p.mu.Unlock()
		return ErrNotConnected
	}
	device := p.device
	p.mu.Unlock()

	services, err := device.DiscoverServices(nil)
	if err != nil {
		return fmt.Errorf("failed to discover services: %w", err)
	}

	var chars []Characteristic
	byUUID := make(map[string]bluetooth.DeviceCharacteristic)
	for _, svc := range services {
		discovered, err := svc.DiscoverCharacteristics(nil)
		if err != nil {
			return fmt.Errorf("failed to discover characteristics: %w", err)
		}
		for _, ch := range discovered {
			uuid := ch.UUID().String()
			chars = append(chars, systemCharacteristic{uuid: uuid})
			byUUID[uuid] = ch
		}
	}

	p.mu.Lock()
	p.chars = chars
	p.byUUID = byUUID
	p.mu.Unlock()
	return nil
}

func (p *systemPeripheral) Characteristics() []Characteristic {
	p.mu.Lock()
	defer p.mu.Unlock()
	chars := make([]Characteristic, len(p.chars))
	copy(chars, p.chars)
	return chars
}

func (p *systemPeripheral) Write(char Characteristic, data []byte) error {
	p.mu.Lock()
	if !p.connected {
		p.mu.Unlock()
		return ErrNotConnected
	}
	ch, ok := p.byUUID[char.UUID()]
	p.mu.Unlock()

	if !ok {
		return fmt.Errorf("ble: characteristic %s not resolved on peripheral", char.UUID())
	}

	_, err := ch.WriteWithoutResponse(data)
	if err != nil {
		_, err = ch.Write(data)
	}
	return err
}

func (p *systemPeripheral) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.connected {
		return nil
	}
	p.connected = false
	return p.device.Disconnect()
}

type systemCharacteristic struct {
	uuid string
}

func (c systemCharacteristic) UUID() string { return c.uuid }
