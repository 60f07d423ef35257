// Package ble provides low-level BLE transport for ELK-BLEDOM controllers.
//
// The capability interfaces in this file are the narrow contract the
// acquisition pipeline and command path consume. The real implementation
// (tinygo.org/x/bluetooth) lives in system.go; tests substitute a fake.
package ble

import (
	"context"
	"errors"
)

// Errors
var (
	ErrNotConnected = errors.New("ble: not connected to peripheral")
	ErrNoProperties = errors.New("ble: peripheral properties not available")
)

// Properties holds the advertised data of a discovered peripheral.
type Properties struct {
	LocalName string
	Address   string
	RSSI      int16
}

// Characteristic is a writable slot on a connected peripheral, identified by
// its canonical 128-bit UUID string.
type Characteristic interface {
	UUID() string
}

// Peripheral is a remote BLE node discovered during a scan.
type Peripheral interface {
	// Properties returns the peripheral's advertised data, or ErrNoProperties
	// if no advertisement has been captured for it.
	Properties() (*Properties, error)

	// Connect opens a link to the peripheral.
	Connect(ctx context.Context) error

	// DiscoverServices enumerates the peripheral's services and their
	// characteristics. Must be called after Connect and before
	// Characteristics.
	DiscoverServices(ctx context.Context) error

	// Characteristics returns the characteristics found by DiscoverServices.
	Characteristics() []Characteristic

	// Write delivers data to the characteristic without expecting a response.
	Write(char Characteristic, data []byte) error

	// Disconnect tears down the link. Safe to call when not connected.
	Disconnect() error
}

// Adapter is a local Bluetooth radio.
type Adapter interface {
	// StartScan begins a broadcast scan. Peripherals seen while scanning
	// become visible through Peripherals.
	StartScan(ctx context.Context) error

	// StopScan ends an in-progress scan.
	StopScan() error

	// Peripherals returns a snapshot of the peripherals seen so far.
	Peripherals() ([]Peripheral, error)
}

// Transport is the entry point to a Bluetooth stack.
type Transport interface {
	// Adapters enumerates the available radios. The slice may be empty.
	Adapters() ([]Adapter, error)
}
