package bledom

import "errors"

// Sentinel errors for the bledom package.
var (
	// Acquisition errors
	ErrNoAdaptersFound        = errors.New("bledom: no Bluetooth adapters found")
	ErrScanFailed             = errors.New("bledom: failed to start BLE scan")
	ErrDeviceNotFound         = errors.New("bledom: device not found after multiple tries")
	ErrConnectionFailed       = errors.New("bledom: connection failed after multiple tries")
	ErrServiceDiscoveryFailed = errors.New("bledom: service discovery failed")
	ErrCharacteristicNotFound = errors.New("bledom: light characteristic not found on device")

	// Command errors
	ErrInvalidParameter = errors.New("bledom: invalid parameter")
)
