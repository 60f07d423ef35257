// Package bledom provides a Go client for ELK-BLEDOM Bluetooth Low Energy
// RGB light controllers.
//
// # Features
//
//   - Device discovery and connection with bounded, configurable retries
//   - Power, brightness, color, and built-in effect control
//   - On/off scheduling with per-day bitmasks
//   - Clock synchronization
//   - Raw command passthrough for undocumented opcodes
//
// # Quick Start
//
// Acquire the first controller in range and turn it red:
//
//	ctx := context.Background()
//	dev, err := bledom.Acquire(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	if err := dev.PowerOn(); err != nil {
//	    log.Fatal(err)
//	}
//	dev.SetColor(255, 0, 0)
//
// # Retry Tuning
//
// Discovery and connection retry for different reasons (advertisement
// visibility vs. link negotiation), so the two loops are budgeted
// independently:
//
//	dev, err := bledom.Acquire(ctx,
//	    bledom.WithScanRetries(20),
//	    bledom.WithScanInterval(500*time.Millisecond),
//	    bledom.WithConnectRetries(5),
//	)
//
// # Protocol
//
// The controller speaks a fire-and-forget 9-byte framed protocol over a single
// write characteristic (0xFFF3). It never acknowledges commands; a malformed
// frame is dropped silently. The library validates every field before writing
// and paces successive writes so the controller's command buffer keeps up.
//
// # Concurrency
//
// A Device is not safe for concurrent use. Interleaved writes from two
// goroutines can corrupt controller state; callers must serialize access,
// typically by owning one Device per goroutine.
package bledom
