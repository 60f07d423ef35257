package bledom

import (
	"time"

	"github.com/ledkit/bledom/internal/ble"
)

// Option configures device acquisition.
type Option func(*config)

type config struct {
	scanRetries     int
	scanInterval    time.Duration
	connectRetries  int
	connectInterval time.Duration
	settleDelay     time.Duration
	transport       ble.Transport
}

func defaultConfig() *config {
	return &config{
		scanRetries:     10,
		scanInterval:    time.Second,
		connectRetries:  10,
		connectInterval: 100 * time.Millisecond,
		settleDelay:     defaultSettleDelay,
		transport:       ble.NewSystemTransport(),
	}
}

// WithScanRetries sets how many scan polls are made before giving up on
// discovery (default 10). Each poll enumerates the peripherals visible so far.
func WithScanRetries(retries int) Option {
	return func(c *config) {
		c.scanRetries = retries
	}
}

// WithScanInterval sets the pause between scan polls (default 1s).
func WithScanInterval(interval time.Duration) Option {
	return func(c *config) {
		c.scanInterval = interval
	}
}

// WithConnectRetries sets how many connection attempts are made before giving
// up (default 10). Connection retries are budgeted separately from scan
// retries: an advertisement being visible does not mean the link will open.
func WithConnectRetries(retries int) Option {
	return func(c *config) {
		c.connectRetries = retries
	}
}

// WithConnectInterval sets the pause between connection attempts (default 100ms).
func WithConnectInterval(interval time.Duration) Option {
	return func(c *config) {
		c.connectInterval = interval
	}
}

// WithSettleDelay overrides the pause enforced after every command write
// (default 100ms). The controller drops back-to-back writes; lowering this
// below the default risks lost commands on real hardware.
func WithSettleDelay(delay time.Duration) Option {
	return func(c *config) {
		c.settleDelay = delay
	}
}

// withTransport substitutes the Bluetooth stack. Used by tests to run the
// acquisition pipeline against a simulated environment.
func withTransport(t ble.Transport) Option {
	return func(c *config) {
		c.transport = t
	}
}
