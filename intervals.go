package astral

import (
	"time"

	"github.com/chillcicada/easytier-astral/internal/globals"
)

// ReconnectInterval is the delay between manual connector reconnect attempts.
func ReconnectInterval() time.Duration {
	return time.Duration(globals.ManualConnectorReconnectIntervalMS.Get()) * time.Millisecond
}

// ForeignNetworkUpdateInterval is how often this node republishes its
// global foreign network info.
func ForeignNetworkUpdateInterval() time.Duration {
	return time.Duration(globals.OSPFUpdateMyGlobalForeignNetworkIntervalSec.Get()) * time.Second
}
