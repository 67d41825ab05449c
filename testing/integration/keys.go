package integration

import "github.com/zoobzio/histz"

// Shared histogram keys for all integration tests - consistent Key type usage.
const (
	// Pipeline scenario keys.
	RequestSizesKey   histz.Key = "request.sizes"
	ResponseTimesKey  histz.Key = "response.times"
	PayloadEntropyKey histz.Key = "payload.entropy"

	// Isolation test keys.
	SharedHistKey histz.Key = "shared_hist"
)
