package retry

// NextDelay exposes the backoff step to the external test package.
var NextDelay = nextDelay
