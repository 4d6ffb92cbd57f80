// Package resilience provides fault tolerance patterns for outbound calls.
// It currently holds the circuit breaker used by the background alert watcher
// to stop hammering an unhealthy backend.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.BackendPollConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return pollBackend()
//	})
package resilience
