// Package sim provides the discrete-event simulation engine for a single-server
// first-come-first-served queue (M/M/1).
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: Event records (Arrival, Departure) and their ordering key
//   - event_queue.go: the future event list, a heap ordered by time then sequence number
//   - simulator.go: the event loop and the arrival/departure handlers
//
// # Architecture
//
// The sim package holds the event-scheduling engine; related code lives in
// sub-packages:
//   - sim/process/: process-interaction engine used to cross-check results
//   - sim/analytic/: closed-form M/M/1 steady-state values
//   - sim/validation/: seeded replications of both engines and their summary statistics
//   - sim/trace/: per-event trace recording
//
// # Key Interfaces
//
//   - Sampler: interarrival and service durations. ExponentialSampler draws from
//     seedable, per-subsystem streams (see PartitionedRNG) so runs are reproducible.
package sim
