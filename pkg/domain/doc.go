/*
Package domain contains the core model of a pulse network.

It defines the nodes (broadcaster, flip-flop, conjunction, sink), the pulses they exchange,
the network that owns them and the errors the simulator reports. The package is pure:
no I/O, no scheduling. Scheduling lives in internal/runtime.

# Key Entities

  - Node: a named module with ordered destinations and per-kind state.
  - Pulse: an immutable (from, to, level) record.
  - Network: the closed graph, built once and never restructured.
  - LifecycleHooks: observation callbacks fired by the scheduler.
*/
package domain
