/*
Package ports defines the driven ports (interfaces) for the pulsenet engine.

These interfaces decouple the simulator from where network descriptions come from.

# Key Interfaces

  - NetworkLoader: Responsible for producing module declarations (e.g., from a file or memory).
  - Watchable: Optional capability of loaders whose source can change (hot reload).
*/
package ports
