// Package dual models numeric arrays that are resident on both the host and
// an accelerator device. The package is deliberately ignorant of any
// particular accelerator runtime: the device side is an injected Mirror, and
// the contract is limited to a host-currency check plus an explicit,
// blocking host sync. Consumers that read host memory (the visualization
// writers) call Sync before touching stale contents; that call is the only
// suspension point of an export.
package dual
