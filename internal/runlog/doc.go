// Package runlog persists a history of simulation runs in SQLite.
//
// Each record carries the run token, the operation name, and a summary
// of the outcome serialized as canonical JSON. The canonical form (NFC
// strings, sorted keys, no HTML escaping) makes the stored hash stable
// across processes, so two identical runs always hash identically.
//
// The database uses WAL mode so history reads never block writes.
package runlog
