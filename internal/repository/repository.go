// Package repository owns data access behind small interfaces.
//
// There is no real datastore in this service: the only persistent-ish
// state is the set of known person identifiers, modeled as a store
// interface with an in-memory implementation. Services depend on the
// interface, so a real backend can replace the in-memory seed without
// touching the layers above.
package repository
