// Package storage defines the persistence interfaces for citizen reports.
//
// The package contains only abstractions and serialization helpers; concrete
// backends live in sub-packages (storage/badger). The ingestion pipeline and
// search layer depend on these interfaces, never on a concrete backend, so
// storage engines can be swapped without touching business logic.
//
// Reports are serialized with the MUS binary format. The serializers in
// reports_mus.gen.go are produced by the generator in cmd/musgen; run
// "go generate ./core" after changing the core types.
package storage
