// Package service orchestrates the core components of the engine —
// book, journal, outbox, sequencer and memory reclamation.
//
// It provides a clean API for adding, cancelling, amending and
// querying orders, decoupled from network transports like gRPC.
package service
