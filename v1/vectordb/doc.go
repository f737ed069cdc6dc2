// Package vectordb provides a database-agnostic abstraction over vector
// point storage and similarity search.
//
// # Overview
//
// This package defines a common interface [Store] that can be implemented
// by different vector database adapters (Qdrant, pgVector, etc.), allowing
// the document store layer to switch between databases without changing
// adapter code.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                   Document Store Layer                      │
//	│      (uses vectordb.Store - no DB-specific imports)         │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                      vectordb.Store                         │
//	│          (common interface + DB-agnostic types)             │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	        ┌──────────────────┴──────────────────┐
//	        ▼                                     ▼
//	┌───────────────┐                     ┌───────────────┐
//	│ qdrant.Store  │                     │ in-memory fake│
//	│ (implements)  │                     │   (tests)     │
//	└───────────────┘                     └───────────────┘
//
// # Filters
//
// Query filters are backend-defined and deliberately untyped here:
// [QueryRequest.Filter] is carried as an opaque value and never interpreted
// by this layer. Backends type-assert it to their native filter type and
// reject anything else.
package vectordb
