// Package services implements the core application logic: the upload
// ingestion pipeline, the document catalog, per-document chat sessions,
// viewport state and account authentication. Services depend only on
// domain types and driven ports.
package services
