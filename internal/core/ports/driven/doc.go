// Package driven defines the secondary ports: interfaces the core
// depends on and adapters implement. The backend gateway, the raw
// object store PUT, local configuration and the persisted session all
// live behind these interfaces so the services can be tested without
// network or disk.
package driven
