// Package domain contains the core business entities for paperchat:
// documents, chat messages, upload tasks and the user session.
// Types here have no dependencies on adapters or external services.
package domain
