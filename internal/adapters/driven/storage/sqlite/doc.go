// Package sqlite persists local client state in a SQLite database under
// the paperchat data directory. Today that is the authenticated
// session, the terminal counterpart of the web client keeping its auth
// token in browser storage.
package sqlite
