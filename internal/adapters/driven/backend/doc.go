// Package backend implements the driven ports that talk to the
// paperchat backend over HTTP: the JSON API gateway and the raw
// presigned object PUT. Wire types live here; the rest of the
// application only sees domain types.
package backend
