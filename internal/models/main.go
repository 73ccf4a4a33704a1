package models

// ModelRegistry lists every model covered by --auto-migrate. SQL migrations
// under migrations/ remain the source of truth for production schemas.
var ModelRegistry = []interface{}{
	&Application{},
	&WaitlistEntry{},
}
