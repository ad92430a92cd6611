package health

import "context"

// DBPinger checks session store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether the catalog has anything to serve.
type CatalogChecker interface {
	IsEmpty() bool
}
