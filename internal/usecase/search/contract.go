package search

import domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"

// CatalogReader provides the read-only catalog slices that search scans.
type CatalogReader interface {
	Vehicles() []domcat.Vehicle
	Tours() []domcat.Tour
	Posts() []domcat.Post
}
