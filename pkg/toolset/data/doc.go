// Package data provides the dataset, connection and publication toolset.
// All four resource families - imported datasets, connections, publications
// and wrangled datasets - live on the legacy API surface.
package data
