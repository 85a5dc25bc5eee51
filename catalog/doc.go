// Package catalog defines the hierarchy descriptor value type consumed by
// ontology.Expand. A Hierarchy is fetched and cached by an external catalog
// builder (out of scope — spec §1); this package only carries the shape
// the core needs to ingest it.
package catalog
