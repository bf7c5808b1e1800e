// Package domain contains the core domain model for carlens.
//
// The domain is format- and storage-agnostic: it does not depend on CSV/XML parsing,
// terminal rendering, or the filesystem. Infra/adapters map into/from these types.
package domain
