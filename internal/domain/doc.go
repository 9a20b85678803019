// Package domain defines the core types and interfaces shared across
// cookietrace: cookie observations, capture runs, and the storage,
// collection and rendering contracts the concrete packages implement.
package domain
