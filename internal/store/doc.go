// Package store defines the persistence interfaces for the application's
// entities along with the sentinel errors implementations must return.
// Concrete implementations live in internal/platform/mongo.
package store
