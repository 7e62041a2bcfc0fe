// Package api contains the HTTP handlers for the portfolio resources,
// authentication endpoints and the publish flow, along with the
// request/response plumbing they share.
package api
