package api

// revalidateOnUpdate records, per resource, whether the update handler
// re-checks that all required content fields are present before writing.
// Skills and blogs re-validate; projects and testimonials accept whatever
// the client sends and overwrite the stored fields with it. The asymmetry
// is part of the existing API contract, so it is kept as an explicit
// per-resource policy instead of being silently unified.
var revalidateOnUpdate = map[string]bool{
	"projects":     false,
	"skills":       true,
	"testimonials": false,
	"blogs":        true,
}
