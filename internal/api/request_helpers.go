package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
)

// pathObjectID extracts the "id" path parameter and parses it as a document
// identifier. Handlers respond with their resource-specific message when the
// returned error is non-nil.
func pathObjectID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", domain.ErrInvalidID, err)
	}
	return id, nil
}
