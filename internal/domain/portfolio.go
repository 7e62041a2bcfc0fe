package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Portfolio is a published portfolio page. At most one exists per email;
// the first successful publish permanently determines the stored HTML and
// live link (later publish attempts return the original link unchanged).
type Portfolio struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email"         json:"email"`
	HTML      string             `bson:"portfolioData" json:"portfolioData"`
	LiveLink  string             `bson:"liveLink"      json:"liveLink"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
