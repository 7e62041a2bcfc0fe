package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The portfolio resources below keep the wire field names the frontend
// already depends on, so documents round-trip unchanged through the store
// and the JSON layer.

// Project is a portfolio project card. All content fields are mandatory at
// creation; OwnerEmail records who may update it.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"      json:"_id,omitempty"`
	Name        string             `bson:"ProjectName"        json:"ProjectName"`
	Description string             `bson:"ProjectDescription" json:"ProjectDescription"`
	Image       string             `bson:"ProjectImage"       json:"ProjectImage"`
	Link        string             `bson:"ProjectLink"        json:"ProjectLink"`
	OwnerEmail  string             `bson:"userEmail"          json:"userEmail"`
}

// Skill is a named skill with a self-assessed level and an icon image.
type Skill struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"SkillName"     json:"SkillName"`
	Level      string             `bson:"SkillLevel"    json:"SkillLevel"`
	Image      string             `bson:"SkillImage"    json:"SkillImage"`
	OwnerEmail string             `bson:"userEmail"     json:"userEmail"`
}

// Testimonial is a quote from a person endorsing the portfolio owner.
type Testimonial struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"          json:"_id,omitempty"`
	PersonName string             `bson:"TestimonialpersonName"  json:"TestimonialpersonName"`
	PersonRole string             `bson:"PersonRole"             json:"PersonRole"`
	PersonImage string            `bson:"PersonImage"            json:"PersonImage"`
	Body       string             `bson:"Testimonial"            json:"Testimonial"`
	OwnerEmail string             `bson:"userEmail"              json:"userEmail"`
}

// BlogPost is a blog entry. CreatedAt is stamped once at creation and never
// modified by updates.
type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"       json:"_id,omitempty"`
	Title      string             `bson:"BlogTitle"           json:"BlogTitle"`
	Author     string             `bson:"BlogAuthor"          json:"BlogAuthor"`
	Image      string             `bson:"BlogImage"           json:"BlogImage"`
	Content    string             `bson:"BlogContent"         json:"BlogContent"`
	OwnerEmail string             `bson:"userEmail"           json:"userEmail"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
