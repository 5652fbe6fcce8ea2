package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserColName = "users"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName" validate:"required"`
	LastName  string             `bson:"lastName" json:"lastName" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	// bcrypt hash; never serialized
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (u *User) BeforeCreate() {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}
