package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"password,omitempty" bson:"password"`
	UserType       UserType           `json:"userType" bson:"userType"`
	Year           int                `json:"year,omitempty" bson:"year,omitempty"`
	Department     string             `json:"department" bson:"department"`
	CollegeName    string             `json:"collegeName" bson:"collegeName"`
	ProfilePic     string             `json:"profilePic" bson:"profilePic"`
	FullName       string             `json:"fullName" bson:"fullName"`
	Phone          string             `json:"phone" bson:"phone"`
	Location       string             `json:"location" bson:"location"`
	Bio            string             `json:"bio" bson:"bio"`
	CurrentJobRole string             `json:"currentJobRole" bson:"currentJobRole"`

	// Relationship sets. Usernames act as the relation key everywhere;
	// all three are manipulated with idempotent set semantics only.
	Connections      []string `json:"connections" bson:"connections"`
	SentRequests     []string `json:"sentRequests" bson:"sentRequests"`
	ReceivedRequests []string `json:"receivedRequests" bson:"receivedRequests"`
}

type UserType string

const (
	UserTypeStudent UserType = "Student"
	UserTypeAlumni  UserType = "Alumni"
	UserTypeAdmin   UserType = "Admin"
)

// DisplayName returns the full name when the profile has one, otherwise the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
