package models

type Subject struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
	Code string `json:"code,omitempty" bson:"code,omitempty"`
}
