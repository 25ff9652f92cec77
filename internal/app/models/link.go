package models

type Link struct {
	ID        string `bson:"_id,omitempty"`
	Title     string `bson:"title"`
	URL       string `bson:"url"`
	TimeModel `bson:",inline"`
}
