package models

type ChecklistItem struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	Title     string `bson:"title"`
	Done      bool   `bson:"done"`
	TimeModel `bson:",inline"`
}
