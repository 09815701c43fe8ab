// internal/domain/models/train.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Train is a scheduled service.
//
// Route is the ordered list of station identifiers the train passes.
// Schedule is the ordered list of stops. Neither is checked against the
// stations collection.
type Train struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TrainNo  Text               `bson:"train_no" json:"train_no"`
	Name     Text               `bson:"name" json:"name"`
	Route    []Text             `bson:"route" json:"route"`
	Schedule []TrainStop        `bson:"schedule" json:"schedule"`
}

// TrainStop is one row of a train's schedule.
type TrainStop struct {
	Station             Text `bson:"station" json:"station"`
	Arrival             Text `bson:"arrival" json:"arrival"`
	Departure           Text `bson:"departure" json:"departure"`
	SectionControllerID Text `bson:"section_controller_id" json:"section_controller_id"`
}

// Normalize replaces nil Route/Schedule with empty slices so they are stored
// as [] and never rendered as null.
func (t *Train) Normalize() {
	if t.Route == nil {
		t.Route = []Text{}
	}
	if t.Schedule == nil {
		t.Schedule = []TrainStop{}
	}
}
