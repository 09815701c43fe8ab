// internal/domain/models/station.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Station is a stop on the network.
// SectionControllerID is free text; it is never resolved against the
// sectioncontrollers collection.
type Station struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code                Text               `bson:"code" json:"code"`
	Name                Text               `bson:"name" json:"name"`
	SectionControllerID Text               `bson:"section_controller_id" json:"section_controller_id"`
	StationMaster       StationMaster      `bson:"station_master" json:"station_master"`
}

// StationMaster is embedded in Station.
type StationMaster struct {
	ID   Text `bson:"id" json:"id"`
	Name Text `bson:"name" json:"name"`
}
