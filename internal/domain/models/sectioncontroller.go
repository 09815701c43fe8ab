// internal/domain/models/sectioncontroller.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SectionController is a controller responsible for one section of line.
//
// ControllerID is the application's own identifier ("id" on the wire). It
// is independent of the storage key in ID and is not checked for uniqueness.
type SectionController struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ControllerID  Text               `bson:"id" json:"id"`
	Name          Text               `bson:"name" json:"name"`
	Section       Text               `bson:"section" json:"section"`
	ControlOffice Text               `bson:"control_office" json:"control_office"`
}
