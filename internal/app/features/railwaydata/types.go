// internal/app/features/railwaydata/types.go
package railwaydata

import "github.com/dalemusser/railops/internal/domain/models"

const (
	importedMessage = "Data inserted successfully"
	emptyMessage    = "No data found. Please add some data using POST /api/data"

	uriSetHint     = "MongoDB URI is set"
	uriMissingHint = "MongoDB URI is missing"
)

// importRequest is the POST /api/data body. Each array is optional.
type importRequest struct {
	SectionControllers []models.SectionController `json:"section_controllers"`
	Stations           []models.Station           `json:"stations"`
	Trains             []models.Train             `json:"trains"`
}

// dataResponse is the GET /api/data body. Message is only set when all
// three collections are empty.
type dataResponse struct {
	Message            string                     `json:"message,omitempty"`
	SectionControllers []models.SectionController `json:"sectionControllers"`
	Stations           []models.Station           `json:"stations"`
	Trains             []models.Train             `json:"trains"`
}

func (d dataResponse) empty() bool {
	return len(d.SectionControllers) == 0 && len(d.Stations) == 0 && len(d.Trains) == 0
}
