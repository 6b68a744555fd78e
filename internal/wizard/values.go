package wizard

import (
	"maps"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// ImageRef is an image as the photos tab submits it: freshly uploaded images
// carry ImageID, already stored ones carry ID.
type ImageRef struct {
	ImageID domain.ImageID `json:"imageId,omitempty"`
	ID      domain.ImageID `json:"id,omitempty"`
}

// Values are the form values submitted by one tab. A nil Images means the tab
// has no image field; an empty non-nil slice removes every image.
type Values struct {
	Title            *string                  `json:"title,omitempty"`
	Description      *string                  `json:"description,omitempty"`
	PublicData       map[string]any           `json:"publicData,omitempty"`
	Images           []ImageRef               `json:"images,omitempty"`
	AvailabilityPlan *domain.AvailabilityPlan `json:"availabilityPlan,omitempty"`
	Price            *domain.Money            `json:"price,omitempty"`
}

// NormalizeImages reduces image references to bare identifiers. References
// carrying neither identifier are dropped.
func NormalizeImages(images []ImageRef) []domain.ImageID {
	if images == nil {
		return nil
	}
	ids := make([]domain.ImageID, 0, len(images))
	for _, img := range images {
		id := img.ImageID
		if id == "" {
			id = img.ID
		}
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ToUpdate turns tab values into the listing collaborator payload. Images are
// normalized; every other value passes through unchanged.
func (v Values) ToUpdate() domain.ListingUpdate {
	return domain.ListingUpdate{
		Title:            v.Title,
		Description:      v.Description,
		PublicData:       maps.Clone(v.PublicData),
		Images:           NormalizeImages(v.Images),
		AvailabilityPlan: v.AvailabilityPlan,
		Price:            v.Price,
	}
}
