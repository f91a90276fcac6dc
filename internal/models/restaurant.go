package models

import (
	"time"

	"gorm.io/datatypes"

	"takeaway/pkg/openinghours"
)

// Restaurant is the restaurant profile shown on the storefront.
type Restaurant struct {
	ID           uint                                   `json:"id" gorm:"primaryKey"`
	Name         string                                 `json:"name" gorm:"type:varchar(255);not null"`
	Address      string                                 `json:"address" gorm:"type:varchar(255)"`
	Phone        *string                                `json:"phone" gorm:"type:varchar(50)"`
	Email        *string                                `json:"email" gorm:"type:varchar(255)"`
	OpeningHours datatypes.JSONType[openinghours.Hours] `json:"opening_hours"`
	CreatedAt    time.Time                              `json:"created_at"`
	UpdatedAt    time.Time                              `json:"updated_at"`
}

// Hours returns the decoded opening hours.
func (r *Restaurant) Hours() openinghours.Hours {
	return r.OpeningHours.Data()
}

// RestaurantInput is the request body accepted by create and update. It
// follows the product update policy: optional keys left out keep the stored
// value, explicit nulls clear it.
type RestaurantInput struct {
	Name         string                       `json:"name" validate:"required,notblank,max=255"`
	Address      string                       `json:"address" validate:"required,notblank,max=255"`
	Phone        Optional[string]             `json:"phone" validate:"omitempty,max=50"`
	Email        Optional[string]             `json:"email" validate:"omitempty,email"`
	OpeningHours Optional[openinghours.Hours] `json:"opening_hours"`
}

// NewRestaurant builds a restaurant from a validated input. Without
// opening hours it gets seven blank days.
func (in RestaurantInput) NewRestaurant() *Restaurant {
	r := &Restaurant{OpeningHours: datatypes.NewJSONType(openinghours.Default())}
	in.ApplyTo(r)
	return r
}

// ApplyTo copies the input onto r. Opening hours are written whole; null
// resets them to seven blank days.
func (in RestaurantInput) ApplyTo(r *Restaurant) {
	r.Name = in.Name
	r.Address = in.Address
	in.Phone.Apply(&r.Phone)
	in.Email.Apply(&r.Email)

	if in.OpeningHours.Set {
		hours := openinghours.Default()
		if in.OpeningHours.Value != nil {
			hours = *in.OpeningHours.Value
		}
		r.OpeningHours = datatypes.NewJSONType(hours)
	}
}
