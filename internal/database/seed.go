package database

import (
	"takeaway/internal/models"
	"takeaway/pkg/openinghours"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var demoProducts = []struct {
	name, description, price, tag, color string
}{
	{"Margherita", "Tomat, mozzarella og basilikum", "89", "Pizza", "#e11d48"},
	{"Pepperoni", "Tomat, mozzarella og pepperoni", "99", "Pizza", "#e11d48"},
	{"Cheeseburger", "Oksekød, cheddar og syltede agurker", "109", "Burger", "#f59e0b"},
	{"Tiramisu", "Hjemmelavet", "45", "Dessert", "#6466f1"},
}

func demoProduct(i int) *models.Product {
	p := demoProducts[i]
	sortOrder := i
	return &models.Product{
		Name:        p.name,
		Description: &p.description,
		Price:       decimal.RequireFromString(p.price),
		VAT:         decimal.NewFromInt(25),
		TagName:     &p.tag,
		TagColor:    &p.color,
		SortOrder:   &sortOrder,
	}
}

func demoRestaurant() *models.Restaurant {
	phone := "+45 12 34 56 78"
	return &models.Restaurant{
		Name:    "Takeaway",
		Address: "Hovedgaden 1, 8000 Aarhus C",
		Phone:   &phone,
		OpeningHours: datatypes.NewJSONType(openinghours.Hours{
			Monday:    openinghours.Closed,
			Tuesday:   "16:00 - 21:00",
			Wednesday: "16:00 - 21:00",
			Thursday:  "16:00 - 21:00",
			Friday:    "16:00 - 23:00",
			Saturday:  "12:00 - 23:00",
			Sunday:    "12:00 - 21:00",
		}),
	}
}
