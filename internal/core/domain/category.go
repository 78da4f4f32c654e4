package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Category is one of the fixed booking variants. The set is closed; every
// switch over it is exhaustive.
type Category int

const (
	Hotel Category = iota
	Flight
	Tour
	Restaurant
	CarRental
)

var categories = []Category{Hotel, Flight, Tour, Restaurant, CarRental}

// Categories returns every category in selection order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	return c >= Hotel && c <= CarRental
}

// Label is the display name of the category.
func (c Category) Label() string {
	switch c {
	case Hotel:
		return "Отель"
	case Flight:
		return "Авиабилет"
	case Tour:
		return "Тур"
	case Restaurant:
		return "Ресторан"
	case CarRental:
		return "Автомобиль"
	}

	return ""
}

// Slug is the stable machine identifier, independent of the display label.
func (c Category) Slug() string {
	switch c {
	case Hotel:
		return "hotel"
	case Flight:
		return "flight"
	case Tour:
		return "tour"
	case Restaurant:
		return "restaurant"
	case CarRental:
		return "car_rental"
	}

	return ""
}

func (c Category) String() string {
	if s := c.Slug(); s != "" {
		return s
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// Cost prices a booking of the given number of days. Flights are a flat fare
// and ignore days entirely, including zero or negative spans.
func (c Category) Cost(days int) float64 {
	switch c {
	case Hotel:
		return 30000.0 * float64(days)
	case Flight:
		return 9000.0
	case Tour:
		return 5000.0 * float64(days)
	case Restaurant:
		return 1800.0 * float64(days)
	case CarRental:
		return 2000.0 * float64(days)
	}

	return 0
}

// Confirmation builds the message shown after a successful booking.
func (c Category) Confirmation(destination string, from, to civil.Date) string {
	var subject string

	switch c {
	case Hotel:
		subject = "Отель забронирован"
	case Flight:
		subject = "Авиабилет забронирован"
	case Tour:
		subject = "Тур забронирован"
	case Restaurant:
		subject = "Ресторан забронирован"
	case CarRental:
		subject = "Автомобиль арендован"
	default:
		return ""
	}

	return fmt.Sprintf("%s для направления: %s. С: %s. По: %s", subject, destination, FormatDate(from), FormatDate(to))
}

// ConfirmationTitle is the caption of the confirmation dialog.
func (c Category) ConfirmationTitle() string {
	switch c {
	case Hotel:
		return "Бронирование отеля"
	case Flight:
		return "Бронирование авиабилета"
	case Tour:
		return "Бронирование тура"
	case Restaurant:
		return "Бронирование ресторана"
	case CarRental:
		return "Аренда автомобиля"
	}

	return ""
}

// ParseCategory resolves a slug such as "car_rental".
func ParseCategory(slug string) (Category, error) {
	for _, c := range categories {
		if c.Slug() == slug {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown category %q", slug)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}

	return []byte(c.Slug()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
