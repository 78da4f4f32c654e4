// Package presenter renders session data as the short Russian text lines shown
// to the user: the running total, the bookings table and the price list.
package presenter

import (
	"fmt"
	"strconv"

	"github.com/srgjo27/trip_planner/internal/core/domain"
)

const MissingSelectionMessage = "Пожалуйста, выберите категорию."

func Money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// Total renders the running total with two decimals.
func Total(amount float64) string {
	return fmt.Sprintf("Общая стоимость: %s руб.", Money(amount))
}

func BookingLine(b domain.Booking) string {
	return fmt.Sprintf("%s: %s с %s по %s", b.Label, b.Destination, domain.FormatDate(b.From), domain.FormatDate(b.To))
}

func BookingTable(bookings []domain.Booking) []string {
	lines := make([]string, 0, len(bookings))
	for _, b := range bookings {
		lines = append(lines, BookingLine(b))
	}

	return lines
}

// PriceLine prints the per-day price without trailing zeros, e.g. "Ресторан: 1800 руб. в день".
func PriceLine(p domain.PriceEntry) string {
	return fmt.Sprintf("%s: %s руб. в день", p.Label, strconv.FormatFloat(p.CostPerDay, 'f', -1, 64))
}

func PriceTable(entries []domain.PriceEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, p := range entries {
		lines = append(lines, PriceLine(p))
	}

	return lines
}
