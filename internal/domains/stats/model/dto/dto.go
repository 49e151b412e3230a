package dto

// StatsResponse carries the marketing counters shown on the landing page.
type StatsResponse struct {
	VerifiedProfessionals int    `json:"verified_professionals"`
	CompletedBookings     int    `json:"completed_bookings"`
	AverageRating         string `json:"average_rating"`
	ServiceableLocations  int    `json:"serviceable_locations"`
}
