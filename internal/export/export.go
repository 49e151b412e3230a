package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	bookingModel "jaruri/internal/domains/booking/model"
	catalogModel "jaruri/internal/domains/catalog/model"
	userModel "jaruri/internal/domains/user/model"
)

const (
	BookingsFileName = "bookings.csv"
	UsersFileName    = "users.csv"
	ServicesFileName = "services.csv"

	dateLayout = "2006-01-02"
)

// Row layouts mirror the CSV data files the ops side already feeds into
// spreadsheets, so column order is part of the contract.

func BookingHeaders() []string {
	return []string{
		"id", "customer_id", "professional_id", "service_id", "location", "address",
		"scheduled_date", "scheduled_time", "notes", "status", "payment_method",
		"payment_status", "estimated_price", "final_price", "created_at", "modified_at",
	}
}

func BookingRow(booking bookingModel.Booking) []string {
	return []string{
		booking.ID,
		booking.CustomerID,
		deref(booking.ProfessionalID),
		booking.ServiceID,
		booking.Location,
		booking.Address,
		booking.ScheduledDate.Format(dateLayout),
		deref(booking.ScheduledTime),
		deref(booking.Notes),
		booking.Status.String(),
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.EstimatedPrice,
		deref(booking.FinalPrice),
		formatTime(booking.CreatedAt),
		formatTime(booking.ModifiedAt),
	}
}

func UserHeaders() []string {
	return []string{
		"id", "username", "email", "full_name", "phone", "role",
		"is_verified", "active", "last_login", "created_at",
	}
}

// UserRow never includes the password hash.
func UserRow(user userModel.User) []string {
	return []string{
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		deref(user.Phone),
		user.Role,
		formatBool(user.IsVerified),
		formatBool(user.Active),
		deref(user.LastLogin),
		formatTime(user.CreatedAt),
	}
}

func ServiceHeaders() []string {
	return []string{
		"id", "category_id", "name", "name_nepali", "description",
		"base_price", "unit", "estimated_duration_min", "active",
	}
}

func ServiceRow(service catalogModel.Service) []string {
	durationMin := ""
	if service.EstimatedDurationMin != nil {
		durationMin = strconv.Itoa(*service.EstimatedDurationMin)
	}

	return []string{
		service.ID,
		service.CategoryID,
		service.Name,
		deref(service.NameNepali),
		service.Description,
		service.BasePrice,
		service.Unit,
		durationMin,
		formatBool(service.Active),
	}
}

// WriteFile writes one CSV file under dir, creating dir when needed, and
// returns the full path of the written file.
func WriteFile(dir, name string, headers []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create export directory %s", dir)
	}

	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create export file %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(headers); err != nil {
		return "", errors.Wrapf(err, "failed to write headers to %s", path)
	}

	if err := writer.WriteAll(rows); err != nil {
		return "", errors.Wrapf(err, "failed to write rows to %s", path)
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return "", errors.Wrapf(err, "failed to flush %s", path)
	}

	return path, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func formatBool(value bool) string {
	if value {
		return "true"
	}

	return "false"
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
