package main

import (
	"context"

	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/infras/postgres"
	bookingRepository "jaruri/internal/domains/booking/repository"
	catalogRepository "jaruri/internal/domains/catalog/repository"
	userRepository "jaruri/internal/domains/user/repository"
	"jaruri/internal/export"
	gDto "jaruri/shared/dto"
	"jaruri/shared/logger"

	"github.com/rs/zerolog/log"
)

// One-shot dump of the operational tables to CSV so the ops side can pull them
// into spreadsheets without touching the database.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	directory := cfg.Export.Directory
	if directory == "" {
		directory = "exports"
	}

	db := postgres.New(cfg)
	otl := otel.New(cfg)

	bookingRepo := bookingRepository.New(db, otl)
	userRepo := userRepository.New(db, otl)
	serviceRepo := catalogRepository.NewService(db, otl)

	ctx := context.Background()

	bookings, err := bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load bookings")
	}

	bookingRows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		bookingRows = append(bookingRows, export.BookingRow(booking))
	}

	path, err := export.WriteFile(directory, export.BookingsFileName, export.BookingHeaders(), bookingRows)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to export bookings")
	}

	log.Info().Str("file", path).Int("rows", len(bookingRows)).Msg("exported bookings")

	users, err := userRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load users")
	}

	userRows := make([][]string, 0, len(users))
	for _, user := range users {
		userRows = append(userRows, export.UserRow(user))
	}

	path, err = export.WriteFile(directory, export.UsersFileName, export.UserHeaders(), userRows)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to export users")
	}

	log.Info().Str("file", path).Int("rows", len(userRows)).Msg("exported users")

	services, err := serviceRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load services")
	}

	serviceRows := make([][]string, 0, len(services))
	for _, service := range services {
		serviceRows = append(serviceRows, export.ServiceRow(service))
	}

	path, err = export.WriteFile(directory, export.ServicesFileName, export.ServiceHeaders(), serviceRows)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to export services")
	}

	log.Info().Str("file", path).Int("rows", len(serviceRows)).Msg("exported services")
}
