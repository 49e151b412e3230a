package main

import (
	"context"
	"os"

	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/infras/postgres"
	catalogModel "jaruri/internal/domains/catalog/model"
	catalogRepository "jaruri/internal/domains/catalog/repository"
	locationModel "jaruri/internal/domains/location/model"
	locationRepository "jaruri/internal/domains/location/repository"
	professionalDto "jaruri/internal/domains/professional/model/dto"
	professionalRepository "jaruri/internal/domains/professional/repository"
	userModel "jaruri/internal/domains/user/model"
	userDto "jaruri/internal/domains/user/model/dto"
	userRepository "jaruri/internal/domains/user/repository"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	"jaruri/shared/logger"
	gModel "jaruri/shared/model"
	"jaruri/shared/password"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type categorySeed struct {
	name        string
	nameNepali  string
	description string
	icon        string
	color       string
	service     serviceSeed
}

type serviceSeed struct {
	name        string
	nameNepali  string
	description string
	basePrice   string
	unit        string
	durationMin int
}

// Reference catalog and location data for a fresh environment. Every insert is
// guarded by a lookup so re-running the seeder is safe.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	otl := otel.New(cfg)

	categoryRepo := catalogRepository.NewCategory(db, otl)
	serviceRepo := catalogRepository.NewService(db, otl)
	locationRepo := locationRepository.New(db, otl)
	userRepo := userRepository.New(db, otl)
	professionalRepo := professionalRepository.New(db, otl)

	ctx := context.Background()

	seedCatalog(ctx, categoryRepo, serviceRepo)
	seedLocations(ctx, locationRepo)

	adminID := seedAdmin(ctx, userRepo)
	seedDemoProfessional(ctx, userRepo, professionalRepo, adminID)

	log.Info().Msg("seeding finished")
}

func catalogSeeds() []categorySeed {
	return []categorySeed{
		{
			name: "Electrician", nameNepali: "बिजुली मिस्त्री", description: "Electrical repairs and installations", icon: "fas fa-bolt", color: "yellow",
			service: serviceSeed{name: "Electrical Repairs", nameNepali: "बिजुली मर्मत", description: "Fix electrical issues and installations", basePrice: "500.00", unit: catalogModel.UnitHour, durationMin: 60},
		},
		{
			name: "Plumber", nameNepali: "प्लम्बर", description: "Pipe and fixture repairs", icon: "fas fa-wrench", color: "blue",
			service: serviceSeed{name: "Pipe Repair", nameNepali: "पाइप मर्मत", description: "Fix leaky pipes and faucets", basePrice: "400.00", unit: catalogModel.UnitHour, durationMin: 45},
		},
		{
			name: "House Cleaning", nameNepali: "घर सफाई", description: "Deep and regular cleaning", icon: "fas fa-broom", color: "green",
			service: serviceSeed{name: "Deep Cleaning", nameNepali: "गहिरो सफाई", description: "Thorough house cleaning service", basePrice: "800.00", unit: catalogModel.UnitFixed, durationMin: 180},
		},
		{
			name: "AC Repair", nameNepali: "ए.सी. मर्मत", description: "AC service and installation", icon: "fas fa-snowflake", color: "cyan",
			service: serviceSeed{name: "AC Service", nameNepali: "ए.सी. सेवा", description: "AC cleaning and maintenance", basePrice: "1200.00", unit: catalogModel.UnitFixed, durationMin: 90},
		},
		{
			name: "Carpenter", nameNepali: "सुतारी", description: "Furniture and wood work", icon: "fas fa-hammer", color: "amber",
			service: serviceSeed{name: "Furniture Assembly", nameNepali: "फर्निचर जोड्ने", description: "Assemble furniture and cabinets", basePrice: "600.00", unit: catalogModel.UnitHour, durationMin: 120},
		},
		{
			name: "Painting", nameNepali: "रंगाई", description: "Interior and exterior painting", icon: "fas fa-paint-roller", color: "purple",
			service: serviceSeed{name: "Wall Painting", nameNepali: "भित्ता रंगाई", description: "Interior wall painting service", basePrice: "300.00", unit: catalogModel.UnitSqFt, durationMin: 240},
		},
		{
			name: "Appliance Repair", nameNepali: "उपकरण मर्मत", description: "TV, washing machine repairs", icon: "fas fa-tools", color: "red",
			service: serviceSeed{name: "TV Repair", nameNepali: "टि.भी. मर्मत", description: "Television repair and setup", basePrice: "700.00", unit: catalogModel.UnitFixed, durationMin: 75},
		},
		{
			name: "Pest Control", nameNepali: "कीरा नियन्त्रण", description: "Safe and effective pest control", icon: "fas fa-bug", color: "teal",
			service: serviceSeed{name: "Home Pest Control", nameNepali: "घर कीरा नियन्त्रण", description: "Safe pest control for homes", basePrice: "1000.00", unit: catalogModel.UnitFixed, durationMin: 120},
		},
	}
}

func seedCatalog(ctx context.Context, categoryRepo catalogRepository.Category, serviceRepo catalogRepository.Service) {
	for _, seed := range catalogSeeds() {
		exists, err := categoryRepo.Exist(ctx, eqFilter(catalogModel.FieldCategoryName, seed.name, catalogModel.CategoryTableName))
		if err != nil {
			log.Fatal().Err(err).Str("category", seed.name).Msg("failed to check category")
		}

		if exists {
			log.Info().Str("category", seed.name).Msg("category already seeded, skipping")

			continue
		}

		description := seed.description
		category := catalogModel.ServiceCategory{
			ID:          uuid.NewString(),
			Name:        seed.name,
			NameNepali:  seed.nameNepali,
			Description: &description,
			Icon:        seed.icon,
			Color:       seed.color,
			Active:      true,
			Metadata:    seedMetadata(),
		}

		if err := categoryRepo.Insert(ctx, category); err != nil {
			log.Fatal().Err(err).Str("category", seed.name).Msg("failed to seed category")
		}

		nameNepali := seed.service.nameNepali
		durationMin := seed.service.durationMin

		service := catalogModel.Service{
			ID:                   uuid.NewString(),
			CategoryID:           category.ID,
			Name:                 seed.service.name,
			NameNepali:           &nameNepali,
			Description:          seed.service.description,
			BasePrice:            seed.service.basePrice,
			Unit:                 seed.service.unit,
			EstimatedDurationMin: &durationMin,
			Active:               true,
			Metadata:             seedMetadata(),
		}

		if err := serviceRepo.Insert(ctx, service); err != nil {
			log.Fatal().Err(err).Str("service", service.Name).Msg("failed to seed service")
		}

		log.Info().Str("category", category.Name).Str("service", service.Name).Msg("seeded catalog entry")
	}
}

func seedLocations(ctx context.Context, locationRepo locationRepository.Location) {
	locations := []locationModel.Location{
		{Name: "Kathmandu", NameNepali: "काठमाडौं"},
		{Name: "Pokhara", NameNepali: "पोखरा"},
		{Name: "Chitwan", NameNepali: "चितवन"},
		{Name: "Lalitpur", NameNepali: "ललितपुर"},
		{Name: "Bhaktapur", NameNepali: "भक्तपुर"},
	}

	for _, location := range locations {
		exists, err := locationRepo.Exist(ctx, eqFilter(locationModel.FieldName, location.Name, locationModel.TableName))
		if err != nil {
			log.Fatal().Err(err).Str("location", location.Name).Msg("failed to check location")
		}

		if exists {
			log.Info().Str("location", location.Name).Msg("location already seeded, skipping")

			continue
		}

		location.ID = uuid.NewString()
		location.Type = locationModel.TypeCity
		location.Serviceable = true
		location.Metadata = seedMetadata()

		if err := locationRepo.Insert(ctx, location); err != nil {
			log.Fatal().Err(err).Str("location", location.Name).Msg("failed to seed location")
		}

		log.Info().Str("location", location.Name).Msg("seeded location")
	}
}

func seedAdmin(ctx context.Context, userRepo userRepository.User) string {
	adminEmail := "admin@jaruri.app"

	admin, err := userRepo.Get(ctx, eqFilter(userModel.FieldEmail, adminEmail, userModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check admin user")
	}

	if admin.ID != constant.Empty {
		log.Info().Msg("admin already seeded, skipping")

		return admin.ID
	}

	rawPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if rawPassword == constant.Empty {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD is required to seed the admin user")
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	req := userDto.CreateUserRequest{
		Username: "admin",
		Email:    adminEmail,
		FullName: "Jaruri Operations",
		Role:     constant.RoleAdmin,
	}

	user := req.ToModel(constant.SystemActor, hashed)
	user.IsVerified = true

	if err := userRepo.Insert(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	log.Info().Str("email", adminEmail).Msg("seeded admin user")

	return user.ID
}

func seedDemoProfessional(ctx context.Context, userRepo userRepository.User, professionalRepo professionalRepository.Professional, actor string) {
	demoEmail := "hari.electrician@jaruri.app"

	existing, err := userRepo.Get(ctx, eqFilter(userModel.FieldEmail, demoEmail, userModel.TableName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check demo professional")
	}

	if existing.ID != constant.Empty {
		log.Info().Msg("demo professional already seeded, skipping")

		return
	}

	hashed, err := password.Hash(uuid.NewString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash demo professional password")
	}

	req := userDto.CreateUserRequest{
		Username: "hari_electrician",
		Email:    demoEmail,
		FullName: "Hari Tamang",
		Role:     constant.RoleProfessional,
	}

	user := req.ToModel(actor, hashed)
	user.IsVerified = true

	if err := userRepo.Insert(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo professional user")
	}

	experience := 8
	bio := "Licensed electrician serving the Kathmandu valley."
	hourlyRate := "500.00"

	profileReq := professionalDto.CreateProfessionalRequest{
		UserID:          user.ID,
		Bio:             &bio,
		ExperienceYears: &experience,
		Skills:          []string{"Electrical Repairs"},
		ServiceAreas:    []string{"Kathmandu", "Lalitpur", "Bhaktapur"},
		HourlyRate:      &hourlyRate,
	}

	profile := profileReq.ToModel(actor)
	profile.IsVerified = true

	if err := professionalRepo.Insert(ctx, profile); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo professional profile")
	}

	log.Info().Str("email", demoEmail).Msg("seeded demo professional")
}

func seedMetadata() gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  constant.SystemActor,
		ModifiedBy: constant.SystemActor,
	}
}

func eqFilter(field, value, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}
