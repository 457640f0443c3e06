package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"comfort/config"
	"comfort/infras/otel"
	"comfort/infras/postgres"
	bookingModel "comfort/internal/domains/booking/model"
	bookingRepository "comfort/internal/domains/booking/repository"
	userModel "comfort/internal/domains/user/model"
	userRepository "comfort/internal/domains/user/repository"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/logger"
	gModel "comfort/shared/model"
	"comfort/shared/password"
	"comfort/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const demoBookingCount = 25

type room struct {
	name          string
	roomType      string
	pricePerNight float64
}

var rooms = []room{
	{"Deluxe Suite", "suite", 250},
	{"Executive Room", "executive", 180},
	{"Standard Room", "standard", 120},
	{"Family Suite", "family", 300},
	{"Presidential Suite", "presidential", 500},
	{"Ocean View Room", "ocean-view", 220},
	{"Garden View Room", "garden-view", 150},
}

var guestNames = []string{
	"John Smith", "Emma Johnson", "Michael Brown", "Sarah Davis", "David Wilson",
	"Lisa Martinez", "Robert Anderson", "Jennifer Taylor", "William Thomas", "Mary Jackson",
	"James White", "Patricia Harris", "Christopher Martin", "Linda Thompson", "Daniel Garcia",
	"Barbara Rodriguez", "Matthew Lee", "Elizabeth Walker", "Joseph Hall", "Susan Allen",
	"Charles Young", "Jessica King", "Thomas Wright", "Nancy Lopez", "Christopher Hill",
}

var specialRequests = []string{
	"Late check-in requested",
	"Extra pillows needed",
	"High floor preference",
	"Quiet room please",
	"Anniversary celebration - surprise flowers",
	"Honeymoon suite decoration",
	"Business trip - need workspace",
	"Early check-in if possible",
	"Near elevator",
	"Away from elevator",
	"Hypoallergenic bedding",
	"Extra towels",
	"Baby crib needed",
	"Pet-friendly room",
	"",
	"",
	"",
}

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	otl := otel.New(cfg)

	ctx := context.Background()

	target := "all"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	switch target {
	case "users":
		seedUsers(ctx, cfg, db, otl)
	case "bookings":
		seedBookings(ctx, db, otl)
	case "all":
		seedUsers(ctx, cfg, db, otl)
		seedBookings(ctx, db, otl)
	default:
		log.Fatal().Str("target", target).Msg("Unknown seed target. Use 'users', 'bookings' or 'all'")
	}
}

// seedUsers creates the two staff accounts. Runs once: an already populated
// users table is left alone.
func seedUsers(ctx context.Context, cfg *config.Config, db *postgres.Connection, otl otel.Otel) {
	repo := userRepository.New(db, otl)

	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count users")
	}

	if count > 0 {
		log.Warn().Int("count", count).Msg("Users already exist, skipping initialization")

		return
	}

	accounts := []struct {
		username string
		pass     string
		role     string
		email    string
		fullName string
	}{
		{cfg.Admin.Username, cfg.Admin.Password, constant.RoleAdmin, "admin@comforthotel.com", "Administrator"},
		{"manager", "manager123", constant.RoleManager, "manager@comforthotel.com", "Hotel Manager"},
	}

	for _, account := range accounts {
		hash, err := password.Hash(account.pass)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}

		user := userModel.User{
			ID:       uuid.NewString(),
			Username: account.username,
			Password: hash,
			Role:     account.role,
			Email:    account.email,
			FullName: account.fullName,
			Metadata: gModel.Metadata{
				CreatedAt: timezone.Now(),
				CreatedBy: "seed",
				UpdatedAt: timezone.Now(),
				UpdatedBy: "seed",
			},
		}

		if err := repo.Insert(ctx, user); err != nil {
			log.Fatal().Err(err).Str("username", account.username).Msg("Failed to create user")
		}

		log.Info().Str("username", account.username).Str("role", account.role).Msg("User created")
	}
}

// seedBookings loads the demo booking set. Skipped once the table already
// holds a realistic amount of data.
func seedBookings(ctx context.Context, db *postgres.Connection, otl otel.Otel) {
	repo := bookingRepository.New(db, otl)

	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count bookings")
	}

	if count >= 20 {
		log.Warn().Int("count", count).Msg("Bookings already seeded, skipping")

		return
	}

	bookings := make([]bookingModel.Booking, demoBookingCount)
	for i := range bookings {
		bookings[i] = generateBooking(i)
	}

	if err := repo.InsertBulk(ctx, bookings); err != nil {
		log.Fatal().Err(err).Msg("Failed to insert demo bookings")
	}

	statusCounts := map[string]int{}
	for _, booking := range bookings {
		statusCounts[booking.Status]++
	}

	log.Info().
		Int("total", len(bookings)).
		Interface("by_status", statusCounts).
		Msg("Demo bookings created")
}

func generateBooking(index int) bookingModel.Booking {
	picked := rooms[rand.Intn(len(rooms))]
	guestName := guestNames[index%len(guestNames)]

	emailName := strings.ToLower(strings.ReplaceAll(guestName, " ", "."))

	today := timezone.Today()
	checkIn := today.AddDate(0, 0, rand.Intn(91)-30)
	nights := rand.Intn(7) + 1
	checkOut := checkIn.AddDate(0, 0, nights)

	status := constant.BookingStatusConfirmed

	switch {
	case checkIn.Before(today) && rand.Float64() > 0.3:
		status = constant.BookingStatusCompleted
	case checkIn.Before(today):
		status = constant.BookingStatusCheckedIn
	case rand.Float64() <= 0.2:
		status = constant.BookingStatusPending
	}

	createdAt := checkIn.Add(-time.Duration(rand.Intn(14*24)) * time.Hour)

	return bookingModel.Booking{
		ID:              uuid.NewString(),
		RoomName:        picked.name,
		RoomType:        picked.roomType,
		GuestName:       guestName,
		GuestEmail:      emailName + "@example.com",
		GuestPhone:      fmt.Sprintf("+1-555-%03d-%04d", rand.Intn(900)+100, rand.Intn(9000)+1000),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Duration:        nights,
		NumberOfGuests:  rand.Intn(4) + 1,
		TotalPrice:      picked.pricePerNight * float64(nights),
		SpecialRequests: specialRequests[rand.Intn(len(specialRequests))],
		Status:          status,
		Metadata: gModel.Metadata{
			CreatedAt: createdAt,
			CreatedBy: "seed",
			UpdatedAt: createdAt,
			UpdatedBy: "seed",
		},
	}
}
