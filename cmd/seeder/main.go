// Seeder generates synthetic inventory: hotels with room types, rate plans,
// and a rolling window of prices (weekend +20%) and availability.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayoffers/internal/adapters/observability"
	"stayoffers/internal/domain"
	"stayoffers/internal/shared"
	mysqlrepo "stayoffers/internal/storage/mysql"
)

var (
	cities    = []string{"Tashkent", "Samarkand", "Bukhara", "Khiva", "Nukus"}
	roomNames = []string{"Standard", "Deluxe", "Suite", "Presidential"}
	titles    = []string{"Best Price", "Flexible", "Non-refundable"}
	meals     = []string{"BB", "HB", "FB", "AI"}
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("hotels", cfg.SeedHotels).
		Int("days", cfg.SeedDays).
		Int("workers", cfg.Workers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for i := 0; i < cfg.SeedHotels; i++ {
		hotel := domain.Hotel{
			Name:     fmt.Sprintf("%s Hotel %d", cities[rng.Intn(len(cities))], i+1),
			Stars:    3 + rng.Intn(3),
			City:     cities[rng.Intn(len(cities))],
			Features: []string{"WiFi", "Pool", "Spa", "Restaurant", "Parking"},
		}
		seed := rng.Int63()

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(h domain.Hotel, seed int64) {
			defer wg.Done()
			defer sem.Release(1)
			if err := seedHotel(ctx, repo, h, rand.New(rand.NewSource(seed)), cfg.SeedDays); err != nil {
				log.Warn().Err(err).Str("hotel", h.Name).Msg("seed failed")
				return
			}
			log.Info().Str("hotel", h.Name).Msg("seed ok")
		}(hotel, seed)
	}

	wg.Wait()
	log.Info().Dur("took", time.Since(start)).Msg("seeding completed")
}

func seedHotel(ctx context.Context, repo *mysqlrepo.Repo, h domain.Hotel, rng *rand.Rand, days int) error {
	hotelID, err := repo.UpsertHotel(ctx, h)
	if err != nil {
		return err
	}

	startDate := time.Now()
	for r := 0; r < 2+rng.Intn(3); r++ {
		roomTypeID, err := repo.UpsertRoomType(ctx, domain.RoomType{
			HotelID:  hotelID,
			Name:     roomNames[rng.Intn(len(roomNames))],
			Capacity: 1 + rng.Intn(4),
			Beds:     []string{"Double", "Single"},
			Features: []string{"TV", "Minibar", "Safe", "Balcony"},
		})
		if err != nil {
			return err
		}

		for p := 0; p < 1+rng.Intn(3); p++ {
			rateID, err := repo.UpsertRatePlan(ctx, domain.RatePlan{
				HotelID:          hotelID,
				RoomTypeID:       roomTypeID,
				Title:            titles[rng.Intn(len(titles))],
				Meal:             meals[rng.Intn(len(meals))],
				Refundable:       rng.Intn(2) == 0,
				CancelBeforeDays: 1 + rng.Intn(7),
			})
			if err != nil {
				return err
			}

			base := 50000 + rng.Intn(450001) // minor units
			for d := 0; d < days; d++ {
				day := startDate.AddDate(0, 0, d)
				amount := base
				if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
					amount = base * 12 / 10
				}
				err := repo.UpsertPrice(ctx, domain.Price{
					RateID:   rateID,
					Date:     day.Format(time.DateOnly),
					Amount:   amount,
					Currency: "UZS",
				})
				if err != nil {
					return err
				}
			}
		}

		for d := 0; d < days; d++ {
			day := startDate.AddDate(0, 0, d)
			err := repo.UpsertAvailability(ctx, domain.Availability{
				RoomTypeID: roomTypeID,
				Date:       day.Format(time.DateOnly),
				Available:  rng.Intn(11),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
