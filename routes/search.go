package routes

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"
	"github.com/Hima-Kishore/turf-booking-system/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// SearchTurfs filters turfs by location and their courts by sport/price, and
// reports how many slots remain free per court for the optional date. Turfs
// whose courts all fall out of the filters are dropped.
func SearchTurfs(ctx iris.Context) {
	q := storage.DB.Model(&models.Turf{})

	if city := strings.TrimSpace(ctx.URLParam("city")); city != "" {
		q = q.Where("city ILIKE ?", "%"+city+"%")
	}
	if state := strings.TrimSpace(ctx.URLParam("state")); state != "" {
		q = q.Where("state ILIKE ?", "%"+state+"%")
	}

	sportType := strings.TrimSpace(ctx.URLParam("sportType"))
	minPrice, minPriceErr := ctx.URLParamFloat64("minPrice")
	maxPrice, maxPriceErr := ctx.URLParamFloat64("maxPrice")

	courtFilter := func(db *gorm.DB) *gorm.DB {
		if sportType != "" {
			db = db.Where("sport_type = ?", sportType)
		}
		if minPriceErr == nil && minPrice > 0 {
			db = db.Where("price_per_hour >= ?", minPrice)
		}
		if maxPriceErr == nil && maxPrice > 0 {
			db = db.Where("price_per_hour <= ?", maxPrice)
		}
		return db
	}

	var date *time.Time
	if dateStr := strings.TrimSpace(ctx.URLParam("date")); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
		if err != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "date must be YYYY-MM-DD", ctx)
			return
		}
		date = &parsed
	}

	var turfs []models.Turf
	if err := q.Preload("Courts", courtFilter).
		Order("name ASC").
		Find(&turfs).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	results := make([]iris.Map, 0, len(turfs))
	for _, turf := range turfs {
		if len(turf.Courts) == 0 {
			continue
		}

		courts := make([]iris.Map, 0, len(turf.Courts))
		for _, court := range turf.Courts {
			slotQuery := storage.DB.Model(&models.Slot{}).
				Where("court_id = ? AND is_booked = ?", court.ID, false)
			if date != nil {
				slotQuery = slotQuery.Where("date = ?", *date)
			}
			var availableSlots int64
			slotQuery.Count(&availableSlots)

			courts = append(courts, iris.Map{
				"id":                  court.ID,
				"name":                court.Name,
				"sportType":           court.SportType,
				"pricePerHour":        court.PricePerHour,
				"availableSlotsCount": availableSlots,
			})
		}

		results = append(results, iris.Map{
			"id":          turf.ID,
			"name":        turf.Name,
			"address":     turf.Address,
			"city":        turf.City,
			"state":       turf.State,
			"description": turf.Description,
			"courts":      courts,
		})
	}

	utils.JSONSuccessMessage(ctx, results, fmt.Sprintf("Found %d turfs", len(results)))
}

// GetCities lists the distinct city/state pairs with at least one turf.
func GetCities(ctx iris.Context) {
	var cities []struct {
		City  string `json:"city"`
		State string `json:"state"`
	}
	if err := storage.DB.Model(&models.Turf{}).
		Distinct("city", "state").
		Order("city ASC").
		Scan(&cities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONSuccess(ctx, cities)
}
