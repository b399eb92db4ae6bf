package services

import (
	"fmt"
	"sync"
	"time"

	"inventario-api/models"
	"inventario-api/prometheus"

	"gorm.io/gorm"
)

// CountService deriva programaciones de conteo sintéticas a partir de los
// artículos, mientras no exista una tabla real de programaciones. Los
// registros se regeneran completos cuando la caché expira; no hay
// invalidación incremental.
type CountService struct {
	db       *gorm.DB
	ttl      time.Duration
	maxItems int

	mu    sync.Mutex
	cache *countCache
}

type countCache struct {
	generatedAt time.Time
	schedules   []models.CountSchedule
}

func NewCountService(db *gorm.DB, ttl time.Duration, maxItems int) *CountService {
	return &CountService{db: db, ttl: ttl, maxItems: maxItems}
}

// Schedules regresa el set generado, regenerándolo si la caché no existe
// o ya expiró. La regeneración es idempotente y sin efectos secundarios.
func (s *CountService) Schedules() ([]models.CountSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil && time.Since(s.cache.generatedAt) < s.ttl {
		return s.cache.schedules, nil
	}

	schedules, err := s.generate()
	if err != nil {
		return nil, err
	}
	s.cache = &countCache{generatedAt: time.Now(), schedules: schedules}
	if prometheus.CountCacheRefreshCounter != nil {
		prometheus.CountCacheRefreshCounter.Inc()
	}
	return schedules, nil
}

func (s *CountService) generate() ([]models.CountSchedule, error) {
	defer prometheus.TrackDBOperation("count_generation")(time.Now())

	var items []models.Item
	err := s.db.
		Preload("Brand").
		Preload("Department").
		Preload("SubCategory").
		Order("id asc").
		Limit(s.maxItems).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	statuses := []string{
		models.CountStatusScheduled,
		models.CountStatusCompleted,
		models.CountStatusCancelled,
	}

	schedules := make([]models.CountSchedule, 0, len(items))
	for i := range items {
		item := items[i]
		status := statuses[i%3]

		// Derivación determinista por índice; las fechas son offsets
		// de "ahora", no estables entre regeneraciones de la caché.
		scheduled := now.Add(-time.Duration(i) * 24 * time.Hour)
		created := now.Add(-time.Duration(i+1) * time.Hour)
		systemQty := 10 + (i*3)%90
		countedQty := systemQty + (i % 5) - 2

		location := models.StockLocation{
			ID:        uint(i + 1),
			ItemID:    item.ID,
			Zone:      fmt.Sprintf("Z%d", i%4+1),
			Aisle:     fmt.Sprintf("P%02d", i%10+1),
			Column:    fmt.Sprintf("C%d", i%6+1),
			Level:     fmt.Sprintf("N%d", i%3+1),
			Position:  fmt.Sprintf("%03d", i+1),
			StockQty:  systemQty,
			Active:    true,
			IsDefault: true,
		}

		var finished *time.Time
		var difference *int
		if status == models.CountStatusCompleted {
			f := now.Add(-time.Duration(i) * 30 * time.Minute)
			finished = &f
			d := countedQty - systemQty
			difference = &d
		}

		detail := models.CountDetail{
			ID:         uint(i + 1),
			ScheduleID: uint(i + 1),
			ItemID:     item.ID,
			LocationID: location.ID,
			SystemQty:  systemQty,
			CountedQty: countedQty,
			Difference: difference,
			CountedAt:  scheduled,
			Item:       &item,
			Location:   &location,
		}

		description := fmt.Sprintf("Conteo cíclico %s", item.Sku)
		schedules = append(schedules, models.CountSchedule{
			ID:            uint(i + 1),
			ScheduledDate: scheduled,
			Description:   &description,
			Status:        status,
			CreatedAt:     created,
			FinishedAt:    finished,
			Details:       []models.CountDetail{detail},
		})
	}

	return schedules, nil
}

// FilterByStatus filtra en memoria sobre el set generado completo.
func FilterByStatus(schedules []models.CountSchedule, status string) []models.CountSchedule {
	if status == "" {
		return schedules
	}
	filtered := make([]models.CountSchedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.Status == status {
			filtered = append(filtered, schedule)
		}
	}
	return filtered
}

// Paginate recorta el set filtrado; fuera de rango regresa slice vacío.
func Paginate(schedules []models.CountSchedule, skip, limit int) []models.CountSchedule {
	if skip >= len(schedules) {
		return []models.CountSchedule{}
	}
	end := skip + limit
	if end > len(schedules) {
		end = len(schedules)
	}
	return schedules[skip:end]
}
