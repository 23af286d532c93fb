package seed

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"sarb_ai/internal/domain/entities"
)

// Generator produces deterministic stand-in data for the pieces of the
// snapshot the provider does not expose (area stats, events) and for
// fallbacks when a provider collection comes back empty (users).
//
// Seeding the generator keeps a process's areas stable across requests and
// makes test fixtures exact.

type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFromEnv seeds from SEED_DATA_SEED when set, otherwise from the
// current time (fresh dummy data per boot, like the original service).
func NewGeneratorFromEnv() *Generator {
	if v := os.Getenv("SEED_DATA_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return NewGenerator(seed)
		}
	}
	return NewGenerator(time.Now().UnixNano())
}

var (
	areaNames = []string{"Riyadh Center", "Jeddah Corniche", "Dammam Waterfront", "Medina Central", "Mecca Central"}

	firstNames = []string{"Ahmed", "Mohammed", "Sara", "Fatima", "Ali", "Nora", "Khalid", "Layla", "Omar", "Aisha"}
	lastNames  = []string{"Al-Saud", "Al-Ghamdi", "Al-Qahtani", "Al-Otaibi", "Al-Sharif", "Al-Zahrani", "Al-Amri"}

	eventNames = map[string][]string{
		"Concert":    {"Mawazine Festival", "Jeddah Season", "Riyadh Season", "MDL Beast"},
		"Conference": {"LEAP", "FII", "Saudi AI Summit", "TechX"},
		"Sports":     {"Saudi Grand Prix", "Riyadh Marathon", "Football Match", "Golf Tournament"},
		"Exhibition": {"Saudi Food Show", "Auto Moto Show", "Tech Expo"},
		"Festival":   {"Tantora Festival", "Janadriyah", "Al-Ula Festival"},
	}
	eventTypes = []string{"Concert", "Conference", "Sports", "Exhibition", "Festival"}
)

// Areas returns one MapAreaStat per known area, counts already clamped.
func (g *Generator) Areas() []entities.MapAreaStat {
	areas := make([]entities.MapAreaStat, 0, len(areaNames))
	for i := range areaNames {
		carsCount := 5 + g.rng.Intn(26)
		bookedCount := g.rng.Intn(carsCount + 1)
		bestPrice := roundCents(80 + g.rng.Float64()*120)
		areas = append(areas, entities.NewMapAreaStat(i+1, carsCount, bookedCount, bestPrice))
	}
	return areas
}

// Users returns fallback users for when the provider yields none.
func (g *Generator) Users(count int) []entities.User {
	users := make([]entities.User, 0, count)
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("%s %s", firstNames[g.rng.Intn(len(firstNames))], lastNames[g.rng.Intn(len(lastNames))])
		users = append(users, entities.User{ID: i, Name: name})
	}
	return users
}

// Events returns upcoming marketplace events within the next 90 days.
func (g *Generator) Events(count int) []entities.Event {
	now := time.Now()
	events := make([]entities.Event, 0, count)
	for i := 1; i <= count; i++ {
		eventType := eventTypes[g.rng.Intn(len(eventTypes))]
		names := eventNames[eventType]
		events = append(events, entities.Event{
			ID:   i,
			Name: names[g.rng.Intn(len(names))],
			Date: now.AddDate(0, 0, 1+g.rng.Intn(90)).Format("2006-01-02"),
			Type: eventType,
		})
	}
	return events
}

func roundCents(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
