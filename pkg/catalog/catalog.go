// Package catalog holds the daily mission catalog. The catalog is static
// external config: it is loaded once from a JSON file (or the built-in
// defaults) and never mutated by the engine.
package catalog

import (
	"errors"
	"os"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/mindagrow/progression/pkg/entity"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func initValidator() {
	validateOnce.Do(func() {
		validate = validator.New()
	})
}

type Catalog struct {
	missions []entity.Mission
	byType   map[string][]entity.Mission
}

// Load reads and validates a mission catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading catalog file error: " + err.Error())
	}
	var missions []entity.Mission
	if err := sonic.Unmarshal(data, &missions); err != nil {
		return nil, errors.New("parsing catalog file error: " + err.Error())
	}
	return New(missions)
}

// New builds a catalog from an already-decoded mission list.
func New(missions []entity.Mission) (*Catalog, error) {
	initValidator()
	if len(missions) == 0 {
		return nil, errors.New("catalog has no missions")
	}
	seen := make(map[int]bool, len(missions))
	byType := make(map[string][]entity.Mission)
	for _, m := range missions {
		if err := validate.Struct(m); err != nil {
			return nil, errors.New("invalid mission in catalog: " + err.Error())
		}
		if seen[m.ID] {
			return nil, errors.New("duplicate mission id in catalog")
		}
		seen[m.ID] = true
		byType[m.Type] = append(byType[m.Type], m)
	}
	return &Catalog{
		missions: missions,
		byType:   byType,
	}, nil
}

// Default returns the stock catalog shipped with the engine.
func Default() *Catalog {
	c, err := New([]entity.Mission{
		{ID: 1, Type: "complete_quizzes", Title: "Complete 3 quizzes", Description: "Finish 3 quizzes today", TargetCount: 3, XPReward: 50, Icon: "🧠", IsActive: true},
		{ID: 2, Type: "watch_videos", Title: "Watch 5 tutorial videos", Description: "Watch 5 lesson videos", TargetCount: 5, XPReward: 30, Icon: "📺", IsActive: true},
		{ID: 3, Type: "solve_problems", Title: "Solve 10 practice problems", Description: "Solve 10 practice problems", TargetCount: 10, XPReward: 100, Icon: "🧮", IsActive: true},
		{ID: 4, Type: "play_game", Title: "Play any game", Description: "Play any game today", TargetCount: 1, XPReward: 25, Icon: "🎮", IsActive: true},
	})
	if err != nil {
		// Stock data is compile-time constant, this cannot fail at runtime.
		panic("default catalog invalid: " + err.Error())
	}
	return c
}

// Active returns every active mission, in catalog order.
func (c *Catalog) Active() []entity.Mission {
	result := make([]entity.Mission, 0, len(c.missions))
	for _, m := range c.missions {
		if m.IsActive {
			result = append(result, m)
		}
	}
	return result
}

// ActiveByType returns the active missions matching a mission type.
func (c *Catalog) ActiveByType(missionType string) []entity.Mission {
	result := make([]entity.Mission, 0, 1)
	for _, m := range c.byType[missionType] {
		if m.IsActive {
			result = append(result, m)
		}
	}
	return result
}

// ByID looks up a mission by its catalog id.
func (c *Catalog) ByID(id int) (entity.Mission, bool) {
	for _, m := range c.missions {
		if m.ID == id {
			return m, true
		}
	}
	return entity.Mission{}, false
}
