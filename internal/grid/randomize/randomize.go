package randomize

import (
	"math/rand/v2"

	"grid-studio/internal/grid/catalog"
	"grid-studio/internal/grid/models"
)

// ============================================================
// Randomizer
// ============================================================

// Palette: цвета линий, из которых выбирает случайный подбор.
var Palette = []string{
	"#a855f7", "#ec4899", "#f97316", "#22c55e",
	"#14b8a6", "#0ea5e9", "#8b5cf6", "#ffffff",
}

// patternCount выбирает число паттернов: 1 (20%), 2 (40%), 3 (30%), 4 (10%).
func patternCount(rng *rand.Rand) int {
	switch r := rng.Float64(); {
	case r < 0.2:
		return 1
	case r < 0.6:
		return 2
	case r < 0.9:
		return 3
	}
	return 4
}

// Randomize подбирает паттерны и стиль активного слоя и отступы холста.
// Заблокированные поля и второй слой не меняются.
func Randomize(cfg models.GridConfig, layer int, rng *rand.Rand) (models.GridConfig, error) {
	out := cfg
	target, err := out.Layers.Layer(layer)
	if err != nil {
		return cfg, err
	}
	locks := cfg.Locks

	all := catalog.All()
	n := patternCount(rng)
	ids := make([]string, 0, n)
	for _, i := range rng.Perm(len(all))[:n] {
		ids = append(ids, all[i].ID)
	}
	target.SelectedGrids = ids

	if !locks.LineStyle {
		target.LineStyle = models.LineStyles[rng.IntN(len(models.LineStyles))]
	}
	if !locks.LineColor {
		target.LineColor = Palette[rng.IntN(len(Palette))]
	}
	if !locks.LineOpacity {
		target.LineOpacity = float64(rng.IntN(50) + 50)
	}
	if !locks.LineWeight {
		target.LineWeight = float64(rng.IntN(6)+1) * 0.5
	}

	if !locks.Margin {
		out.State.Margin = float64(rng.IntN(40) + 10)
	}
	if !locks.Padding {
		out.State.Padding = float64(rng.IntN(40) + 10)
	}
	if !locks.Gutter {
		out.State.Gutter = float64(rng.IntN(30) + 10)
	}
	return out, nil
}
