package game

// levelSpec pins down the roster for one level: where hearts spawn, where
// enemies start, and how many hearts clear the level.
type levelSpec struct {
	hearts  []Heart
	enemies []Enemy
	needed  int
}

var levelSpecs = []levelSpec{
	{
		hearts: []Heart{
			{HomeX: 40, HomeY: 80, Caption: "Mahal Kita", CaptionY: 20},
			{HomeX: 60, HomeY: 90, Alt: true, Caption: "Mama", CaptionY: 40},
		},
		enemies: []Enemy{
			{Kind: Pumpkin, X: 10, Y: 10, Speed: 1, Active: true},
		},
		needed: 2,
	},
	{
		hearts: []Heart{
			{HomeX: 40, HomeY: 80, Caption: "Mahal Kita", CaptionY: 20},
			{HomeX: 60, HomeY: 90, Alt: true, Caption: "Mama", CaptionY: 40},
			{HomeX: 80, HomeY: 70, Caption: "Heart 3!", CaptionY: 60},
			{HomeX: 30, HomeY: 100, Caption: "Heart 4!", CaptionY: 80},
		},
		enemies: []Enemy{
			{Kind: Pumpkin, X: 10, Y: 10, Speed: 1, Active: true},
			{Kind: Pumpkin, X: 100, Y: 10, Speed: 1, Active: true},
			{Kind: Pumpkin, X: 60, Y: 140, Speed: 1, Active: true},
			{Kind: Boss, X: 64, Y: 80, Speed: 2, Active: true},
		},
		needed: 4,
	},
}

// specFor returns the roster for a 1-based level, clamping past the end.
func specFor(level int) levelSpec {
	if level < 1 {
		level = 1
	}
	if level > len(levelSpecs) {
		level = len(levelSpecs)
	}
	return levelSpecs[level-1]
}

// buildHearts copies the level's heart roster at their spawn points.
func buildHearts(level int) []*Heart {
	spec := specFor(level)
	hearts := make([]*Heart, len(spec.hearts))
	for i := range spec.hearts {
		h := spec.hearts[i]
		h.Reset()
		hearts[i] = &h
	}
	return hearts
}

// buildEnemies copies the level's enemy roster at their start positions.
func buildEnemies(level int) []*Enemy {
	spec := specFor(level)
	enemies := make([]*Enemy, len(spec.enemies))
	for i := range spec.enemies {
		e := spec.enemies[i]
		e.PrevX, e.PrevY = e.X, e.Y
		enemies[i] = &e
	}
	return enemies
}

// requiredHearts returns how many hearts clear the level.
func requiredHearts(level int) int {
	return specFor(level).needed
}
