package gamification

// LevelInfo is one row of the fixed level table.
type LevelInfo struct {
	Level      int
	Title      string
	XPRequired int
}

// Levels is the fixed level table, ascending by threshold. Level 1 has
// threshold 0, so every non-negative XP value maps to a level.
var Levels = []LevelInfo{
	{1, "Seedling", 0},
	{2, "Sprout", 250},
	{3, "Sapling", 600},
	{4, "Young Tree", 1000},
	{5, "Growing Tree", 1500},
	{6, "Sturdy Tree", 2100},
	{7, "Tall Tree", 2800},
	{8, "Leafy Tree", 3600},
	{9, "Branching Tree", 4500},
	{10, "Mighty Oak", 5000},
	{11, "Elder Oak", 5800},
	{12, "Wise Oak", 6800},
	{13, "Deep Roots", 8000},
	{14, "Forest Keeper", 9500},
	{15, "Ancient Grove", 12000},
	{16, "Grove Warden", 14500},
	{17, "Woodland Sage", 17500},
	{18, "Nature's Voice", 20500},
	{19, "Elder Spirit", 23000},
	{20, "Forest Guardian", 25000},
	{21, "Timeless Oak", 28000},
	{22, "Eternal Roots", 32000},
	{23, "Spirit Walker", 37000},
	{24, "Ancient Wisdom", 43000},
	{25, "Nature Spirit", 50000},
	{26, "Cosmic Seed", 60000},
	{27, "Stellar Grove", 72000},
	{28, "Celestial Oak", 85000},
	{29, "Infinite Focus", 92000},
	{30, "Focus Master", 100000},
}

// LevelForXP returns the highest level whose threshold is at or below xp.
func LevelForXP(xp int) LevelInfo {
	result := Levels[0]
	for _, info := range Levels {
		if xp >= info.XPRequired {
			result = info
		} else {
			break
		}
	}
	return result
}

// XPForNextLevel returns the smallest threshold strictly greater than xp,
// or the top threshold when xp is at or beyond the final level.
func XPForNextLevel(xp int) int {
	for _, info := range Levels {
		if info.XPRequired > xp {
			return info.XPRequired
		}
	}
	return Levels[len(Levels)-1].XPRequired
}
