package aging

// Daily rule amounts
const (
	NormalDecay        = 1
	NormalExpiredDecay = 2
	AgedBrieGain       = 1

	BackstageFarGain     = 1
	BackstageNearGain    = 2
	BackstageFinalGain   = 3
	BackstageNearWindow  = 10
	BackstageFinalWindow = 5
)

// Battle cries logged when a legendary item is visited
const (
	BattleCryInsects = "DIE, INSECTS"
	BattleCryFire    = "BY FIRE BE PURGED!"
)

// Log messages
const (
	LogMsgLegendaryBattleCry = "Legendary item refuses to age"
)
