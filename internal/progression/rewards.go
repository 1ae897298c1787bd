package progression

import (
	"regexp"
	"strconv"

	"questacademy/internal/models"
)

// Reward display strings follow a small grammar: "+<n> XP" grants XP,
// "<n> xu" lists coins and `huy hiệu "<text>"` names a badge. Coins and
// badges are display-only. Quest content and the AI gateway produce
// structured models.Reward values directly; this parser exists for free-text
// reward strings.
var (
	xpPattern    = regexp.MustCompile(`\+(\d+)\s*XP`)
	coinPattern  = regexp.MustCompile(`(\d+)\s*xu`)
	badgePattern = regexp.MustCompile(`huy hiệu\s*"([^"]+)"`)
)

// ParseRewardText extracts a structured reward from a display string.
// Missing parts are simply zero; a string with no XP grants nothing.
func ParseRewardText(text string) models.Reward {
	var reward models.Reward

	if m := xpPattern.FindStringSubmatch(text); m != nil {
		if xp, err := strconv.Atoi(m[1]); err == nil {
			reward.XP = xp
		}
	}
	if m := coinPattern.FindStringSubmatch(text); m != nil {
		if coins, err := strconv.Atoi(m[1]); err == nil {
			reward.Coins = coins
		}
	}
	if m := badgePattern.FindStringSubmatch(text); m != nil {
		reward.Badge = m[1]
	}

	return reward
}
