package cache

import (
	"time"
)

// sessionOpenHour はB3の取引開始時刻（サンパウロ時間）です。
const sessionOpenHour = 10

var saoPaulo = loadSaoPaulo()

func loadSaoPaulo() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// tzdata がない環境では夏時間なしの UTC-3 で代用する
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// TimeUntilNextSession は now から次のB3取引開始（平日10時、サンパウロ時間）までの期間を返します。
// 取引開始後は翌営業日の開始時刻になります。
func TimeUntilNextSession(now time.Time) time.Duration {
	local := now.In(saoPaulo)

	next := time.Date(local.Year(), local.Month(), local.Day(), sessionOpenHour, 0, 0, 0, saoPaulo)
	if !local.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}
