package fundamentus

import (
	"strings"
	"time"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// ParseDecimal はブラジル形式の数値テキスト（"1.234,56"）を10進数に変換します。
// 空文字や解析できない値は欠損値（Valid == false）を返し、エラーにはしません。
func ParseDecimal(text string) decimal.NullDecimal {
	s := strings.TrimSpace(text)
	if s == "" || s == "-" {
		return decimal.NullDecimal{}
	}
	// 桁区切りの"."を除去し、小数点の","を"."へ
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParsePercent は"5,67%"のようなパーセント表記を5.67に変換します。
func ParsePercent(text string) decimal.NullDecimal {
	return ParseDecimal(strings.ReplaceAll(text, "%", ""))
}

// ParseDate は"DD/MM/YYYY"をloc上の午前0時に変換します。
// 形式が合わない場合は無効なnull.Timeを返します。
func ParseDate(text string, loc *time.Location) null.Time {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("02/01/2006", strings.TrimSpace(text), loc)
	if err != nil {
		return null.Time{}
	}
	return null.TimeFrom(t)
}
