package khmer

import (
	"strconv"
	"time"
)

var monthNames = [...]string{
	"មករា", "កុម្ភៈ", "មីនា", "មេសា", "ឧសភា", "មិថុនា",
	"កក្កដា", "សីហា", "កញ្ញា", "តុលា", "វិច្ឆិកា", "ធ្នូ",
}

// FormatDate renders a date the way contract templates print them:
// "ថ្ងៃទី១៥ ខែមករា ឆ្នាំ២០២៥" (day, Khmer month name, year, Khmer digits).
func FormatDate(t time.Time) string {
	day := Digits(strconv.Itoa(t.Day()))
	year := Digits(strconv.Itoa(t.Year()))
	return "ថ្ងៃទី" + day + " ខែ" + monthNames[t.Month()-1] + " ឆ្នាំ" + year
}
