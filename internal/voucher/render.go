package voucher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zamzamtour/umrah-voucher/internal/extract"
	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// PluralNights returns the Russian plural form for a night count:
// 1 ночь, 2 ночи, 5 ночей, with the 11..14 exception.
func PluralNights(n int) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return "ночей"
	case n%10 == 1:
		return "ночь"
	case n%10 >= 2 && n%10 <= 4:
		return "ночи"
	default:
		return "ночей"
	}
}

func nightsLine(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d %s", *n, PluralNights(*n))
}

// PreviewText renders the voucher as the plain-text summary shown to
// an operator before the document is generated.
func PreviewText(v *models.Voucher, pkgTitle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Пакет: %s\n", pkgTitle)

	for i := 0; i < 2; i++ {
		leg := v.Legs[i]
		if leg.Empty() {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", leg.City.Russian())
		fmt.Fprintf(&b, "Отель: %s\n", leg.Hotel)
		if leg.DateRange != "" {
			fmt.Fprintf(&b, "Даты: %s\n", leg.DateRange)
		}
		if n := nightsLine(leg.Nights); n != "" {
			fmt.Fprintf(&b, "Ночей: %s\n", n)
		}
		if leg.CheckIn != "" {
			fmt.Fprintf(&b, "Заезд: %s\n", leg.CheckIn)
		}
	}

	fmt.Fprintf(&b, "\nТрансфер: %s\n", v.Transfer)
	fmt.Fprintf(&b, "Питание: %s\n", v.Meal)
	fmt.Fprintf(&b, "Сервис: %s\n", v.Service)
	fmt.Fprintf(&b, "Гид: %s\n", v.Guide)
	fmt.Fprintf(&b, "Экскурсии: %s\n", v.Excursions)

	if f := v.Flights; f != nil {
		fmt.Fprintf(&b, "\nВылет: %s, %s %s-%s\n", f.DepartDate, f.DepartFlight, f.DepartTime1, f.DepartTime2)
		fmt.Fprintf(&b, "Обратно: %s, %s %s-%s\n", f.ReturnDate, f.ReturnFlight, f.ReturnTime1, f.ReturnTime2)
	}
	return b.String()
}

var slugUnsafeRe = regexp.MustCompile(`[^0-9A-Za-zА-Яа-яЁё-]+`)

// FilenameSlug turns a package title into a safe file stem:
// "15.11-22.11 NIYET/7d" becomes "15_11-22_11_NIYET_7d" style output
// with runs of unsafe characters collapsed to single underscores.
func FilenameSlug(title string) string {
	s := extract.NormSpaces(title)
	s = slugUnsafeRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "voucher"
	}
	return s
}

// SecondPage selects which back-page background the rendered document
// uses. The pages differ in the city artwork; Madinah-first packages
// with a rail leg get the train variant.
type SecondPage string

const (
	SecondPageMadinahTrain SecondPage = "madinah_train"
	SecondPageMadinah      SecondPage = "madinah"
	SecondPageMakkah       SecondPage = "makkah"
)

// PickSecondPage chooses the back page from the first city stay and
// the ground-transport text.
func PickSecondPage(firstCity models.City, transferRaw string) SecondPage {
	if firstCity == models.CityMadinah {
		if extract.HasRail(transferRaw) {
			return SecondPageMadinahTrain
		}
		return SecondPageMadinah
	}
	return SecondPageMakkah
}
