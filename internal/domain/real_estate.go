package domain

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// RealEstate - земельный участок (объект недвижимости)
type RealEstate struct {
	EGRID                 string           `json:"egrid" db:"egrid"`
	Number                string           `json:"number" db:"number"`
	IdentDN               string           `json:"identdn" db:"identdn"`
	Type                  string           `json:"type" db:"type"`
	Canton                string           `json:"canton" db:"canton"`
	Municipality          string           `json:"municipality" db:"municipality"`
	Fosnr                 int              `json:"fosnr" db:"fosnr"`
	SubunitOfLandRegister *string          `json:"subunit_of_land_register,omitempty" db:"subunit_of_land_register"`
	LandRegistryArea      int              `json:"land_registry_area" db:"land_registry_area"`
	Limit                 orb.MultiPolygon `json:"-" db:"-"`

	PlanForLandRegister         *ViewService `json:"plan_for_land_register,omitempty" db:"-"`
	PlanForLandRegisterMainPage *ViewService `json:"plan_for_land_register_main_page,omitempty" db:"-"`
	PublicLawRestrictions       []Record     `json:"-" db:"-"`
}

// AreasRatio - отношение геометрической площади к зарегистрированной.
// Без зарегистрированной площади или геометрии возвращает 1.
func (r *RealEstate) AreasRatio() float64 {
	area := planar.Area(r.Limit)
	if r.LandRegistryArea <= 0 || area <= 0 {
		return 1
	}
	return area / float64(r.LandRegistryArea)
}

// Municipality - муниципалитет (FOSNR - федеральный номер)
type Municipality struct {
	Fosnr     int       `json:"fosnr" db:"fosnr"`
	Name      string    `json:"name" db:"name"`
	Published bool      `json:"published" db:"published"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
