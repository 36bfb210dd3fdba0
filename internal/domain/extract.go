package domain

import (
	"time"

	"github.com/google/uuid"
)

// Logo - ссылка на логотип, используемый в выписке
type Logo struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

// Disclaimer - оговорка об ответственности
type Disclaimer struct {
	Title   MultilingualText `json:"title"`
	Content MultilingualText `json:"content"`
}

// Glossary - термин глоссария
type Glossary struct {
	Title   MultilingualText `json:"title"`
	Content MultilingualText `json:"content"`
}

// Extract - выписка обо всех ограничениях, затрагивающих участок
type Extract struct {
	ExtractIdentifier    uuid.UUID          `json:"extract_identifier"`
	CreationDate         time.Time          `json:"creation_date"`
	UpdateDateOS         time.Time          `json:"update_date_os"`
	RealEstate           *RealEstate        `json:"real_estate"`
	ConcernedTheme       []*Theme           `json:"concerned_theme"`
	NotConcernedTheme    []*Theme           `json:"not_concerned_theme"`
	ThemeWithoutData     []*Theme           `json:"theme_without_data"`
	LogoPLRCadastre      Logo               `json:"logo_plr_cadastre"`
	FederalLogo          Logo               `json:"federal_logo"`
	CantonalLogo         Logo               `json:"cantonal_logo"`
	MunicipalityLogo     Logo               `json:"municipality_logo"`
	PLRCadastreAuthority Office             `json:"plr_cadastre_authority"`
	Disclaimers          []Disclaimer       `json:"disclaimers,omitempty"`
	Glossaries           []Glossary         `json:"glossaries,omitempty"`
	GeneralInformation   []MultilingualText `json:"general_information,omitempty"`
}
