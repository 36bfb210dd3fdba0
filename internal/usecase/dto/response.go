package dto

import (
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/oereb-service/internal/domain"
)

// ExtractResponse - выписка в JSON представлении на одном языке
type ExtractResponse struct {
	ExtractIdentifier    string             `json:"extract_identifier"`
	CreationDate         time.Time          `json:"creation_date"`
	UpdateDateOS         time.Time          `json:"update_date_os"`
	Language             string             `json:"language"`
	RealEstate           RealEstateResponse `json:"real_estate"`
	ConcernedTheme       []ThemeResponse    `json:"concerned_theme"`
	NotConcernedTheme    []ThemeResponse    `json:"not_concerned_theme"`
	ThemeWithoutData     []ThemeResponse    `json:"theme_without_data"`
	LogoPLRCadastre      string             `json:"logo_plr_cadastre,omitempty"`
	FederalLogo          string             `json:"federal_logo,omitempty"`
	CantonalLogo         string             `json:"cantonal_logo,omitempty"`
	MunicipalityLogo     string             `json:"municipality_logo,omitempty"`
	PLRCadastreAuthority OfficeResponse     `json:"plr_cadastre_authority"`
	Disclaimers          []TextPair         `json:"disclaimers,omitempty"`
	Glossaries           []TextPair         `json:"glossaries,omitempty"`
	GeneralInformation   []string           `json:"general_information,omitempty"`
}

// RealEstateResponse - участок и затрагивающие его ограничения
type RealEstateResponse struct {
	EGRID                 string                `json:"egrid"`
	Number                string                `json:"number"`
	IdentDN               string                `json:"identdn"`
	Type                  string                `json:"type"`
	Canton                string                `json:"canton"`
	Municipality          string                `json:"municipality"`
	Fosnr                 int                   `json:"fosnr"`
	SubunitOfLandRegister *string               `json:"subunit_of_land_register,omitempty"`
	LandRegistryArea      int                   `json:"land_registry_area"`
	Limit                 *geojson.Geometry     `json:"limit,omitempty"`
	PlanForLandRegister   *ViewServiceResponse  `json:"plan_for_land_register,omitempty"`
	Restrictions          []RestrictionResponse `json:"restrictions"`
}

// ThemeResponse - тема или подтема
type ThemeResponse struct {
	Code    string `json:"code"`
	SubCode string `json:"sub_code,omitempty"`
	Text    string `json:"text"`
}

// CodeText - код с отображением на языке выписки
type CodeText struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// TextPair - заголовок и текст
type TextPair struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// OfficeResponse - ведомство
type OfficeResponse struct {
	Name        string `json:"name"`
	OfficeAtWeb string `json:"office_at_web,omitempty"`
	UID         string `json:"uid,omitempty"`
	Street      string `json:"street,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city,omitempty"`
}

// ViewServiceResponse - WMS сервис
type ViewServiceResponse struct {
	ReferenceWMS string  `json:"reference_wms"`
	LayerIndex   int     `json:"layer_index"`
	LayerOpacity float64 `json:"layer_opacity"`
}

// RestrictionResponse - ограничение на участке
type RestrictionResponse struct {
	Theme             ThemeResponse        `json:"theme"`
	SubTheme          *ThemeResponse       `json:"sub_theme,omitempty"`
	LawStatus         CodeText             `json:"law_status"`
	LegendText        string               `json:"legend_text"`
	TypeCode          string               `json:"type_code"`
	TypeCodeList      string               `json:"type_code_list,omitempty"`
	SymbolURL         string               `json:"symbol_url,omitempty"`
	AreaShare         *float64             `json:"area_share,omitempty"`
	LengthShare       *float64             `json:"length_share,omitempty"`
	NrOfPoints        *int                 `json:"nr_of_points,omitempty"`
	PartInPercent     *float64             `json:"part_in_percent,omitempty"`
	LengthUnit        string               `json:"length_unit,omitempty"`
	AreaUnit          string               `json:"area_unit,omitempty"`
	ResponsibleOffice OfficeResponse       `json:"responsible_office"`
	ViewService       *ViewServiceResponse `json:"view_service,omitempty"`
	Documents         []DocumentResponse   `json:"documents,omitempty"`
	Geometries        []GeometryResponse   `json:"geometries,omitempty"`
}

// DocumentResponse - правовой документ
type DocumentResponse struct {
	Type              CodeText       `json:"type"`
	Index             int            `json:"index"`
	LawStatus         CodeText       `json:"law_status"`
	Title             string         `json:"title"`
	Abbreviation      string         `json:"abbreviation,omitempty"`
	OfficialNumber    string         `json:"official_number,omitempty"`
	TextAtWeb         string         `json:"text_at_web,omitempty"`
	ArticleNumbers    []string       `json:"article_numbers,omitempty"`
	PublishedFrom     time.Time      `json:"published_from"`
	PublishedUntil    *time.Time     `json:"published_until,omitempty"`
	ResponsibleOffice OfficeResponse `json:"responsible_office"`
}

// GeometryResponse - геометрия ограничения. Geometry заполнена при GEOMETRY=true.
type GeometryResponse struct {
	LawStatus   CodeText          `json:"law_status"`
	GeoMetadata string            `json:"geo_metadata,omitempty"`
	Geometry    *geojson.Geometry `json:"geometry,omitempty"`
}

// ConvertExtract переводит выписку в JSON представление на языке lang,
// недостающие переводы берутся из fallback
func ConvertExtract(e *domain.Extract, lang, fallback string, withGeometry bool) *ExtractResponse {
	l := localizer{lang: lang, fallback: fallback}

	resp := &ExtractResponse{
		ExtractIdentifier:    e.ExtractIdentifier.String(),
		CreationDate:         e.CreationDate,
		UpdateDateOS:         e.UpdateDateOS,
		Language:             lang,
		ConcernedTheme:       l.themes(e.ConcernedTheme),
		NotConcernedTheme:    l.themes(e.NotConcernedTheme),
		ThemeWithoutData:     l.themes(e.ThemeWithoutData),
		LogoPLRCadastre:      e.LogoPLRCadastre.URL,
		FederalLogo:          e.FederalLogo.URL,
		CantonalLogo:         e.CantonalLogo.URL,
		MunicipalityLogo:     e.MunicipalityLogo.URL,
		PLRCadastreAuthority: l.office(e.PLRCadastreAuthority),
	}

	for _, d := range e.Disclaimers {
		resp.Disclaimers = append(resp.Disclaimers, TextPair{Title: l.text(d.Title), Content: l.text(d.Content)})
	}
	for _, g := range e.Glossaries {
		resp.Glossaries = append(resp.Glossaries, TextPair{Title: l.text(g.Title), Content: l.text(g.Content)})
	}
	for _, info := range e.GeneralInformation {
		resp.GeneralInformation = append(resp.GeneralInformation, l.text(info))
	}

	if re := e.RealEstate; re != nil {
		resp.RealEstate = RealEstateResponse{
			EGRID:                 re.EGRID,
			Number:                re.Number,
			IdentDN:               re.IdentDN,
			Type:                  re.Type,
			Canton:                re.Canton,
			Municipality:          re.Municipality,
			Fosnr:                 re.Fosnr,
			SubunitOfLandRegister: re.SubunitOfLandRegister,
			LandRegistryArea:      re.LandRegistryArea,
			PlanForLandRegister:   l.viewService(re.PlanForLandRegister),
			Restrictions:          make([]RestrictionResponse, 0, len(re.PublicLawRestrictions)),
		}
		if withGeometry && len(re.Limit) > 0 {
			resp.RealEstate.Limit = geojson.NewGeometry(re.Limit)
		}
		for _, r := range re.PublicLawRestrictions {
			if plr, ok := r.(*domain.PublicLawRestriction); ok {
				resp.RealEstate.Restrictions = append(resp.RealEstate.Restrictions, l.restriction(plr, withGeometry))
			}
		}
	}

	return resp
}

type localizer struct {
	lang, fallback string
}

func (l localizer) text(t domain.MultilingualText) string {
	return t.Get(l.lang, l.fallback)
}

func (l localizer) theme(t *domain.Theme) ThemeResponse {
	return ThemeResponse{Code: t.Code, SubCode: t.SubCode, Text: l.text(t.Title)}
}

func (l localizer) themes(list []*domain.Theme) []ThemeResponse {
	result := make([]ThemeResponse, 0, len(list))
	for _, t := range list {
		result = append(result, l.theme(t))
	}
	return result
}

func (l localizer) office(o domain.Office) OfficeResponse {
	return OfficeResponse{
		Name:        l.text(o.Name),
		OfficeAtWeb: l.text(o.OfficeAtWeb),
		UID:         o.UID,
		Street:      o.Street,
		PostalCode:  o.PostalCode,
		City:        o.City,
	}
}

func (l localizer) viewService(v *domain.ViewService) *ViewServiceResponse {
	if v == nil {
		return nil
	}
	return &ViewServiceResponse{
		ReferenceWMS: l.text(v.ReferenceWMS),
		LayerIndex:   v.LayerIndex,
		LayerOpacity: v.LayerOpacity,
	}
}

func (l localizer) restriction(plr *domain.PublicLawRestriction, withGeometry bool) RestrictionResponse {
	resp := RestrictionResponse{
		Theme:             l.theme(plr.Theme),
		LawStatus:         CodeText{Code: plr.LawStatus.Code, Text: l.text(plr.LawStatus.Title)},
		LegendText:        l.text(plr.Legend.LegendText),
		TypeCode:          plr.Legend.TypeCode,
		TypeCodeList:      plr.Legend.TypeCodeList,
		SymbolURL:         plr.Legend.SymbolURL,
		LengthUnit:        plr.LengthUnit,
		AreaUnit:          plr.AreaUnit,
		ResponsibleOffice: l.office(plr.ResponsibleOffice),
		ViewService:       l.viewService(plr.ViewService),
	}
	if plr.SubTheme != nil {
		sub := l.theme(plr.SubTheme)
		resp.SubTheme = &sub
	}
	if s, ok := plr.Summary(); ok {
		resp.AreaShare = s.AreaShare
		resp.LengthShare = s.LengthShare
		resp.NrOfPoints = s.NrOfPoints
		resp.PartInPercent = s.PartInPercent
		if s.AreaShare == nil {
			resp.AreaUnit = ""
		}
		if s.LengthShare == nil {
			resp.LengthUnit = ""
		}
	}

	for _, d := range plr.Documents {
		resp.Documents = append(resp.Documents, DocumentResponse{
			Type:              CodeText{Code: d.DocumentType.Code, Text: l.text(d.DocumentType.Title)},
			Index:             d.Index,
			LawStatus:         CodeText{Code: d.LawStatus.Code, Text: l.text(d.LawStatus.Title)},
			Title:             l.text(d.Title),
			Abbreviation:      l.text(d.Abbreviation),
			OfficialNumber:    l.text(d.OfficialNumber),
			TextAtWeb:         l.text(d.TextAtWeb),
			ArticleNumbers:    d.ArticleNumbers,
			PublishedFrom:     d.PublishedFrom,
			PublishedUntil:    d.PublishedUntil,
			ResponsibleOffice: l.office(d.ResponsibleOffice),
		})
	}

	for _, g := range plr.Geometries {
		gr := GeometryResponse{
			LawStatus:   CodeText{Code: g.LawStatus.Code, Text: l.text(g.LawStatus.Title)},
			GeoMetadata: g.GeoMetadata,
		}
		if withGeometry {
			gr.Geometry = geojson.NewGeometry(g.Geom)
		}
		resp.Geometries = append(resp.Geometries, gr)
	}
	return resp
}

// EGRIDResponse - найденные участки
type EGRIDResponse struct {
	RealEstates []RealEstateReference `json:"real_estates"`
}

// RealEstateReference - ссылка на участок
type RealEstateReference struct {
	EGRID   string `json:"egrid"`
	Number  string `json:"number"`
	IdentDN string `json:"identdn"`
	Type    string `json:"type"`
}

// ConvertRealEstateReferences переводит участки в ссылки
func ConvertRealEstateReferences(list []*domain.RealEstate) *EGRIDResponse {
	resp := &EGRIDResponse{RealEstates: make([]RealEstateReference, 0, len(list))}
	for _, re := range list {
		resp.RealEstates = append(resp.RealEstates, RealEstateReference{
			EGRID:   re.EGRID,
			Number:  re.Number,
			IdentDN: re.IdentDN,
			Type:    re.Type,
		})
	}
	return resp
}

// CapabilitiesResponse - возможности сервиса
type CapabilitiesResponse struct {
	Topics         []TopicCapability `json:"topics"`
	Municipalities []int             `json:"municipalities"`
	Languages      []string          `json:"languages"`
	CRS            []string          `json:"crs"`
}

// TopicCapability - тема, доступная в сервисе
type TopicCapability struct {
	Code    string `json:"code"`
	Text    string `json:"text"`
	Federal bool   `json:"federal"`
}

// VersionsResponse - поддерживаемые версии сервиса
type VersionsResponse struct {
	SupportedVersions []VersionEntry `json:"supported_versions"`
}

type VersionEntry struct {
	Version    string `json:"version"`
	ServiceURL string `json:"service_url"`
}
