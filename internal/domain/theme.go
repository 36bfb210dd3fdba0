package domain

// Theme - тема кадастра (например, ch.Nutzungsplanung), возможно с подтемой
type Theme struct {
	Code         string           `json:"code" db:"code"`
	SubCode      string           `json:"sub_code,omitempty" db:"sub_code"`
	Title        MultilingualText `json:"title" db:"title"`
	ExtractIndex int              `json:"extract_index" db:"extract_index"`
	Documents    []*Document      `json:"documents,omitempty" db:"-"`
}

// IsSubTheme - тема является подтемой
func (t *Theme) IsSubTheme() bool {
	return t.SubCode != ""
}

// Key возвращает уникальный ключ темы в каталоге
func (t *Theme) Key() string {
	return ThemeKey(t.Code, t.SubCode)
}

// ThemeKey собирает ключ темы из кода и кода подтемы
func ThemeKey(code, subCode string) string {
	if subCode == "" {
		return code
	}
	return code + "#" + subCode
}

// Office - ответственное ведомство
type Office struct {
	Name        MultilingualText `json:"name" db:"name"`
	OfficeAtWeb MultilingualText `json:"office_at_web,omitempty" db:"office_at_web"`
	UID         string           `json:"uid,omitempty" db:"uid"`
	Line1       string           `json:"line1,omitempty" db:"line1"`
	Street      string           `json:"street,omitempty" db:"street"`
	PostalCode  string           `json:"postal_code,omitempty" db:"postal_code"`
	City        string           `json:"city,omitempty" db:"city"`
}

// LegendEntry - запись легенды ограничения
type LegendEntry struct {
	SymbolURL    string           `json:"symbol_url,omitempty"`
	LegendText   MultilingualText `json:"legend_text"`
	TypeCode     string           `json:"type_code"`
	TypeCodeList string           `json:"type_code_list,omitempty"`
	Theme        *Theme           `json:"-"`
	SubTheme     *Theme           `json:"-"`
}

// ViewService - описание WMS сервиса для отображения темы
type ViewService struct {
	ReferenceWMS MultilingualText `json:"reference_wms"`
	LayerIndex   int              `json:"layer_index"`
	LayerOpacity float64          `json:"layer_opacity"`
	Legends      []*LegendEntry   `json:"legends,omitempty"`
}
