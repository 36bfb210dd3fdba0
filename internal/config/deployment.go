package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/pkg/geometry"
)

// Варианты источника данных темы
const (
	SourceDatabase = "database"
	SourceOEREBlex = "oereblex"
)

// Deployment - описание кадастра конкретного кантона: языки, правовые статусы,
// темы с порогами и источниками, логотипы и тексты выписки
type Deployment struct {
	Languages           []string                  `yaml:"languages"`
	DefaultLanguage     string                    `yaml:"default_language"`
	SRID                int                       `yaml:"srid"`
	LawStatuses         []domain.LawStatus        `yaml:"law_status"`
	DocumentTypes       []domain.DocumentType     `yaml:"document_types"`
	GeometryTypes       GeometryTypesConfig       `yaml:"geometry_types"`
	Topics              []TopicConfig             `yaml:"topics"`
	Logos               LogosConfig               `yaml:"logos"`
	PlanForLandRegister PlanForLandRegisterConfig `yaml:"plan_for_land_register"`
	Office              domain.Office             `yaml:"plr_cadastre_authority"`
	Disclaimers         []domain.Disclaimer       `yaml:"disclaimers"`
	Glossary            []domain.Glossary         `yaml:"glossary"`
	GeneralInformation  []domain.MultilingualText `yaml:"general_information"`
	OEREBlex            OEREBlexDeployment        `yaml:"oereblex"`
}

// GeometryTypesConfig - имена типов геометрий, относящиеся к точкам, линиям и полигонам
type GeometryTypesConfig struct {
	Point   []string `yaml:"point"`
	Line    []string `yaml:"line"`
	Polygon []string `yaml:"polygon"`
}

// TopicConfig - настройки одной темы
type TopicConfig struct {
	Code         string           `yaml:"code"`
	Federal      bool             `yaml:"federal"`
	GeometryType string           `yaml:"geometry_type"`
	Thresholds   ThresholdsConfig `yaml:"thresholds"`
	Source       string           `yaml:"source"`
	Schema       string           `yaml:"schema"`
	Geolink      *GeolinkConfig   `yaml:"geolink"`
}

// ThresholdsConfig - минимальные длина и площадь, при которых ограничение затрагивает участок
type ThresholdsConfig struct {
	Length     ThresholdConfig `yaml:"length"`
	Area       ThresholdConfig `yaml:"area"`
	Percentage struct {
		// Precision - знаков после запятой у part_in_percent; не задано - 1
		Precision *int `yaml:"precision"`
	} `yaml:"percentage"`
}

const defaultPercentPrecision = 1

// PercentPrecision возвращает точность доли в процентах, явный 0 сохраняется
func (t ThresholdsConfig) PercentPrecision() int {
	if t.Percentage.Precision == nil {
		return defaultPercentPrecision
	}
	return *t.Percentage.Precision
}

type ThresholdConfig struct {
	Limit float64 `yaml:"limit"`
	Unit  string  `yaml:"unit"`
}

// GeolinkConfig - параметры запроса документов темы в реестре
type GeolinkConfig struct {
	ExtraQuery string `yaml:"extra_query"`
}

// LogosConfig - ссылки на логотипы; municipality индексируется по FOSNR
type LogosConfig struct {
	PLRCadastre   string         `yaml:"plr_cadastre"`
	Confederation string         `yaml:"confederation"`
	Canton        string         `yaml:"canton"`
	Municipality  map[int]string `yaml:"municipality"`
}

// PlanForLandRegisterConfig - WMS для плана участка
type PlanForLandRegisterConfig struct {
	ReferenceWMS domain.MultilingualText `yaml:"reference_wms"`
	LayerIndex   int                     `yaml:"layer_index"`
	LayerOpacity float64                 `yaml:"layer_opacity"`
	MapBuffer    float64                 `yaml:"map_buffer"`
	Width        int                     `yaml:"width"`
	Height       int                     `yaml:"height"`
}

// OEREBlexDeployment - сопоставление doctype реестра с видами документов
type OEREBlexDeployment struct {
	Language string                    `yaml:"language"`
	Canton   string                    `yaml:"canton"`
	Mapping  map[string]DoctypeMapping `yaml:"mapping"`
}

type DoctypeMapping struct {
	DocumentType string `yaml:"document_type"`
	Index        int    `yaml:"index"`
}

// LoadDeployment читает YAML файл описания кадастра и проверяет его
func LoadDeployment(path string) (*Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment file %q: %w", path, err)
	}
	return ParseDeployment(data)
}

// ParseDeployment разбирает YAML описание кадастра
func ParseDeployment(data []byte) (*Deployment, error) {
	var d Deployment
	if err := yaml.UnmarshalWithOptions(data, &d, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to parse deployment: %w", err)
	}

	d.applyDefaults()

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deployment: %w", err)
	}
	return &d, nil
}

func (d *Deployment) applyDefaults() {
	if d.DefaultLanguage == "" && len(d.Languages) > 0 {
		d.DefaultLanguage = d.Languages[0]
	}
	if d.SRID == 0 {
		d.SRID = 2056
	}
	if d.PlanForLandRegister.Width == 0 {
		d.PlanForLandRegister.Width = 493
	}
	if d.PlanForLandRegister.Height == 0 {
		d.PlanForLandRegister.Height = 280
	}
	if d.PlanForLandRegister.LayerOpacity == 0 {
		d.PlanForLandRegister.LayerOpacity = 1
	}
	for i := range d.Topics {
		t := &d.Topics[i]
		if t.Source == "" {
			t.Source = SourceDatabase
		}
		if t.Thresholds.Length.Unit == "" {
			t.Thresholds.Length.Unit = "m"
		}
		if t.Thresholds.Area.Unit == "" {
			t.Thresholds.Area.Unit = "m2"
		}
	}
}

// Validate проверяет обязательные поля описания
func (d *Deployment) Validate() error {
	var problems []string

	if len(d.Languages) == 0 {
		problems = append(problems, "languages must not be empty")
	} else if !contains(d.Languages, d.DefaultLanguage) {
		problems = append(problems, fmt.Sprintf("default language %q is not in languages", d.DefaultLanguage))
	}
	if len(d.LawStatuses) == 0 {
		problems = append(problems, "law_status must not be empty")
	}
	if _, err := d.TypeTable(); err != nil {
		problems = append(problems, err.Error())
	}

	seen := make(map[string]bool, len(d.Topics))
	for i, t := range d.Topics {
		switch {
		case t.Code == "":
			problems = append(problems, fmt.Sprintf("topics[%d]: code is required", i))
			continue
		case seen[t.Code]:
			problems = append(problems, fmt.Sprintf("topic %s: declared twice", t.Code))
		}
		seen[t.Code] = true

		if t.Source != SourceDatabase && t.Source != SourceOEREBlex {
			problems = append(problems, fmt.Sprintf("topic %s: unknown source %q", t.Code, t.Source))
		}
		if t.Thresholds.Length.Limit < 0 || t.Thresholds.Area.Limit < 0 {
			problems = append(problems, fmt.Sprintf("topic %s: thresholds must not be negative", t.Code))
		}
		if p := t.Thresholds.Percentage.Precision; p != nil && *p < 0 {
			problems = append(problems, fmt.Sprintf("topic %s: percentage precision must not be negative", t.Code))
		}
		if t.Source == SourceOEREBlex && t.Geolink == nil {
			problems = append(problems, fmt.Sprintf("topic %s: source %s requires geolink settings", t.Code, SourceOEREBlex))
		}
		if t.GeometryType != "" {
			if _, ok := geometry.ParseKind(t.GeometryType); !ok {
				problems = append(problems, fmt.Sprintf("topic %s: unknown geometry type %q", t.Code, t.GeometryType))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// Topic возвращает настройки темы по коду
func (d *Deployment) Topic(code string) (TopicConfig, bool) {
	for _, t := range d.Topics {
		if t.Code == code {
			return t, true
		}
	}
	return TopicConfig{}, false
}

// TypeTable строит таблицу элементарных типов геометрий. Пустая секция - таблица по умолчанию.
func (d *Deployment) TypeTable() (geometry.TypeTable, error) {
	g := d.GeometryTypes
	if len(g.Point) == 0 && len(g.Line) == 0 && len(g.Polygon) == 0 {
		return geometry.DefaultTypeTable(), nil
	}
	return geometry.NewTypeTable(g.Point, g.Line, g.Polygon)
}

// LawStatusCodes - канонический порядок правовых статусов для сортировки
func (d *Deployment) LawStatusCodes() []string {
	codes := make([]string, 0, len(d.LawStatuses))
	for _, s := range d.LawStatuses {
		codes = append(codes, s.Code)
	}
	return codes
}

// LawStatus возвращает отображение правового статуса по коду
func (d *Deployment) LawStatus(code string) (domain.LawStatus, bool) {
	for _, s := range d.LawStatuses {
		if s.Code == code {
			return s, true
		}
	}
	return domain.LawStatus{Code: code}, false
}

// DocumentType возвращает отображение вида документа по коду
func (d *Deployment) DocumentType(code string) (domain.DocumentType, bool) {
	for _, t := range d.DocumentTypes {
		if t.Code == code {
			return t, true
		}
	}
	return domain.DocumentType{Code: code}, false
}

// MatchLanguage подбирает язык выписки среди настроенных. Пустой запрос - язык по умолчанию.
func (d *Deployment) MatchLanguage(requested string) (string, bool) {
	if requested == "" {
		return d.DefaultLanguage, true
	}
	tags := make([]language.Tag, 0, len(d.Languages))
	for _, l := range d.Languages {
		tags = append(tags, language.Make(l))
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return "", false
	}
	_, idx, conf := language.NewMatcher(tags).Match(tag)
	if conf < language.High {
		return "", false
	}
	return d.Languages[idx], true
}

// MunicipalityLogo возвращает логотип муниципалитета
func (l LogosConfig) MunicipalityLogo(fosnr int) (string, bool) {
	url, ok := l.Municipality[fosnr]
	return url, ok
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
