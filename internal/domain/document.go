package domain

import "time"

// LawStatus - правовой статус (inKraft, AenderungMitVorwirkung, AenderungOhneVorwirkung)
type LawStatus struct {
	Code  string           `json:"code"`
	Title MultilingualText `json:"title"`
}

// DocumentType - вид документа (Rechtsvorschrift, GesetzlicheGrundlage, Hinweis)
type DocumentType struct {
	Code  string           `json:"code"`
	Title MultilingualText `json:"title"`
}

// Document - правовой документ, на котором основано ограничение или тема
type Document struct {
	DocumentType       DocumentType     `json:"document_type"`
	Index              int              `json:"index"`
	LawStatus          LawStatus        `json:"law_status"`
	Title              MultilingualText `json:"title"`
	ResponsibleOffice  Office           `json:"responsible_office"`
	PublishedFrom      time.Time        `json:"published_from"`
	PublishedUntil     *time.Time       `json:"published_until,omitempty"`
	TextAtWeb          MultilingualText `json:"text_at_web,omitempty"`
	Abbreviation       MultilingualText `json:"abbreviation,omitempty"`
	OfficialNumber     MultilingualText `json:"official_number,omitempty"`
	OnlyInMunicipality *int             `json:"only_in_municipality,omitempty"`
	ArticleNumbers     []string         `json:"article_numbers,omitempty"`
	File               []byte           `json:"-"`
}

// IsPublished - документ действует на момент at
func (d *Document) IsPublished(at time.Time) bool {
	return isPublished(d.PublishedFrom, d.PublishedUntil, at)
}

// SameAs - документ совпадает с other по индексу, виду и официальному номеру.
// Официальный номер сравнивается только если он есть у обоих документов.
func (d *Document) SameAs(other *Document) bool {
	if d.Index != other.Index || d.DocumentType.Code != other.DocumentType.Code {
		return false
	}
	if d.OfficialNumber.IsEmpty() || other.OfficialNumber.IsEmpty() {
		return true
	}
	return d.OfficialNumber.SharesValueWith(other.OfficialNumber)
}

func isPublished(from time.Time, until *time.Time, at time.Time) bool {
	if from.After(at) {
		return false
	}
	return until == nil || at.Before(*until)
}
