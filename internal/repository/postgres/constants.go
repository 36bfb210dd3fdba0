package postgres

// Таблицы общей схемы кадастра
const (
	realEstateTable    = "oereb.real_estate"
	municipalityTable  = "oereb.municipality"
	availabilityTable  = "oereb.availability"
	themeTable         = "oereb.theme"
	themeDocumentTable = "oereb.theme_document"
	documentTable      = "oereb.document"
)

// Таблицы схемы одной темы; имя схемы берется из описания кадастра
const (
	plrTable         = "public_law_restriction"
	geometryTable    = "geometry"
	viewServiceTable = "view_service"
	officeTable      = "office"
	plrDocumentTable = "public_law_restriction_document"
	topicDocTable    = "document"
)

// documentColumns - колонки документа с префиксом d и ведомством o
const documentColumns = `
	d.id,
	d.document_type,
	d.index,
	d.law_status,
	d.title,
	d.published_from,
	d.published_until,
	d.text_at_web,
	d.abbreviation,
	d.official_number,
	d.only_in_municipality,
	d.article_numbers,
	COALESCE(o.name, '{}') AS office_name,
	o.office_at_web AS office_at_web,
	COALESCE(o.uid, '') AS office_uid`
