package dto

// ExtractRequest - запрос выписки по участку
type ExtractRequest struct {
	EGRID    string `query:"EGRID" json:"egrid" validate:"required,egrid"`
	Language string `query:"LANG" json:"lang" validate:"omitempty,min=2,max=16"`
	Topics   string `query:"TOPICS" json:"topics" validate:"omitempty,max=2048"`
	Geometry bool   `query:"GEOMETRY" json:"geometry"`
}

// GetEGRIDRequest - запрос идентификаторов участков по точке или по номеру.
// EN - координаты "x,y" в системе координат кадастра.
type GetEGRIDRequest struct {
	EN      string `query:"EN" json:"en" validate:"required_without=Number,coordinates"`
	IdentDN string `query:"IDENTDN" json:"identdn" validate:"required_with=Number"`
	Number  string `query:"NUMBER" json:"number" validate:"required_with=IdentDN"`
}
