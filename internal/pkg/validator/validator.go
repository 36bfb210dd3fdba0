package validator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// egridPattern - федеральный идентификатор участка: CH и 12 цифр или заглавных букв
var egridPattern = regexp.MustCompile(`^CH[0-9A-Z]{12}$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("egrid", validateEGRID)
	_ = validate.RegisterValidation("coordinates", validateCoordinates)
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// IsEGRID - строка является корректным EGRID
func IsEGRID(s string) bool {
	return egridPattern.MatchString(s)
}

// ParseCoordinates разбирает пару координат "x,y"
func ParseCoordinates(s string) (x, y float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}

func validateEGRID(fl validator.FieldLevel) bool {
	return IsEGRID(fl.Field().String())
}

// validateCoordinates пропускает пустое значение: обязательность задается другими правилами
func validateCoordinates(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	_, _, ok := ParseCoordinates(v)
	return ok
}
