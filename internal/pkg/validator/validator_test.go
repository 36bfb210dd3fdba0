package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type egridRequest struct {
	EGRID string `validate:"required,egrid"`
}

type pointRequest struct {
	EN      string `validate:"required_without=Number,coordinates"`
	IdentDN string `validate:"required_with=Number"`
	Number  string `validate:"required_with=IdentDN"`
}

func TestValidate_EGRID(t *testing.T) {
	assert.NoError(t, Validate(egridRequest{EGRID: "CH113928077734"}))
	assert.Error(t, Validate(egridRequest{EGRID: "CH11392807773"}))
	assert.Error(t, Validate(egridRequest{EGRID: "ch113928077734"}))
	assert.Error(t, Validate(egridRequest{}))
}

func TestValidate_Coordinates(t *testing.T) {
	assert.NoError(t, Validate(pointRequest{EN: "2600000.5,1200000"}))
	assert.NoError(t, Validate(pointRequest{IdentDN: "BE0200000351", Number: "1007"}))
	assert.Error(t, Validate(pointRequest{EN: "2600000"}))
	assert.Error(t, Validate(pointRequest{EN: "a,b"}))
	assert.Error(t, Validate(pointRequest{}))
	assert.Error(t, Validate(pointRequest{IdentDN: "BE0200000351"}))
}

func TestParseCoordinates(t *testing.T) {
	x, y, ok := ParseCoordinates(" 2600000 , 1200000.25 ")
	assert.True(t, ok)
	assert.Equal(t, 2600000.0, x)
	assert.Equal(t, 1200000.25, y)
}
