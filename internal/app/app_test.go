package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/pkg/geometry"
	"github.com/oereb-service/internal/usecase"
)

func TestNewEngine(t *testing.T) {
	logger := zap.NewNop()

	engine, err := NewEngine("", nil, logger)
	require.NoError(t, err)
	assert.NotNil(t, engine)

	engine, err = NewEngine(EngineGEOS, nil, logger)
	require.NoError(t, err)
	assert.NotNil(t, engine)

	_, err = NewEngine(EnginePostGIS, nil, logger)
	assert.Error(t, err)

	_, err = NewEngine("jts", nil, logger)
	assert.Error(t, err)
}

func TestNewSources(t *testing.T) {
	topic := func(code, source string) *usecase.Topic {
		return &usecase.Topic{
			Config: config.TopicConfig{Code: code, Source: source},
			Theme:  &domain.Theme{Code: code},
		}
	}
	topics := []*usecase.Topic{
		topic("ch.Nutzungsplanung", config.SourceOEREBlex),
		topic("ch.Waldgrenzen", config.SourceDatabase),
		topic("ch.Laermempfindlichkeitsstufen", ""),
	}

	sources := NewSources(topics, SourceDeps{
		Clipper:    geometry.NewClipper(nil, nil, nil),
		Deployment: &config.Deployment{},
	}, zap.NewNop())

	require.Len(t, sources, 3)
	for i, src := range sources {
		assert.Same(t, topics[i], src.Topic())
	}
}
