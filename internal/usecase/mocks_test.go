package usecase_test

import (
	"context"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/stretchr/testify/mock"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/pkg/geometry"
	"github.com/oereb-service/internal/usecase"
)

// rectEngine пересекает геометрии с прямоугольником участка через orb/clip
type rectEngine struct{}

func (rectEngine) Intersection(_ context.Context, a, b orb.Geometry) (orb.Geometry, error) {
	result := clip.Geometry(b.Bound(), a)
	if geometry.IsEmpty(result) {
		return nil, nil
	}
	return result, nil
}

func (rectEngine) LineMerge(_ context.Context, lines orb.MultiLineString) (orb.Geometry, error) {
	if len(lines) == 1 {
		return lines[0], nil
	}
	return lines, nil
}

func (rectEngine) UnaryUnion(_ context.Context, polygons orb.MultiPolygon) (orb.Geometry, error) {
	if len(polygons) == 1 {
		return polygons[0], nil
	}
	return polygons, nil
}

func square(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{orb.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}}
}

// testRealEstate - участок (0,0)-(10,10) с зарегистрированной площадью 100
func testRealEstate() *domain.RealEstate {
	return &domain.RealEstate{
		EGRID:            "CH113928077734",
		Number:           "1007",
		IdentDN:          "BE0200000351",
		Canton:           "BE",
		Municipality:     "Bern",
		Fosnr:            351,
		LandRegistryArea: 100,
		Limit:            orb.MultiPolygon{square(0, 0, 10, 10)},
	}
}

// MockRealEstateRepository is a mock of RealEstateRepository
type MockRealEstateRepository struct {
	mock.Mock
}

func (m *MockRealEstateRepository) GetByEGRID(ctx context.Context, egrid string) (*domain.RealEstate, error) {
	args := m.Called(ctx, egrid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RealEstate), args.Error(1)
}

func (m *MockRealEstateRepository) GetByNumber(ctx context.Context, identDN, number string) ([]*domain.RealEstate, error) {
	args := m.Called(ctx, identDN, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RealEstate), args.Error(1)
}

func (m *MockRealEstateRepository) FindByPoint(ctx context.Context, point orb.Point) ([]*domain.RealEstate, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RealEstate), args.Error(1)
}

// MockMunicipalityRepository is a mock of MunicipalityRepository
type MockMunicipalityRepository struct {
	mock.Mock
}

func (m *MockMunicipalityRepository) GetByFosnr(ctx context.Context, fosnr int) (*domain.Municipality, error) {
	args := m.Called(ctx, fosnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Municipality), args.Error(1)
}

func (m *MockMunicipalityRepository) ListPublished(ctx context.Context) ([]*domain.Municipality, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Municipality), args.Error(1)
}

// MockAvailabilityRepository is a mock of AvailabilityRepository
type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) ListByFosnr(ctx context.Context, fosnr int) (map[string]bool, error) {
	args := m.Called(ctx, fosnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

// MockPLRRepository is a mock of PLRRepository
type MockPLRRepository struct {
	mock.Mock
}

func (m *MockPLRRepository) FindIntersecting(ctx context.Context, query domain.PLRQuery) ([]*domain.PLRRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PLRRow), args.Error(1)
}

// MockDocumentRegistry is a mock of DocumentRegistry
type MockDocumentRegistry struct {
	mock.Mock
}

func (m *MockDocumentRegistry) Read(ctx context.Context, req domain.DocumentRequest) ([]*domain.Document, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Document), args.Error(1)
}

// fakeSource - источник темы с заранее заданным результатом
type fakeSource struct {
	topic   *usecase.Topic
	records []domain.Record
	err     error

	mu    sync.Mutex
	calls int
}

func (s *fakeSource) Topic() *usecase.Topic {
	return s.topic
}

func (s *fakeSource) Read(_ context.Context, req usecase.TopicRequest) ([]domain.Record, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if !req.Available {
		return []domain.Record{&domain.EmptyPLR{Theme: s.topic.Theme, HasData: false}}, nil
	}
	return s.records, nil
}

func (s *fakeSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
