package usecase

import (
	"net/url"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain"
)

// PlanForLandRegister строит WMS GetMap ссылки плана участка: bbox участка
// расширяется на map_buffer и приводится к пропорциям карты
func PlanForLandRegister(cfg config.PlanForLandRegisterConfig, limit orb.Bound) *domain.ViewService {
	if cfg.ReferenceWMS.IsEmpty() {
		return nil
	}

	bbox := fitAspect(limit.Pad(cfg.MapBuffer), cfg.Width, cfg.Height)

	refs := make(domain.MultilingualText, len(cfg.ReferenceWMS))
	for lang, raw := range cfg.ReferenceWMS {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		q := u.Query()
		q.Set("BBOX", formatBound(bbox))
		q.Set("WIDTH", strconv.Itoa(cfg.Width))
		q.Set("HEIGHT", strconv.Itoa(cfg.Height))
		u.RawQuery = q.Encode()
		refs[lang] = u.String()
	}

	return &domain.ViewService{
		ReferenceWMS: refs,
		LayerIndex:   cfg.LayerIndex,
		LayerOpacity: cfg.LayerOpacity,
	}
}

// fitAspect расширяет b вокруг центра до пропорций width:height
func fitAspect(b orb.Bound, width, height int) orb.Bound {
	if width <= 0 || height <= 0 {
		return b
	}
	w, h := b.Right()-b.Left(), b.Top()-b.Bottom()
	if w <= 0 || h <= 0 {
		return b
	}

	ratio := float64(width) / float64(height)
	if w/h > ratio {
		h = w / ratio
	} else {
		w = h * ratio
	}

	c := b.Center()
	return orb.Bound{
		Min: orb.Point{c[0] - w/2, c[1] - h/2},
		Max: orb.Point{c[0] + w/2, c[1] + h/2},
	}
}

func formatBound(b orb.Bound) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return f(b.Left()) + "," + f(b.Bottom()) + "," + f(b.Right()) + "," + f(b.Top())
}
