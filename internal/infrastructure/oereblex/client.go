package oereblex

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
	"github.com/oereb-service/internal/pkg/errors"
)

const dateLayout = "2006-01-02"

type client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	deployment *config.Deployment
	logger     *zap.Logger
}

// NewClient создает клиент реестра документов OEREBlex
func NewClient(cfg config.OEREBlexConfig, deployment *config.Deployment, logger *zap.Logger) repository.DocumentRegistry {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		deployment: deployment,
		logger:     logger,
	}
}

// geolinks - ответ /api/geolinks/{id}.xml
type geolinks struct {
	XMLName   xml.Name      `xml:"geolinks"`
	Documents []xmlDocument `xml:"document"`
}

type xmlDocument struct {
	ID             string    `xml:"id,attr"`
	Doctype        string    `xml:"doctype,attr"`
	Title          string    `xml:"title,attr"`
	Number         string    `xml:"number,attr"`
	Abbreviation   string    `xml:"abbreviation,attr"`
	EnactmentDate  string    `xml:"enactment_date,attr"`
	AbrogationDate string    `xml:"abrogation_date,attr"`
	Authority      string    `xml:"authority,attr"`
	AuthorityURL   string    `xml:"authority_url,attr"`
	Files          []xmlFile `xml:"file"`
}

type xmlFile struct {
	Category string `xml:"category,attr"`
	Href     string `xml:"href,attr"`
	Title    string `xml:"title,attr"`
}

// Read возвращает документы geolink. Документы с doctype без сопоставления пропускаются.
func (c *client) Read(ctx context.Context, req domain.DocumentRequest) ([]*domain.Document, error) {
	lang := c.deployment.OEREBlex.Language
	if lang == "" {
		lang = req.Language
	}

	endpoint := c.endpoint(req.GeolinkID, lang, req.ExtraQuery)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for registry rate limit: %w", err)
	}

	c.logger.Debug("Calling OEREBlex geolink API",
		zap.Int("geolink", req.GeolinkID),
		zap.String("url", endpoint))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Int("geolink", req.GeolinkID), zap.Error(err))
		return nil, errors.ErrDocumentSourceError.WithDetails(map[string]interface{}{
			"geolink": req.GeolinkID,
			"error":   err.Error(),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("OEREBlex API returned error",
			zap.Int("geolink", req.GeolinkID),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrDocumentSourceError.WithDetails(map[string]interface{}{
			"geolink": req.GeolinkID,
			"status":  resp.StatusCode,
		})
	}

	var payload geolinks
	if err := xml.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode response", zap.Int("geolink", req.GeolinkID), zap.Error(err))
		return nil, fmt.Errorf("failed to decode geolink %d: %w", req.GeolinkID, err)
	}

	docs := make([]*domain.Document, 0, len(payload.Documents))
	for _, d := range payload.Documents {
		doc, ok := c.convert(d, lang, req.LawStatus)
		if !ok {
			continue
		}
		docs = append(docs, doc)
	}

	c.logger.Debug("OEREBlex geolink loaded",
		zap.Int("geolink", req.GeolinkID),
		zap.Int("documents", len(docs)))

	return docs, nil
}

func (c *client) endpoint(geolinkID int, lang, extraQuery string) string {
	q := url.Values{}
	if extraQuery != "" {
		if extra, err := url.ParseQuery(extraQuery); err == nil {
			q = extra
		} else {
			c.logger.Warn("Ignoring malformed geolink extra query", zap.String("extra_query", extraQuery))
		}
	}
	q.Set("locale", lang)
	return fmt.Sprintf("%s/api/geolinks/%d.xml?%s", c.baseURL, geolinkID, q.Encode())
}

func (c *client) convert(d xmlDocument, lang string, lawStatus domain.LawStatus) (*domain.Document, bool) {
	mapping, ok := c.deployment.OEREBlex.Mapping[d.Doctype]
	if !ok {
		c.logger.Warn("Skipping document with unmapped doctype",
			zap.String("document", d.ID), zap.String("doctype", d.Doctype))
		return nil, false
	}

	enacted, err := time.Parse(dateLayout, d.EnactmentDate)
	if err != nil {
		c.logger.Warn("Skipping document without valid enactment date",
			zap.String("document", d.ID), zap.String("enactment_date", d.EnactmentDate))
		return nil, false
	}

	docType, _ := c.deployment.DocumentType(mapping.DocumentType)
	doc := &domain.Document{
		DocumentType:   docType,
		Index:          mapping.Index,
		LawStatus:      lawStatus,
		Title:          text(lang, d.Title),
		PublishedFrom:  enacted,
		Abbreviation:   text(lang, d.Abbreviation),
		OfficialNumber: text(lang, d.Number),
		TextAtWeb:      text(lang, mainFile(d.Files)),
		ResponsibleOffice: domain.Office{
			Name:        text(lang, d.Authority),
			OfficeAtWeb: text(lang, d.AuthorityURL),
		},
	}
	if d.AbrogationDate != "" {
		if until, err := time.Parse(dateLayout, d.AbrogationDate); err == nil {
			doc.PublishedUntil = &until
		}
	}
	return doc, true
}

// mainFile - ссылка на основной файл документа, иначе на первый
func mainFile(files []xmlFile) string {
	for _, f := range files {
		if f.Category == "main" {
			return f.Href
		}
	}
	if len(files) > 0 {
		return files[0].Href
	}
	return ""
}

func text(lang, value string) domain.MultilingualText {
	if value == "" {
		return nil
	}
	return domain.MultilingualText{lang: value}
}
