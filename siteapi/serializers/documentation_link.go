package serializers

import (
	"context"

	"github.com/pydis/site-api/siteapi/database/models"
)

type DocumentationLinkRepresentation struct {
	Package      string `json:"package"`
	BaseURL      string `json:"base_url"`
	InventoryURL string `json:"inventory_url"`
}

type documentationLinkPayload struct {
	Package      *string `json:"package" validate:"required,notblank,max=50"`
	BaseURL      *string `json:"base_url"`
	InventoryURL *string `json:"inventory_url" validate:"required,max=200,url"`
}

type DocumentationLinkSerializer struct {
	writer Writer[models.DocumentationLink]
}

func NewDocumentationLinkSerializer(writer Writer[models.DocumentationLink]) *DocumentationLinkSerializer {
	return &DocumentationLinkSerializer{writer: writer}
}

// Validate accepts an empty base_url for packages whose symbols have no
// page of their own; any other base_url must be a URL ending in a slash.
func (s *DocumentationLinkSerializer) Validate(_ context.Context, data []byte) (*models.DocumentationLink, error) {
	var p documentationLinkPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	baseURL := deref(p.BaseURL, "")
	if baseURL != "" {
		checkVar(verrs, "base_url", baseURL, "max=200,url,endswith=/")
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	return &models.DocumentationLink{
		Package:      *p.Package,
		BaseURL:      baseURL,
		InventoryURL: *p.InventoryURL,
	}, nil
}

func (s *DocumentationLinkSerializer) Represent(_ context.Context, m *models.DocumentationLink) (any, error) {
	return &DocumentationLinkRepresentation{
		Package:      m.Package,
		BaseURL:      m.BaseURL,
		InventoryURL: m.InventoryURL,
	}, nil
}

func (s *DocumentationLinkSerializer) Create(ctx context.Context, m *models.DocumentationLink) error {
	return s.writer.Create(ctx, m)
}
