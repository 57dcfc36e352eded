package serializers

import (
	"github.com/pydis/site-api/siteapi/database/models"
)

type RoleRepresentation struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Colour      int32  `json:"colour"`
	Permissions int64  `json:"permissions"`
}

type rolePayload struct {
	ID          *int64  `json:"id" validate:"required,gte=0"`
	Name        *string `json:"name" validate:"required,notblank,max=100"`
	Colour      *int64  `json:"colour" validate:"required,gte=0,lte=2147483647"`
	Permissions *int64  `json:"permissions" validate:"required,gte=0,lte=8589934592"`
}

func NewRoleSerializer(writer Writer[models.Role]) Serializer[models.Role] {
	return &simpleSerializer[models.Role, rolePayload]{
		writer: writer,
		toModel: func(p *rolePayload) *models.Role {
			return &models.Role{
				ID:          *p.ID,
				Name:        *p.Name,
				Colour:      int32(*p.Colour),
				Permissions: *p.Permissions,
			}
		},
		represent: func(m *models.Role) any {
			return &RoleRepresentation{
				ID:          m.ID,
				Name:        m.Name,
				Colour:      m.Colour,
				Permissions: m.Permissions,
			}
		},
	}
}
