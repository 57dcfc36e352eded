package handlers

import (
	"context"

	"github.com/pydis/site-api/siteapi"
	"github.com/pydis/site-api/siteapi/database/repositories"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config  *siteapi.Config
	DB      Pinger
	Repos   *repositories.Repositories
	Version string
	Commit  string
}
