package bootstrap

import (
	"github.com/osse101/RaidCompanion_Go/internal/calculator"
	"github.com/osse101/RaidCompanion_Go/internal/catalog"
	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/progress"
	"github.com/osse101/RaidCompanion_Go/internal/quest"
	"github.com/osse101/RaidCompanion_Go/internal/recycling"
	"github.com/osse101/RaidCompanion_Go/internal/server"
)

// Services holds every application service sharing one catalog provider
type Services struct {
	Catalog    *catalog.Provider
	Recycling  recycling.Service
	Quests     quest.Service
	Calculator calculator.Service
	Progress   progress.Service
}

// InitializeServices builds the services on top of the repositories
func InitializeServices(cfg *config.Config, repos *Repositories) *Services {
	provider := catalog.NewProvider(repos.CatalogReader, cfg.CatalogCacheTTL)
	quests := quest.NewService(provider)

	return &Services{
		Catalog:    provider,
		Recycling:  recycling.NewService(provider, cfg.PathCacheSize, cfg.PathCacheTTL),
		Quests:     quests,
		Calculator: calculator.NewService(provider),
		Progress:   progress.NewService(repos.Progress, quests, provider),
	}
}

// ServerServices adapts the services for the HTTP server
func (s *Services) ServerServices(repos *Repositories) server.Services {
	out := server.Services{
		Catalog:    s.Catalog,
		Recycling:  s.Recycling,
		Quests:     s.Quests,
		Calculator: s.Calculator,
		Progress:   s.Progress,
	}
	// a typed nil pool would defeat the nil check in the readiness probe
	if repos.Pool != nil {
		out.DB = repos.Pool
	}
	return out
}

// ServerOptions maps configuration onto the HTTP server options
func ServerOptions(cfg *config.Config) server.Options {
	return server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		Version:         cfg.Version,
		DefaultLanguage: cfg.DefaultLanguage,
		PathMaxDepth:    cfg.PathMaxDepth,
	}
}
