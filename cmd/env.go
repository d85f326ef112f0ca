package main

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/auth"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/config"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/fetcher"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/ingest"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/ledger"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/schema"
)

// initLoader builds the snapshot loader from config: synonym tables, feed
// paths (FTP drops downloaded first), and the contact directory path.
func initLoader(cfg *config.Config) (*ingest.Loader, error) {
	if len(cfg.Sources.Tables) == 0 {
		return nil, eris.New("no source tables configured (sources.tables)")
	}

	synonyms, err := schema.LoadOverrides(cfg.Schema.OverridesPath)
	if err != nil {
		return nil, err
	}

	sources := make([]ingest.Source, 0, len(cfg.Sources.Tables))
	for name, path := range cfg.Sources.Tables {
		category := model.CanonicalCategory(model.SourceCategory(name))
		if !model.KnownCategory(category) {
			return nil, eris.Errorf("unknown source category %q (sources.tables)", name)
		}
		local, err := localizePath(path, cfg.FTP)
		if err != nil {
			return nil, err
		}
		sources = append(sources, ingest.Source{
			Category: category,
			Path:     local,
		})
	}
	// Map iteration order is random; keep loads deterministic.
	sort.Slice(sources, func(i, j int) bool { return sources[i].Category < sources[j].Category })

	contactPath, err := localizePath(cfg.Directory.Path, cfg.FTP)
	if err != nil {
		return nil, err
	}

	return &ingest.Loader{
		Sources:     sources,
		ContactPath: contactPath,
		Synonyms:    synonyms,
	}, nil
}

// localizePath downloads ftp:// feed paths to the local drop dir; plain
// paths pass through.
func localizePath(path string, ftpCfg config.FTPConfig) (string, error) {
	if !strings.HasPrefix(path, "ftp://") {
		return path, nil
	}
	return fetcher.FetchFTP(path, ftpCfg.DownloadDir, fetcher.FTPOptions{
		User:     ftpCfg.User,
		Password: ftpCfg.Password,
		Timeout:  time.Duration(ftpCfg.TimeoutSecs) * time.Second,
	})
}

// initLedger opens the configured feedback ledger backend.
func initLedger(ctx context.Context, cfg *config.Config) (ledger.Ledger, error) {
	switch cfg.Ledger.Backend {
	case "csv":
		return ledger.NewCSV(cfg.Ledger.Path), nil
	case "sqlite":
		return ledger.NewSQLite(cfg.Ledger.Path)
	case "postgres":
		return ledger.NewPostgres(ctx, cfg.Ledger.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported ledger backend: %s", cfg.Ledger.Backend)
	}
}

// initAuth builds the identity resolver from config.
func initAuth(cfg *config.Config) *auth.Resolver {
	return &auth.Resolver{
		AdminSecret:        cfg.Auth.AdminSecret,
		Mode:               auth.Mode(cfg.Auth.Mode),
		EmployeeCodeLength: cfg.Auth.EmployeeCodeLength,
	}
}
