package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	auth, err := NewAuthService(cfg.AuthUsername, cfg.AuthPassword, cfg.AuthPasswordHash)
	if err != nil {
		return nil, err
	}
	if repos.RecordRepo == nil {
		return nil, fmt.Errorf("record repository is required")
	}

	return &portssvc.ServiceContainer{
		Record:    NewRecordService(repos.RecordRepo),
		Reporting: NewReportingService(repos.RecordRepo),
		Auth:      auth,
	}, nil
}
