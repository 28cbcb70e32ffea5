package main

import (
	"errors"
	"fmt"

	"depannel_dispatch/internal/adapter/persistence/repository"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/infrastructure/config"
	"depannel_dispatch/internal/infrastructure/depannelapi"
	"depannel_dispatch/internal/usecase"
)

// cliApp is the use case wiring for one invocation. The view is rebuilt
// from the backing service each run.
type cliApp struct {
	client        *depannelapi.Client
	interventions *usecase.InterventionUseCase
	catalog       *usecase.CatalogUseCase
}

func newCLIApp() (*cliApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	client, err := depannelapi.NewClient(depannelapi.Options{
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.APITimeout,
		RequestsPerSec: cfg.APIRequestsPerSec,
	})
	if err != nil {
		return nil, err
	}
	uc := usecase.NewInterventionUseCase(usecase.InterventionDeps{
		Gateway:       client,
		View:          repository.NewInterventionMemoryRepository(),
		Engine:        lifecycle.NewEngine(cfg.ArrivalOffset),
		RemoteTimeout: cfg.APITimeout,
	})
	return &cliApp{client: client, interventions: uc, catalog: usecase.NewCatalogUseCase(client)}, nil
}

// describe renders lifecycle errors for a terminal.
func describe(err error) string {
	var re *lifecycle.RemoteError
	switch {
	case errors.As(err, &re):
		return fmt.Sprintf("rejected by the server (%d): %s", re.StatusCode, re.Message)
	case errors.Is(err, lifecycle.ErrSessionExpired):
		return "session expired, run depannelctl login"
	case errors.Is(err, lifecycle.ErrRemoteUnreachable):
		return "backing service unreachable, retry later"
	case errors.Is(err, usecase.ErrInterventionNotFound):
		return "intervention not found"
	case errors.Is(err, usecase.ErrManagerRequired):
		return "this command requires a manager session"
	}
	return err.Error()
}
