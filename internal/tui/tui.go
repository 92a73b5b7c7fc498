// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("nil client services")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Pages builds the console pages keyed by page name.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	devices := t.services.Devices
	return map[string]tea.Model{
		pageMenu:     NewMenuModel(devices.OwnerID()),
		pageTrusted:  NewTrustedModel(ctx, devices),
		pageDiscover: NewDiscoverModel(ctx, devices),
		pagePin:      NewPinModel(ctx, devices),
		pageLocal:    NewLocalModel(ctx, devices),
	}
}

// Run shows the console until the user quits or ctx is done. Quitting with
// ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.Pages(ctx), pageMenu, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("console stopped")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
