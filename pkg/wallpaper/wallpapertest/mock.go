// Package wallpapertest provides test doubles for the wallpaper OS port.
package wallpapertest

import (
	"github.com/dixieflatline76/dayshift/pkg/wallpaper"
	"github.com/stretchr/testify/mock"
)

// MockOS is a mock implementation of the wallpaper.OS interface.
type MockOS struct {
	mock.Mock
}

// Get records the call and returns the configured path and error.
func (m *MockOS) Get() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// Set records the call and returns the configured error.
func (m *MockOS) Set(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

var _ wallpaper.OS = (*MockOS)(nil)
