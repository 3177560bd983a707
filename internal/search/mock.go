package search

import (
	"github.com/cristianoliveira/artisan-ref/internal/catalog"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	mock.Mock
}

// Match provides a mock function with given fields: cmd, query.
func (_m *MockProvider) Match(cmd catalog.Command, query string) bool {
	ret := _m.Called(cmd, query)

	var r0 bool
	if rf, ok := ret.Get(0).(func(catalog.Command, string) bool); ok {
		r0 = rf(cmd, query)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// Name provides a mock function with given fields: .
func (_m *MockProvider) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}
