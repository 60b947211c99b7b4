// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package wgpu

import (
	"log/slog"

	"github.com/gogpu/gputypes"
)

// Option configures New and Open.
type Option func(*config)

type config struct {
	log      *slog.Logger
	backends []gputypes.Backend
	limits   gputypes.Limits
}

func newConfig(opts []Option) config {
	c := config{backends: preferredBackends, limits: gputypes.DefaultLimits()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger sets the device logger. By default the device logs through
// cg.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithBackends sets the hal backends Open tries, in order. The default is
// Vulkan, Metal, DX12, then GL.
func WithBackends(backends ...gputypes.Backend) Option {
	return func(c *config) {
		c.backends = backends
	}
}

// WithLimits sets the device limits. Open requests them from the adapter;
// for New they must describe the limits the caller's device was opened
// with. The default is gputypes.DefaultLimits().
func WithLimits(limits gputypes.Limits) Option {
	return func(c *config) {
		c.limits = limits
	}
}
