// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end started by [App] outside of -init mode.
type UI interface {
	Run(ctx context.Context) error
}

// BackgroundWorker runs the start-up jobs.
type BackgroundWorker interface {
	Run(ctx context.Context) error
}
