package di

import (
	"resort/internal/jobs"
	"resort/transport/http"
)

// App bundles everything the API process runs: the HTTP server and the
// background job scheduler, sharing one dependency graph.
type App struct {
	HTTP *http.HTTP
	Jobs *jobs.Scheduler
}
