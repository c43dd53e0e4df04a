package healthcheck

import (
	"encoding/json"
	"net/http"
	"sync"
)

type HealthChecks struct {
	Status bool   `json:"status"`
	Name   string `json:"name"`
	Error  string `json:"error,omitempty"`
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks `json:"checks"`
	StatusCode int            `json:"statuscode"`
}

// HealthCheckHandler reports whether a part of the service is healthy; an error
// means the check itself could not be performed.
type HealthCheckHandler func() (err error, ok bool)

type namedChecker struct {
	name    string
	handler HealthCheckHandler
}

// HealthCheck answers /health requests with the result of every registered checker.
type HealthCheck struct {
	checkers []namedChecker
	mutex    *sync.Mutex
}

func NewHealthCheck() *HealthCheck {
	return &HealthCheck{
		checkers: make([]namedChecker, 0),
		mutex:    &sync.Mutex{},
	}
}

func (hc *HealthCheck) Register(name string, handler HealthCheckHandler) {
	hc.mutex.Lock()
	defer hc.mutex.Unlock()

	hc.checkers = append(hc.checkers, namedChecker{name: name, handler: handler})
}

// Run performs every check; the status code is 500 as soon as one fails.
func (hc *HealthCheck) Run() HealthCheckHttpResponse {
	hc.mutex.Lock()
	checkers := make([]namedChecker, len(hc.checkers))
	copy(checkers, hc.checkers)
	hc.mutex.Unlock()

	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0, len(checkers)),
		StatusCode: http.StatusOK,
	}

	for _, checker := range checkers {
		err, ok := checker.handler()

		check := HealthChecks{
			Status: err == nil && ok,
			Name:   checker.name,
		}

		if err != nil {
			check.Error = err.Error()
		}

		if !check.Status {
			res.StatusCode = http.StatusInternalServerError
		}

		res.Checks = append(res.Checks, check)
	}

	return res
}

func (hc *HealthCheck) HttpHandler(w http.ResponseWriter, r *http.Request) {
	res := hc.Run()

	data, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}
