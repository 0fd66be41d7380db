package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/parsa000721/records/api"
	"github.com/parsa000721/records/config"
	"github.com/parsa000721/records/databases"
	"github.com/parsa000721/records/records"
	"github.com/parsa000721/records/validation"
)

// App stores the router and the case record store, so they can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Store     *records.Store
	Validator *validation.Validator
	kv        databases.KeyValueStore
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	c := CaseRecord{Store: a.Store, Validator: a.Validator}

	r.Use(api.RequestLogger, api.MetricsMiddleware)
	if a.Config.RequestTimeout > 0 {
		r.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))
	}

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/", c.ListHandler).Methods("GET")
	r.HandleFunc("/cases/new", c.NewCaseHandler).Methods("GET")
	r.HandleFunc("/cases/export", c.ExportHandler).Methods("GET")
	r.HandleFunc("/cases", c.CreateCaseHandler).Methods("POST")
	r.HandleFunc("/cases/{case_id}/edit", c.EditCaseHandler).Methods("GET")
	r.HandleFunc("/cases/{case_id}", c.UpdateCaseHandler).Methods("POST")
	r.HandleFunc("/cases/{case_id}/delete", c.DeleteCaseHandler).Methods("GET")
	r.HandleFunc("/cases/{case_id}/delete", c.ConfirmDeleteHandler).Methods("POST")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.HandleFunc("/cases", c.CasesHandler).Methods("GET")
	apiCreate.HandleFunc("/case/{case_id}", c.CaseByIDHandler).Methods("GET")

	return r
}

// Initialize is invoked by main to open the state store, load the collection and create a router
func (a *App) Initialize(ctx context.Context) error {
	kv, err := databases.OpenKeyValueStore(ctx, &a.Config)
	if err != nil {
		// if we cannot reach the state store, then kill the pod
		zap.S().With("error", err).Error("failed to open state store")
		return err
	}
	a.kv = kv

	loadCtx, cancel := api.WithStoreTimeout(ctx)
	defer cancel()
	a.Store = records.Open(loadCtx, databases.NewCaseRecordDatabase(kv, a.Config.StoreKey))
	a.Validator = validation.New()
	zap.S().Infow("case records loaded",
		"driver", a.Config.StoreDriver,
		"count", a.Store.Len(),
	)

	// initialize router
	a.initializeRoutes()
	return nil
}

// Close releases the state store connection, if it holds one
func (a *App) Close() error {
	if c, ok := a.kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// writeHTML renders into a buffer so a failing template never leaves a half written page
func writeHTML(w http.ResponseWriter, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		config.ErrorStatus("failed to render page", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
