// Package docs Case File Records API.
//
// Documentation of the read-only JSON API of the case file records service.
//
//     Schemes: http, https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/parsa000721/records/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/cases cases caseList
// Lists every case record, most recent first.
// responses:
//   200: caseListResponse

// All case records in collection order
// swagger:response caseListResponse
type caseListResponseWrapper struct {
	// in:body
	Body []models.CaseRecord
}

// swagger:route GET /api/v1/case/{case_id} cases caseByID
// Gets a single case record by ID.
// responses:
//   200: caseByIDResponse
//   404: errorResponse

// Shows a single case record by the given {case_id}
// swagger:response caseByIDResponse
type caseByIDResponseWrapper struct {
	// in:body
	Body models.CaseRecord
}

// swagger:parameters caseByID
type caseByIDParamsWrapper struct {
	// in:path
	// required: true
	CaseID string `json:"case_id"`
}

// Error details for a failed request
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
