// Package response provides the HTTP response envelope and the mapping from
// domain errors to status codes.
package response

import (
	"net/http"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/gin-gonic/gin"
)

// errorBody is the error envelope. Kind lets the client attribute a failure
// to a pipeline stage.
type errorBody struct {
	Kind    domain.Kind `json:"kind"`
	Message string      `json:"message"`
}

// Success writes a 200 response with the data envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 response with the data envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// Paginated writes a 200 response with paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// BadRequest writes a 400 response for malformed input.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{
		Kind:    domain.KindInvalidInput,
		Message: message,
	}})
}

// Error maps a domain error to its HTTP status. Backend-stage failures map
// to 502 so clients can distinguish "our input was bad" from "a routing
// backend broke".
func Error(c *gin.Context, err error) {
	kind := domain.KindOf(err)

	status := http.StatusInternalServerError
	message := err.Error()
	switch kind {
	case domain.KindInvalidInput:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindOptimizationFailed, domain.KindRenderFailed:
		status = http.StatusBadGateway
	case domain.KindDuplicate:
		status = http.StatusConflict
	case domain.KindInternal:
		// Do not leak internals.
		message = "internal server error"
	}

	c.JSON(status, gin.H{"error": errorBody{
		Kind:    kind,
		Message: message,
	}})
}
