// Package response defines the JSON envelope every virasat endpoint returns,
// success and error alike, so clients parse one shape for the whole API.
package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope. status is "success" or "error";
// data carries the payload (an event page, a booking session, the tier list)
// and errors any validation detail. Nil values are omitted from the body.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
