package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/flash"
)

type ListResponse[T any] struct {
	Data    []T             `json:"data"`
	Total   int             `json:"total"`
	Flashes []flash.Message `json:"flashes"`
}

// FormResponse is what a create or edit page needs: the current row (nil
// on create), choices for foreign-key fields and pending messages.
type FormResponse struct {
	Data    any             `json:"data"`
	Options map[string]any  `json:"options,omitempty"`
	Flashes []flash.Message `json:"flashes"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T, flashes []flash.Message) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:    data,
		Total:   len(data),
		Flashes: orEmpty(flashes),
	})
}

func Form(c *gin.Context, data any, options map[string]any, flashes []flash.Message) {
	c.JSON(http.StatusOK, FormResponse{
		Data:    data,
		Options: options,
		Flashes: orEmpty(flashes),
	})
}

func orEmpty(flashes []flash.Message) []flash.Message {
	if flashes == nil {
		return []flash.Message{}
	}
	return flashes
}
