// Package flash carries one-shot status messages across a redirect.
package flash

import "github.com/gin-gonic/gin"

const (
	CategorySuccess = "success"
	CategoryError   = "error"
)

type Message struct {
	Category string `json:"category"`
	Text     string `json:"message"`
}

// Store queues messages on one response and hands them out, once, on a
// later request from the same client.
type Store interface {
	Add(c *gin.Context, m Message) error
	Pop(c *gin.Context) ([]Message, error)
}

func Success(text string) Message { return Message{Category: CategorySuccess, Text: text} }

func Error(text string) Message { return Message{Category: CategoryError, Text: text} }
