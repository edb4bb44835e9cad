package handlers

import (
	"net/http"

	"github.com/formpilot/formpilot/src/feed"
	"github.com/formpilot/formpilot/src/response"
	"github.com/formpilot/formpilot/src/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type FeedHandler struct {
	hub *feed.Hub
}

func NewFeedHandler(hub *feed.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// WatchSubmissions streams live submission events for a form to the
// dashboard over a websocket. The connection closes when the client goes
// away or stops reading.
func (h *FeedHandler) WatchSubmissions(c *gin.Context) {
	formID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	events := h.hub.Subscribe(formID)
	done := make(chan struct{})

	go func() {
		defer conn.Close()
		for {
			select {
			case msg := <-events:
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	close(done)
	h.hub.Unsubscribe(formID, events)
}
