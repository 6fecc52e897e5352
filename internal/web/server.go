package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Greninja110/QA-Checklist/internal/core"
)

// SessionService is the set of session operations the handlers need.
type SessionService interface {
	Get() (*core.Session, error)
	UpdateInfo(targetWebsite, startDate *string) (*core.Session, error)
	ToggleItem(headingID, itemID int, checked bool) (bool, error)
	AddHeading(title string) (*core.Heading, error)
	EditHeading(id int, title string) (bool, error)
	DeleteHeading(id int) error
	AddItem(headingID int, text string) (*core.Item, bool, error)
	EditItem(headingID, itemID int, text string) (bool, error)
	DeleteItem(headingID, itemID int) error
	AddNote(text string) (*core.Note, error)
	EditNote(id int, text string) (bool, error)
	DeleteNote(id int) error
	Complete(endDate string) (*core.CompletedEntry, error)
	Reset() (*core.Session, error)
}

// HistoryService is the set of history operations the handlers need.
type HistoryService interface {
	ListAll() ([]core.CompletedEntry, error)
	DeleteByID(id int) error
}

// Server is the QA-Checklist web server.
type Server struct {
	sessions SessionService
	history  HistoryService
	router   *gin.Engine
}

// NewServer creates a new web server over the given services.
func NewServer(sessions SessionService, history HistoryService) *Server {
	router := gin.Default()
	router.Use(requestID())

	s := &Server{
		sessions: sessions,
		history:  history,
		router:   router,
	}

	api := router.Group("/api")
	{
		api.GET("/session", s.handleGetSession)
		api.POST("/session/info", s.handleUpdateInfo)
		api.POST("/session/complete", s.handleComplete)
		api.POST("/session/reset", s.handleReset)

		api.POST("/checklist/item", s.handleToggleItem)
		api.POST("/checklist/heading", s.handleAddHeading)
		api.PUT("/checklist/heading/:heading_id", s.handleEditHeading)
		api.DELETE("/checklist/heading/:heading_id", s.handleDeleteHeading)
		api.PUT("/checklist/item", s.handleAddItem)
		api.PUT("/checklist/item/:heading_id/:item_id", s.handleEditItem)
		api.DELETE("/checklist/item/:heading_id/:item_id", s.handleDeleteItem)

		api.POST("/notes", s.handleAddNote)
		api.PUT("/notes/:note_id", s.handleEditNote)
		api.DELETE("/notes/:note_id", s.handleDeleteNote)

		api.GET("/history", s.handleGetHistory)
		api.DELETE("/history/:project_id", s.handleDeleteHistory)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return s
}

// Run starts the web server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// requestID tags every request with an id for log correlation, minting a
// UUID when the client did not supply one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
