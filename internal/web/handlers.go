package web

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Greninja110/QA-Checklist/internal/core"
)

// fail converts an operation error into the API error envelope.
// Validation errors are the caller's fault (400); everything else is a
// 500. Nothing escapes the boundary as a panic.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if core.IsValidation(err) {
		status = http.StatusBadRequest
	}
	log.Printf("api: %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// pathID parses an integer path parameter. A non-numeric id is the
// caller's fault.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// Session handlers

func (s *Server) handleGetSession(c *gin.Context) {
	sess, err := s.sessions.Get()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

type updateInfoRequest struct {
	TargetWebsite *string `json:"target_website"`
	StartDate     *string `json:"start_date"`
}

func (s *Server) handleUpdateInfo(c *gin.Context) {
	var req updateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.sessions.UpdateInfo(req.TargetWebsite, req.StartDate)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sess})
}

type completeRequest struct {
	EndDate string `json:"end_date"`
}

func (s *Server) handleComplete(c *gin.Context) {
	// The body is optional; an omitted end_date defaults to today.
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.sessions.Complete(req.EndDate); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session completed successfully"})
}

func (s *Server) handleReset(c *gin.Context) {
	if _, err := s.sessions.Reset(); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session reset successfully"})
}

// Checklist handlers

type toggleItemRequest struct {
	HeadingID int  `json:"heading_id"`
	ItemID    int  `json:"item_id"`
	Checked   bool `json:"checked"`
}

func (s *Server) handleToggleItem(c *gin.Context) {
	var req toggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A missing heading or item is deliberately reported as success;
	// clients treat toggles as fire-and-forget.
	if _, err := s.sessions.ToggleItem(req.HeadingID, req.ItemID, req.Checked); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type titleRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleAddHeading(c *gin.Context) {
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	heading, err := s.sessions.AddHeading(req.Title)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "heading": heading})
}

func (s *Server) handleEditHeading(c *gin.Context) {
	headingID, ok := pathID(c, "heading_id")
	if !ok {
		return
	}

	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.sessions.EditHeading(headingID, req.Title); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteHeading(c *gin.Context) {
	headingID, ok := pathID(c, "heading_id")
	if !ok {
		return
	}

	if err := s.sessions.DeleteHeading(headingID); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type addItemRequest struct {
	HeadingID int    `json:"heading_id"`
	Text      string `json:"text"`
}

func (s *Server) handleAddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, _, err := s.sessions.AddItem(req.HeadingID, req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

type textRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleEditItem(c *gin.Context) {
	headingID, ok := pathID(c, "heading_id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.sessions.EditItem(headingID, itemID, req.Text); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	headingID, ok := pathID(c, "heading_id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	if err := s.sessions.DeleteItem(headingID, itemID); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Note handlers

func (s *Server) handleAddNote(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := s.sessions.AddNote(req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

func (s *Server) handleEditNote(c *gin.Context) {
	noteID, ok := pathID(c, "note_id")
	if !ok {
		return
	}

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.sessions.EditNote(noteID, req.Text); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	noteID, ok := pathID(c, "note_id")
	if !ok {
		return
	}

	if err := s.sessions.DeleteNote(noteID); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// History handlers

func (s *Server) handleGetHistory(c *gin.Context) {
	entries, err := s.history.ListAll()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleDeleteHistory(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}

	if err := s.history.DeleteByID(projectID); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
