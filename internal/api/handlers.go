package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikey/spam-detector-api/internal/core"
	"go.uber.org/zap"
)

const (
	subjectField = "email_subject"
	bodyField    = "email_body"
	emailsField  = "emails"

	// Batch entries use shorter member names than single requests
	batchSubjectField = "subject"
	batchBodyField    = "body"
)

type statsResponse struct {
	core.StatsReport
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   s.cfg.Version,
		"timestamp": s.now(),
	})
}

// handleDetect scores one email. An empty object is rejected like a
// missing body.
func (s *Server) handleDetect(c *gin.Context) {
	payload, ok := s.bindObject(c)
	if !ok {
		return
	}
	if len(payload) == 0 {
		c.JSON(http.StatusBadRequest, errorBody("Request body must be JSON"))
		return
	}

	subject, okSubject := stringField(payload, subjectField)
	body, okBody := stringField(payload, bodyField)
	if !okSubject || !okBody {
		c.JSON(http.StatusBadRequest, errorBody("email_subject and email_body must be strings"))
		return
	}

	resp, err := s.service.Detect(c.Request.Context(), core.DetectRequest{Subject: subject, Body: body})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDetectBatch(c *gin.Context) {
	payload, ok := s.bindObject(c)
	if !ok {
		return
	}

	raw, present := payload[emailsField]
	if !present {
		c.JSON(http.StatusBadRequest, errorBody(`Request must contain "emails" array`))
		return
	}

	var entries []json.RawMessage
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' || json.Unmarshal(trimmed, &entries) != nil {
		c.JSON(http.StatusBadRequest, errorBody(`"emails" must be an array`))
		return
	}

	items := make([]core.BatchItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, batchItem(entry))
	}

	resp, err := s.service.DetectBatch(c.Request.Context(), items)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, statsResponse{
		StatsReport: s.service.Stats(),
		Timestamp:   s.now(),
	})
}

func (s *Server) handleResetStats(c *gin.Context) {
	s.service.ResetStats()
	c.JSON(http.StatusOK, gin.H{"message": "Statistics reset successfully"})
}

// bindObject decodes the request body as a JSON object and writes a 400
// response when it is anything else.
func (s *Server) bindObject(c *gin.Context) (map[string]json.RawMessage, bool) {
	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		c.JSON(http.StatusBadRequest, errorBody("Request body must be JSON"))
		return nil, false
	}
	return payload, true
}

// writeError maps service errors to responses. Only validation messages
// reach the client.
func (s *Server) writeError(c *gin.Context, err error) {
	if core.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	s.logger.Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, errorBody("Internal server error"))
}

// stringField reads an optional string member. Missing and null members are
// empty; any other non-string value is rejected.
func stringField(payload map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := payload[name]
	if !ok {
		return "", true
	}

	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	if value == nil {
		return "", true
	}
	return *value, true
}

// batchItem decodes one entry of the emails array. Entries that are not
// objects, or carry non-string fields, are marked malformed.
func batchItem(raw json.RawMessage) core.BatchItem {
	var entry map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entry); err != nil || entry == nil {
		return core.BatchItem{Malformed: true}
	}

	subject, okSubject := stringField(entry, batchSubjectField)
	body, okBody := stringField(entry, batchBodyField)
	if !okSubject || !okBody {
		return core.BatchItem{Malformed: true}
	}
	return core.BatchItem{Subject: subject, Body: body}
}
