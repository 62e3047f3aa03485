package notion

import (
	"encoding/json"
	"fmt"
	"strings"
)

// blockList is the response of GET /blocks/{id}/children
type blockList struct {
	Results    []block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

type block struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	ChildPage *childPage `json:"child_page,omitempty"`
}

type childPage struct {
	Title string `json:"title"`
}

// page is the subset of a page object read back after creation
type page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type textContent struct {
	Content string `json:"content"`
}

type richText struct {
	Type string      `json:"type"`
	Text textContent `json:"text"`
}

type codeBlock struct {
	RichText []richText `json:"rich_text"`
	Language string     `json:"language"`
}

type blockRequest struct {
	Object string    `json:"object"`
	Type   string    `json:"type"`
	Code   codeBlock `json:"code"`
}

type pageParent struct {
	PageID string `json:"page_id"`
}

type titleProperty struct {
	Title []richText `json:"title"`
}

type pageRequest struct {
	Parent     pageParent               `json:"parent"`
	Properties map[string]titleProperty `json:"properties"`
	Children   []blockRequest           `json:"children"`
}

func text(s string) richText {
	return richText{Type: "text", Text: textContent{Content: s}}
}

// newPageRequest builds the create-page payload: a title property and one
// plain-text code block holding segments in order.
func newPageRequest(parentID, title string, segments []string) pageRequest {
	rt := make([]richText, len(segments))
	for i, s := range segments {
		rt[i] = text(s)
	}

	return pageRequest{
		Parent: pageParent{PageID: parentID},
		Properties: map[string]titleProperty{
			"title": {Title: []richText{text(title)}},
		},
		Children: []blockRequest{{
			Object: "block",
			Type:   "code",
			Code:   codeBlock{RichText: rt, Language: "plain text"},
		}},
	}
}

// APIError is an error response from the API
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%d: %s", e.Status, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%d: %s", e.Status, e.Code)
	default:
		return fmt.Sprintf("%d", e.Status)
	}
}

// decodeError turns a non-2xx response into an *APIError, keeping the raw
// body as the message when it is not a JSON error object
func decodeError(status int, body []byte) error {
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
