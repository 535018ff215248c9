package contentful

import (
	"encoding/json"
	"fmt"
)

const (
	LinkTypeEntry = "Entry"
	LinkTypeAsset = "Asset"
)

type ContentTypeRef struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
}

// Sys is the metadata envelope every Contentful record carries.
// Timestamps stay raw strings so malformed values never fail decoding.
type Sys struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	LinkType    string          `json:"linkType,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
	Revision    int             `json:"revision,omitempty"`
	Locale      string          `json:"locale,omitempty"`
	ContentType *ContentTypeRef `json:"contentType,omitempty"`
}

// Entry is one raw record: the sys envelope plus a schema-dependent fields map.
type Entry struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

func (e Entry) ContentTypeID() string {
	if e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

// Includes holds linked entries and assets returned next to the items.
type Includes struct {
	Entry []map[string]any `json:"Entry,omitempty"`
	Asset []map[string]any `json:"Asset,omitempty"`
}

type Collection struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Items    []Entry  `json:"items"`
	Includes Includes `json:"includes"`
}

type ContentType struct {
	Sys          Sys    `json:"sys"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayField string `json:"displayField,omitempty"`
}

type contentTypeCollection struct {
	Total int           `json:"total"`
	Items []ContentType `json:"items"`
}

// APIError is the decoded body of a non-2xx Contentful response.
type APIError struct {
	StatusCode int
	ID         string
	Message    string
	RequestID  string
	Details    []string
}

func (e *APIError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("contentful: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("contentful: status %d (%s): %s", e.StatusCode, e.ID, e.Message)
}

type apiErrorBody struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Details   struct {
		Errors []struct {
			Name string `json:"name"`
		} `json:"errors"`
	} `json:"details"`
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		apiErr.Message = string(body)
		return apiErr
	}
	apiErr.ID = parsed.Sys.ID
	apiErr.Message = parsed.Message
	apiErr.RequestID = parsed.RequestID
	for _, d := range parsed.Details.Errors {
		apiErr.Details = append(apiErr.Details, d.Name)
	}
	return apiErr
}
