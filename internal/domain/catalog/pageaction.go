package catalog

import (
	"fmt"
	"strings"
	"time"
)

// HTTPMethod is the HTTP verb a page action is bound to.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodPatch  HTTPMethod = "PATCH"
	MethodDelete HTTPMethod = "DELETE"
)

func ParseHTTPMethod(s string) (HTTPMethod, error) {
	m := HTTPMethod(strings.ToUpper(s))
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return m, nil
	}
	return "", fmt.Errorf("unsupported http method %q", s)
}

func (m HTTPMethod) String() string {
	return string(m)
}

// PageAction pairs a page with an action and binds the pair to a concrete
// HTTP endpoint. It is the unit permissions attach to. The (page, action)
// pair is unique.
//
// actionCode is a read-side convenience populated when the pair is loaded
// with its action joined in; it is empty on freshly created pairs.
type PageAction struct {
	id          uint
	pageID      uint
	actionID    uint
	actionCode  string
	apiEndpoint string
	httpMethod  HTTPMethod
	label       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPageAction(pageID, actionID uint, apiEndpoint string, httpMethod HTTPMethod, label string) (*PageAction, error) {
	if pageID == 0 {
		return nil, fmt.Errorf("page ID is required")
	}
	if actionID == 0 {
		return nil, fmt.Errorf("action ID is required")
	}
	if _, err := ParseHTTPMethod(string(httpMethod)); err != nil {
		return nil, err
	}

	now := time.Now()
	return &PageAction{
		pageID:      pageID,
		actionID:    actionID,
		apiEndpoint: apiEndpoint,
		httpMethod:  httpMethod,
		label:       label,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPageAction(id, pageID, actionID uint, actionCode, apiEndpoint string, httpMethod HTTPMethod, label string, createdAt, updatedAt time.Time) (*PageAction, error) {
	if id == 0 {
		return nil, fmt.Errorf("page action ID cannot be zero")
	}

	return &PageAction{
		id:          id,
		pageID:      pageID,
		actionID:    actionID,
		actionCode:  actionCode,
		apiEndpoint: apiEndpoint,
		httpMethod:  httpMethod,
		label:       label,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (pa *PageAction) ID() uint {
	return pa.id
}

func (pa *PageAction) SetID(id uint) error {
	if pa.id != 0 {
		return fmt.Errorf("page action ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("page action ID cannot be zero")
	}
	pa.id = id
	return nil
}

func (pa *PageAction) PageID() uint {
	return pa.pageID
}

func (pa *PageAction) ActionID() uint {
	return pa.actionID
}

// ActionCode returns the joined action's code, or "" when the pair was not
// loaded with its action.
func (pa *PageAction) ActionCode() string {
	return pa.actionCode
}

// IsView reports whether the pair represents the page's view capability,
// by literal comparison against the action code.
func (pa *PageAction) IsView() bool {
	return pa.actionCode == ViewActionCode
}

func (pa *PageAction) APIEndpoint() string {
	return pa.apiEndpoint
}

func (pa *PageAction) HTTPMethod() HTTPMethod {
	return pa.httpMethod
}

func (pa *PageAction) Label() string {
	return pa.label
}

func (pa *PageAction) CreatedAt() time.Time {
	return pa.createdAt
}

func (pa *PageAction) UpdatedAt() time.Time {
	return pa.updatedAt
}

func (pa *PageAction) UpdateBinding(apiEndpoint string, httpMethod HTTPMethod, label string) error {
	if _, err := ParseHTTPMethod(string(httpMethod)); err != nil {
		return err
	}
	pa.apiEndpoint = apiEndpoint
	pa.httpMethod = httpMethod
	pa.label = label
	pa.updatedAt = time.Now()
	return nil
}
