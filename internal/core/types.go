package core

import "strings"

const (
	AppName    = "downtime"
	AppVersion = "0.1.0"

	StateUp      = "up"
	StateDown    = "down"
	StateUnknown = "unknown"
)

// User is the typed view of a users record.
type User struct {
	FirstName string
	LastName  string
	Phone     string
	Checks    int
}

func UserFromRecord(rec Record) User {
	u := User{
		FirstName: stringField(rec, "firstName"),
		LastName:  stringField(rec, "lastName"),
		Phone:     stringField(rec, "phone"),
	}
	if checks, ok := rec["checks"].([]any); ok {
		u.Checks = len(checks)
	}
	return u
}

// Check is the typed view of a checks record. State is nil when the record
// carries no string state.
type Check struct {
	ID       string
	Method   string
	Protocol string
	URL      string
	State    *string
}

func CheckFromRecord(rec Record) Check {
	c := Check{
		ID:       stringField(rec, "id"),
		Method:   stringField(rec, "method"),
		Protocol: stringField(rec, "protocol"),
		URL:      stringField(rec, "url"),
	}
	if s, ok := rec["state"].(string); ok {
		c.State = &s
	}
	return c
}

// FilterState is the state used for --up/--down filtering; absent means down.
func (c Check) FilterState() string {
	if c.State == nil {
		return StateDown
	}
	return *c.State
}

// DisplayState is the state shown to the operator; absent means unknown.
func (c Check) DisplayState() string {
	if c.State == nil {
		return StateUnknown
	}
	return *c.State
}

func (c Check) Endpoint() string {
	return c.Protocol + "://" + c.URL
}

func (c Check) UpperMethod() string {
	return strings.ToUpper(c.Method)
}

func stringField(rec Record, key string) string {
	if s, ok := rec[key].(string); ok {
		return s
	}
	return ""
}
