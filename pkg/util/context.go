package util

type ContextKey string

func (c ContextKey) String() string {
	return "ttvcli_" + string(c)
}

var RequestIDContextKey ContextKey = "request_id"
var CommandContextKey ContextKey = "command"
