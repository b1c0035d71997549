// Package protocol implements the JSON command dispatcher: it maps one
// decoded request line to an operation on a process instance and
// serializes the outcome.  It never touches the socket, so the full
// request surface is unit-testable with literal JSON fixtures.
package protocol

import (
	"encoding/json"

	"stepd/internal/process"
)

// Command names accepted on the wire.
const (
	CmdInputs  = "inputs"
	CmdOutputs = "outputs"
	CmdUpdate  = "update"
)

// Protocol error reasons, used as metric labels.
const (
	ReasonInvalidJSON    = "invalid_json"
	ReasonMissingCommand = "missing_command"
	ReasonInvalidCommand = "invalid_command"
	ReasonUnknownCommand = "unknown_command"
)

// ErrorResponse is the only error shape emitted on the wire.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Result is the outcome of handling one request line.
type Result struct {
	// Payload is the serialized response, without the line terminator.
	Payload []byte
	// Command is the operation that was routed, or "" when the request
	// never reached one.
	Command string
	// Reason classifies a protocol error, "" on success.
	Reason string
}

// Handle decodes one request line, dispatches it against p, and
// serializes the response.  Every malformed input maps to a structured
// error response; Handle never fails.
func Handle(line []byte, p process.Process) Result {
	var req interface{}
	if err := json.Unmarshal(line, &req); err != nil {
		return fail(ReasonInvalidJSON, "invalid json")
	}
	return run(req, p)
}

// run routes a decoded JSON value.
func run(req interface{}, p process.Process) Result {
	obj, ok := req.(map[string]interface{})
	if !ok {
		// A non-object top-level value carries no command field.
		return fail(ReasonMissingCommand, "missing 'command' field")
	}

	raw, ok := obj["command"]
	if !ok {
		return fail(ReasonMissingCommand, "missing 'command' field")
	}
	name, ok := raw.(string)
	if !ok {
		return fail(ReasonInvalidCommand, "invalid 'command' field")
	}

	switch name {
	case CmdInputs:
		return succeed(name, p.Inputs())
	case CmdOutputs:
		return succeed(name, p.Outputs())
	case CmdUpdate:
		state, interval := updateArgs(obj)
		return succeed(name, p.Step(state, interval))
	default:
		return fail(ReasonUnknownCommand, "unknown command: "+name)
	}
}

// updateArgs extracts the update arguments permissively: a missing or
// wrong-typed `arguments`, `state`, or `interval` defaults to the
// empty object / 0 rather than erroring.
func updateArgs(obj map[string]interface{}) (process.State, float64) {
	args, ok := obj["arguments"].(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	state, ok := args["state"].(map[string]interface{})
	if !ok {
		state = process.State{}
	}

	interval, ok := args["interval"].(float64)
	if !ok {
		interval = 0
	}
	return state, interval
}

func succeed(command string, v interface{}) Result {
	payload, err := json.Marshal(v)
	if err != nil {
		// Process results are plain maps of JSON-safe values; a marshal
		// failure indicates a broken process implementation.
		return fail("internal", "internal error")
	}
	return Result{Payload: payload, Command: command}
}

func fail(reason, msg string) Result {
	payload, _ := json.Marshal(ErrorResponse{Error: msg})
	return Result{Payload: payload, Reason: reason}
}
